package main

import (
	"fmt"

	"WhyInvesting/internal/fund"
	"WhyInvesting/internal/model"
	"WhyInvesting/internal/report"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the investor, ETF and project aggregates",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), report.FormatSummary(model.DefaultPageMeta, engine.Summary(), engine.Warnings()))
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the dataset for broken references and integrity warnings",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine()
		if err != nil {
			return err
		}
		if len(engine.Warnings()) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "dataset ok")
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), report.FormatWarnings(engine.Warnings()))
		return nil
	},
}

func loadEngine() (*fund.Engine, error) {
	ds, err := fund.LoadDataset(cfg.Dataset.Path)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return fund.NewEngine(ds, logger)
}
