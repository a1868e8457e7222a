package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"WhyInvesting/internal/cycle"
	"WhyInvesting/internal/fund"
	"WhyInvesting/internal/recorder"
	"WhyInvesting/internal/scheduler"
	"WhyInvesting/internal/web"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the phase driver and serve the animated page",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	logger.Info("WhyInvesting starting")

	ds, err := fund.LoadDataset(cfg.Dataset.Path)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	engine, err := fund.NewEngine(ds, logger)
	if err != nil {
		return err
	}

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, logger)
		if err != nil {
			logger.Warn("init sqlite recorder failed, using noop", zap.Error(err))
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	opts := cfg.DriverOptions()
	driver := cycle.NewDriver(opts, cycle.RealClock(), rec, logger)
	if err := driver.Start(ctx); err != nil {
		return fmt.Errorf("start driver: %w", err)
	}
	defer driver.Stop()

	sched := scheduler.NewScheduler(driver, rec, logger)
	if err := sched.RegisterAll(cfg.Schedule.StatsCron); err != nil {
		return fmt.Errorf("register cron tasks: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	srv, err := web.NewServer(cfg.Server.Addr, engine, driver, web.SpeedRange{
		Min: opts.MinSpeed, Max: opts.MaxSpeed, Step: opts.SpeedStep,
	}, logger)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	logger.Info("WhyInvesting is running. Press Ctrl+C to stop.")
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received, stopping")
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	logger.Info("WhyInvesting stopped")
	return nil
}
