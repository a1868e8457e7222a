package fund

import (
	"fmt"

	"WhyInvesting/internal/calculator"
	"WhyInvesting/internal/model"

	"go.uber.org/zap"
)

// Engine owns a validated dataset and its aggregates, computed once at construction.
// It is immutable afterwards and safe for concurrent readers.
type Engine struct {
	dataset  *model.Dataset
	summary  *model.FlowSummary
	warnings []Warning
}

// NewEngine validates ds and computes its summary. Validation errors are returned;
// warnings are logged and kept for reporting.
func NewEngine(ds *model.Dataset, logger *zap.Logger) (*Engine, error) {
	warnings, err := Validate(ds)
	if err != nil {
		return nil, fmt.Errorf("validate dataset: %w", err)
	}
	for _, w := range warnings {
		logger.Warn("dataset integrity", zap.String("subject", w.Subject), zap.String("detail", w.Message))
	}

	e := &Engine{
		dataset:  ds,
		summary:  calculator.Summarize(ds),
		warnings: warnings,
	}
	logger.Info("fund engine ready",
		zap.Int("investors", len(ds.Investors)),
		zap.Int("projects", len(ds.Projects)),
		zap.Float64("etf_inbound", e.summary.ETFInboundTotal),
		zap.Float64("etf_outbound", e.summary.ETFOutboundTotal),
		zap.Float64("etf_return", e.summary.TotalETFReturn),
	)
	return e, nil
}

// Dataset returns the underlying dataset. Callers must not modify it.
func (e *Engine) Dataset() *model.Dataset { return e.dataset }

// Summary returns the precomputed aggregates. Callers must not modify it.
func (e *Engine) Summary() *model.FlowSummary { return e.summary }

// Warnings returns data-integrity findings from validation.
func (e *Engine) Warnings() []Warning { return e.warnings }
