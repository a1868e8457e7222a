package report

import (
	"testing"

	"WhyInvesting/internal/fund"
	"WhyInvesting/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFormatSummary(t *testing.T) {
	e, err := fund.NewEngine(fund.Default(), zap.NewNop())
	require.NoError(t, err)

	out := FormatSummary(model.DefaultPageMeta, e.Summary(), e.Warnings())

	assert.Contains(t, out, "Why Investing Works")
	assert.Contains(t, out, "Capital collected: 21.0M")
	assert.Contains(t, out, "Distributed back to investors: 12.0M")
	assert.Regexp(t, `Li\s+4\.6M`, out)
	assert.Contains(t, out, "Target 12M | Direct 9.0M | ETF 3.0M | 100% complete")
	assert.Contains(t, out, "Funded")
	assert.NotContains(t, out, "Warnings")
}

func TestFormatDistribution_NoContributors(t *testing.T) {
	out := FormatDistribution(&model.FlowSummary{})
	assert.Contains(t, out, "(no ETF contributors)")
}

func TestFormatWarnings(t *testing.T) {
	out := FormatWarnings([]fund.Warning{{Subject: "returns wind", Message: "mismatch"}})
	assert.Contains(t, out, "returns wind: mismatch")
}
