package cycle

import "WhyInvesting/internal/model"

var phaseMeta = map[model.Phase]model.PhaseMeta{
	model.PhaseCollect: {
		Title:    "Capital is pooled",
		Subtitle: "Direct investors pick projects while others stack cash into the shared ETF basket.",
	},
	model.PhaseDeploy: {
		Title:    "Fund targets are met",
		Subtitle: "The ETF deploys into every project that reaches its funding hurdle, spreading risk across the portfolio.",
	},
	model.PhaseDistribute: {
		Title:    "Returns flow back",
		Subtitle: "Projects that launched send money back to the ETF and direct investors, illustrating compounding diversification.",
	},
}

var laneCaptions = map[model.Phase]model.LaneCaptions{
	model.PhaseCollect: {
		Direct:   "Capital committed",
		ETF:      "Pooling diversified exposure",
		Projects: "Waiting for target to be hit",
	},
	model.PhaseDeploy: {
		Direct:   "Capital at work",
		ETF:      "Deploying into funded deals",
		Projects: "Building real assets",
	},
	model.PhaseDistribute: {
		Direct:   "Capital paid back",
		ETF:      "Rebalancing to investors",
		Projects: "Returning principal + gains",
	},
}

// Meta returns the stage caption of a phase.
func Meta(p model.Phase) model.PhaseMeta { return phaseMeta[p] }

// Lanes returns the lane captions of a phase.
func Lanes(p model.Phase) model.LaneCaptions { return laneCaptions[p] }
