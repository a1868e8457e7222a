package fund

import "WhyInvesting/internal/model"

// Default returns the built-in dataset. Each call returns a fresh copy.
func Default() *model.Dataset {
	return &model.Dataset{
		Investors: []model.Investor{
			{
				ID: "emma", Name: "Emma", Emoji: "🧑‍🔧",
				Direct: []model.DirectAllocation{
					{ProjectID: "solar", Amount: 5},
					{ProjectID: "ai", Amount: 2},
				},
			},
			{
				ID: "rafael", Name: "Rafael", Emoji: "🧔🏻",
				Direct: []model.DirectAllocation{
					{ProjectID: "solar", Amount: 4},
					{ProjectID: "wind", Amount: 2},
				},
			},
			{ID: "li", Name: "Li", Emoji: "🧑‍💼", ETF: 8},
			{
				ID: "aisha", Name: "Aisha", Emoji: "🧕",
				Direct: []model.DirectAllocation{{ProjectID: "ai", Amount: 3}},
				ETF:    4,
			},
			{
				ID: "noah", Name: "Noah", Emoji: "🧑‍🚀",
				Direct: []model.DirectAllocation{{ProjectID: "wind", Amount: 4}},
				ETF:    3,
			},
			{ID: "sofia", Name: "Sofia", Emoji: "👩‍🏫", ETF: 6},
		},
		Projects: []model.Project{
			{
				ID: "solar", Name: "Solar Microgrids", Target: 12, Risk: "Medium", ExpectedReturn: 8,
				Color: "linear-gradient(135deg, rgba(56,189,248,0.45), rgba(56,189,248,0))",
			},
			{
				ID: "ai", Name: "AI Logistics", Target: 9, Risk: "High", ExpectedReturn: 15,
				Color: "linear-gradient(135deg, rgba(248,113,113,0.45), rgba(248,113,113,0))",
			},
			{
				ID: "wind", Name: "Coastal Wind Farms", Target: 14, Risk: "Low", ExpectedReturn: 6,
				Color: "linear-gradient(135deg, rgba(74,222,128,0.45), rgba(74,222,128,0))",
			},
		},
		ETFAllocations: map[string]float64{
			"solar": 3,
			"ai":    6,
			"wind":  12,
		},
		Returns: map[string]model.ProjectReturn{
			"solar": {Total: 12.6, ToETF: 3.3, ToDirect: 9.3},
			"ai":    {Total: 11.7, ToETF: 3.6, ToDirect: 8.1},
			"wind":  {Total: 15.4, ToETF: 5.1, ToDirect: 10.3},
		},
	}
}
