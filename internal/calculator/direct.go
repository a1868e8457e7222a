package calculator

import (
	"math"

	"WhyInvesting/internal/model"
)

func sum(values []float64) float64 {
	var acc float64
	for _, v := range values {
		acc += v
	}
	return acc
}

// DirectByProject sums every investor's direct allocations per project.
// Projects without any direct allocation map to 0.
func DirectByProject(ds *model.Dataset) map[string]float64 {
	out := make(map[string]float64, len(ds.Projects))
	for _, p := range ds.Projects {
		out[p.ID] = 0
	}
	for _, inv := range ds.Investors {
		for _, d := range inv.Direct {
			if _, ok := out[d.ProjectID]; ok {
				out[d.ProjectID] += d.Amount
			}
		}
	}
	return out
}

// TotalsByProject returns direct + ETF allocation per project.
// A project with no ETF allocation entry counts as 0 from the pool.
func TotalsByProject(ds *model.Dataset) map[string]float64 {
	direct := DirectByProject(ds)
	out := make(map[string]float64, len(direct))
	for id, d := range direct {
		out[id] = d + ds.ETFAllocations[id]
	}
	return out
}

// Funding derives the funded flag and completion percentage of a project.
func Funding(p model.Project, direct, etf float64) model.ProjectFunding {
	total := direct + etf
	pf := model.ProjectFunding{
		Project: p,
		Direct:  direct,
		ETF:     etf,
		Total:   total,
		Funded:  total >= p.Target,
	}
	if p.Target > 0 {
		pf.Completion = math.Max(0, math.Min(100, total/p.Target*100))
	} else {
		pf.Completion = 100
	}
	return pf
}

// InvestorPositions returns the direct and combined totals of each investor.
func InvestorPositions(ds *model.Dataset) []model.InvestorPosition {
	out := make([]model.InvestorPosition, 0, len(ds.Investors))
	for _, inv := range ds.Investors {
		amounts := make([]float64, 0, len(inv.Direct))
		for _, d := range inv.Direct {
			amounts = append(amounts, d.Amount)
		}
		direct := sum(amounts)
		out = append(out, model.InvestorPosition{
			Investor:    inv,
			DirectTotal: direct,
			Total:       direct + inv.ETF,
		})
	}
	return out
}
