package calculator

import "WhyInvesting/internal/model"

// Summarize computes every derived aggregate of the dataset, projects in dataset order.
func Summarize(ds *model.Dataset) *model.FlowSummary {
	direct := DirectByProject(ds)

	projects := make([]model.ProjectFunding, 0, len(ds.Projects))
	for _, p := range ds.Projects {
		pf := Funding(p, direct[p.ID], ds.ETFAllocations[p.ID])
		pf.ETFShareOfPool = ETFShareOfPool(ds, p.ID)
		pf.ProjectedReturn = ds.Returns[p.ID]
		projects = append(projects, pf)
	}

	return &model.FlowSummary{
		Investors:          InvestorPositions(ds),
		Projects:           projects,
		ETFInboundTotal:    ETFInboundTotal(ds),
		ETFOutboundTotal:   ETFOutboundTotal(ds),
		ETFDeployedPercent: ETFDeployedPercent(ds),
		TotalETFReturn:     TotalETFReturn(ds),
		Distribution:       DistributionShares(ds),
	}
}
