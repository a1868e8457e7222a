package calculator

import (
	"sort"

	"WhyInvesting/internal/model"
)

// ETFInboundTotal is the sum of investor contributions to the pooled fund.
func ETFInboundTotal(ds *model.Dataset) float64 {
	values := make([]float64, 0, len(ds.Investors))
	for _, inv := range ds.Investors {
		values = append(values, inv.ETF)
	}
	return sum(values)
}

// ETFOutboundTotal is the sum of the pool's project allocations.
func ETFOutboundTotal(ds *model.Dataset) float64 {
	return sum(sortedValues(ds.ETFAllocations))
}

// TotalETFReturn is the sum of the ToETF payouts across projects.
func TotalETFReturn(ds *model.Dataset) float64 {
	keys := make([]string, 0, len(ds.Returns))
	for id := range ds.Returns {
		keys = append(keys, id)
	}
	sort.Strings(keys)
	values := make([]float64, 0, len(keys))
	for _, id := range keys {
		values = append(values, ds.Returns[id].ToETF)
	}
	return sum(values)
}

// ETFShareOfPool is the percentage of the inbound pool allocated to projectID.
// Returns 0 when nothing was pooled.
func ETFShareOfPool(ds *model.Dataset, projectID string) float64 {
	inbound := ETFInboundTotal(ds)
	if inbound <= 0 {
		return 0
	}
	return ds.ETFAllocations[projectID] / inbound * 100
}

// ETFDeployedPercent is outbound / inbound as a percentage, 0 when nothing was pooled.
func ETFDeployedPercent(ds *model.Dataset) float64 {
	inbound := ETFInboundTotal(ds)
	if inbound <= 0 {
		return 0
	}
	return ETFOutboundTotal(ds) / inbound * 100
}

// DistributionShares splits the total ETF return across investors in proportion
// to their contribution. With a zero inbound total there is nothing to distribute
// and the result is empty.
func DistributionShares(ds *model.Dataset) []model.DistributionShare {
	inbound := ETFInboundTotal(ds)
	if inbound <= 0 {
		return []model.DistributionShare{}
	}
	totalReturn := TotalETFReturn(ds)

	shares := make([]model.DistributionShare, 0, len(ds.Investors))
	for _, inv := range ds.Investors {
		if inv.ETF <= 0 {
			continue
		}
		shares = append(shares, model.DistributionShare{
			InvestorID: inv.ID,
			Name:       inv.Name,
			Amount:     inv.ETF / inbound * totalReturn,
		})
	}
	return shares
}

// sortedValues makes map summation independent of iteration order.
func sortedValues(m map[string]float64) []float64 {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]float64, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}
