package model

// ProjectFunding is the derived funding status of one project.
type ProjectFunding struct {
	Project         Project       `json:"project"`
	Direct          float64       `json:"direct"`
	ETF             float64       `json:"etf"`
	Total           float64       `json:"total"`
	Funded          bool          `json:"funded"`
	Completion      float64       `json:"completion"` // 0 ~ 100
	ETFShareOfPool  float64       `json:"etf_share_of_pool"`
	ProjectedReturn ProjectReturn `json:"projected_return"`
}

// Status is the badge label shown on the project card.
func (p ProjectFunding) Status() string {
	if p.Funded {
		return "Funded"
	}
	return "Short"
}

// InvestorPosition is the derived view of one investor card.
type InvestorPosition struct {
	Investor    Investor `json:"investor"`
	DirectTotal float64  `json:"direct_total"`
	Total       float64  `json:"total"`
}

// DistributionShare is one investor's proportional slice of the ETF returns.
type DistributionShare struct {
	InvestorID string  `json:"investor_id"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
}

// FlowSummary bundles every aggregate derived from a Dataset.
type FlowSummary struct {
	Investors          []InvestorPosition  `json:"investors"`
	Projects           []ProjectFunding    `json:"projects"`
	ETFInboundTotal    float64             `json:"etf_inbound_total"`
	ETFOutboundTotal   float64             `json:"etf_outbound_total"`
	ETFDeployedPercent float64             `json:"etf_deployed_percent"`
	TotalETFReturn     float64             `json:"total_etf_return"`
	Distribution       []DistributionShare `json:"distribution"`
}

// PageMeta is the document metadata of the rendered page.
type PageMeta struct {
	Title       string
	Description string
}

// DefaultPageMeta is shown in the document head.
var DefaultPageMeta = PageMeta{
	Title:       "Why Investing Works",
	Description: "Animated visualization showing diversified investing through ETFs and direct projects.",
}
