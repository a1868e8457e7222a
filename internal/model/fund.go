package model

// DirectAllocation is capital an investor places straight into one project.
type DirectAllocation struct {
	ProjectID string  `yaml:"project_id" json:"project_id"`
	Amount    float64 `yaml:"amount" json:"amount"`
}

// Investor is one participant in the flow. ETF is the amount contributed to the pooled fund.
type Investor struct {
	ID     string             `yaml:"id" json:"id"`
	Name   string             `yaml:"name" json:"name"`
	Emoji  string             `yaml:"emoji" json:"emoji"`
	Direct []DirectAllocation `yaml:"direct" json:"direct"`
	ETF    float64            `yaml:"etf" json:"etf"`
}

// Project is a fixed funding target.
type Project struct {
	ID             string  `yaml:"id" json:"id"`
	Name           string  `yaml:"name" json:"name"`
	Target         float64 `yaml:"target" json:"target"`
	Risk           string  `yaml:"risk" json:"risk"`
	ExpectedReturn float64 `yaml:"expected_return" json:"expected_return"` // percent
	Color          string  `yaml:"color" json:"color"`
}

// ProjectReturn holds projected payouts. Total is expected to equal ToETF + ToDirect.
type ProjectReturn struct {
	Total    float64 `yaml:"total" json:"total"`
	ToETF    float64 `yaml:"to_etf" json:"to_etf"`
	ToDirect float64 `yaml:"to_direct" json:"to_direct"`
}

// Dataset is the complete, immutable input of the flow.
type Dataset struct {
	Investors      []Investor               `yaml:"investors" json:"investors"`
	Projects       []Project                `yaml:"projects" json:"projects"`
	ETFAllocations map[string]float64       `yaml:"etf_allocations" json:"etf_allocations"`
	Returns        map[string]ProjectReturn `yaml:"returns" json:"returns"`
}

// ProjectByID looks up a project.
func (d *Dataset) ProjectByID(id string) (Project, bool) {
	for _, p := range d.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}
