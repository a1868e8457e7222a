package model

import "time"

// Phase is one step of the money-flow cycle.
type Phase string

const (
	PhaseCollect    Phase = "collect"
	PhaseDeploy     Phase = "deploy"
	PhaseDistribute Phase = "distribute"
)

// PhaseOrder is the fixed cyclic order of phases.
var PhaseOrder = []Phase{PhaseCollect, PhaseDeploy, PhaseDistribute}

// Next returns the phase that follows p and whether the cycle wrapped back to the start.
func (p Phase) Next() (Phase, bool) {
	i := p.Index()
	if i < 0 || i == len(PhaseOrder)-1 {
		return PhaseOrder[0], true
	}
	return PhaseOrder[i+1], false
}

// Index returns the position of p in PhaseOrder, or -1.
func (p Phase) Index() int {
	for i, o := range PhaseOrder {
		if o == p {
			return i
		}
	}
	return -1
}

// PhaseMeta is the caption shown in the stage indicator.
type PhaseMeta struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// LaneCaptions are the per-lane status lines in the money-in-motion panel.
type LaneCaptions struct {
	Direct   string `json:"direct"`
	ETF      string `json:"etf"`
	Projects string `json:"projects"`
}

// Particle describes one animated coin.
type Particle struct {
	Key        string  `json:"key"`
	DelayMS    float64 `json:"delay_ms"`
	Left       string  `json:"left"`
	Top        string  `json:"top"`
	DurationMS float64 `json:"duration_ms"`
}

// Snapshot is a read-only view of the driver state.
type Snapshot struct {
	Phase       Phase        `json:"phase"`
	PhaseIndex  int          `json:"phase_index"`
	Cycle       int          `json:"cycle"`
	Transitions int          `json:"transitions"`
	Speed       float64      `json:"speed"`
	DwellMS     int64        `json:"dwell_ms"`
	Meta        PhaseMeta    `json:"meta"`
	Lanes       LaneCaptions `json:"lanes"`
	Particles   []Particle   `json:"particles"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
