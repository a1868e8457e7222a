package recorder

import "WhyInvesting/internal/model"

// TransitionEvent records one phase change.
type TransitionEvent struct {
	From    model.Phase
	To      model.Phase
	Cycle   int
	Speed   float64
	DwellMS int64 // wait scheduled before the next transition
}

// SpeedChangeEvent records a change of the animation speed multiplier.
type SpeedChangeEvent struct {
	OldSpeed float64
	NewSpeed float64
	Phase    model.Phase
	Cycle    int
}

// CycleStats is a periodic sample of the driver.
type CycleStats struct {
	Phase       model.Phase
	Cycle       int
	Transitions int
	Speed       float64
	Subscribers int
}

// Recorder persists the animation history for later analysis.
type Recorder interface {
	RecordTransition(evt *TransitionEvent) error
	RecordSpeedChange(evt *SpeedChangeEvent) error
	RecordCycleStats(stats *CycleStats) error
	Close() error
}
