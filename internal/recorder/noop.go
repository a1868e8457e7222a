package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordTransition(_ *TransitionEvent) error   { return nil }
func (n *NoopRecorder) RecordSpeedChange(_ *SpeedChangeEvent) error { return nil }
func (n *NoopRecorder) RecordCycleStats(_ *CycleStats) error        { return nil }
func (n *NoopRecorder) Close() error                                { return nil }
