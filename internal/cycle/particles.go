package cycle

import (
	"fmt"
	"math"

	"WhyInvesting/internal/model"
)

const (
	particleStaggerMS = 220.0
	particleTravelMS  = 2600.0
	particleMinTravel = 1600.0
	particleLeftStart = 18
	particleLeftStep  = 12
	particleTopStart  = 62
	particleTopStep   = 8
)

type particleLayout struct {
	count  int
	offset int
}

var layouts = map[model.Phase]particleLayout{
	model.PhaseCollect:    {count: 12, offset: 1},
	model.PhaseDeploy:     {count: 10, offset: 2},
	model.PhaseDistribute: {count: 8, offset: 3},
}

// Particles builds the coin descriptors for a phase. Keys depend only on phase,
// cycle and index, so the same phase and cycle always yields the same keys.
func Particles(phase model.Phase, cycle int, speed float64) []model.Particle {
	layout, ok := layouts[phase]
	if !ok {
		layout = layouts[model.PhaseDistribute]
	}
	duration := math.Max(particleMinTravel, particleTravelMS/speed)

	out := make([]model.Particle, layout.count)
	for idx := range out {
		out[idx] = model.Particle{
			Key:        fmt.Sprintf("%s-%d-%d-%d", phase, cycle, idx, layout.offset),
			DelayMS:    float64(idx) * particleStaggerMS / speed,
			Left:       fmt.Sprintf("%d%%", particleLeftStart+idx*particleLeftStep),
			Top:        fmt.Sprintf("%d%%", particleTopStart-idx*particleTopStep),
			DurationMS: duration,
		}
	}
	return out
}
