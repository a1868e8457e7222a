package cycle

import (
	"testing"

	"WhyInvesting/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticles_CountPerPhase(t *testing.T) {
	assert.Len(t, Particles(model.PhaseCollect, 0, 1), 12)
	assert.Len(t, Particles(model.PhaseDeploy, 0, 1), 10)
	assert.Len(t, Particles(model.PhaseDistribute, 0, 1), 8)
}

func TestParticles_Layout(t *testing.T) {
	ps := Particles(model.PhaseCollect, 3, 2)
	require.Len(t, ps, 12)

	assert.Equal(t, "collect-3-0-1", ps[0].Key)
	assert.Equal(t, "18%", ps[0].Left)
	assert.Equal(t, "62%", ps[0].Top)
	assert.Equal(t, 0.0, ps[0].DelayMS)

	assert.Equal(t, "collect-3-2-1", ps[2].Key)
	assert.Equal(t, "42%", ps[2].Left)
	assert.Equal(t, "46%", ps[2].Top)
	assert.Equal(t, 220.0, ps[2].DelayMS) // 2*220/2
}

func TestParticles_DurationScalesWithFloor(t *testing.T) {
	assert.Equal(t, 2600.0, Particles(model.PhaseDeploy, 0, 1)[0].DurationMS)
	assert.InDelta(t, 4000.0, Particles(model.PhaseDeploy, 0, 0.65)[0].DurationMS, 1e-6)
	assert.Equal(t, 1600.0, Particles(model.PhaseDeploy, 0, 2.5)[0].DurationMS)
}

func TestParticles_IdentityStableWithinPhaseAndCycle(t *testing.T) {
	a := Particles(model.PhaseDeploy, 1, 1.1)
	b := Particles(model.PhaseDeploy, 1, 2.0)
	for i := range a {
		assert.Equal(t, a[i].Key, b[i].Key)
	}

	next := Particles(model.PhaseDeploy, 2, 1.1)
	other := Particles(model.PhaseDistribute, 1, 1.1)
	keys := map[string]bool{}
	for _, p := range a {
		keys[p.Key] = true
	}
	for _, p := range append(next, other...) {
		assert.False(t, keys[p.Key], p.Key)
	}
}

func TestCaptions_EveryPhase(t *testing.T) {
	for _, p := range model.PhaseOrder {
		assert.NotEmpty(t, Meta(p).Title)
		assert.NotEmpty(t, Lanes(p).ETF)
	}
	assert.Equal(t, "Returning principal + gains", Lanes(model.PhaseDistribute).Projects)
}
