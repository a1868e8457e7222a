package recorder

import (
	"path/filepath"
	"testing"

	"WhyInvesting/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func countRows(t *testing.T, r *SQLiteRecorder, table string) int {
	t.Helper()
	var n int
	require.NoError(t, r.db.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE run_id = ?", r.RunID()).Scan(&n))
	return n
}

func TestSQLiteRecorder_RecordsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	r, err := NewSQLiteRecorder(path, zap.NewNop())
	require.NoError(t, err)
	defer r.Close()

	require.NoError(t, r.RecordTransition(&TransitionEvent{
		From: model.PhaseDistribute, To: model.PhaseCollect, Cycle: 1, Speed: 1.1, DwellMS: 5636,
	}))
	require.NoError(t, r.RecordTransition(&TransitionEvent{
		From: model.PhaseCollect, To: model.PhaseDeploy, Cycle: 1, Speed: 1.1, DwellMS: 5636,
	}))
	require.NoError(t, r.RecordSpeedChange(&SpeedChangeEvent{
		OldSpeed: 1.1, NewSpeed: 2, Phase: model.PhaseDeploy, Cycle: 1,
	}))
	require.NoError(t, r.RecordCycleStats(&CycleStats{
		Phase: model.PhaseDeploy, Cycle: 1, Transitions: 4, Speed: 2, Subscribers: 3,
	}))

	assert.Equal(t, 2, countRows(t, r, "phase_transitions"))
	assert.Equal(t, 1, countRows(t, r, "speed_changes"))
	assert.Equal(t, 1, countRows(t, r, "cycle_stats"))

	var to string
	var cycle int
	require.NoError(t, r.db.QueryRow(
		"SELECT to_phase, cycle FROM phase_transitions ORDER BY id LIMIT 1").Scan(&to, &cycle))
	assert.Equal(t, "collect", to)
	assert.Equal(t, 1, cycle)
}

func TestSQLiteRecorder_ReopenKeepsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	first, err := NewSQLiteRecorder(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, first.RecordCycleStats(&CycleStats{Phase: model.PhaseCollect}))
	require.NoError(t, first.Close())

	second, err := NewSQLiteRecorder(path, zap.NewNop())
	require.NoError(t, err)
	defer second.Close()

	assert.NotEqual(t, first.RunID(), second.RunID())
	var total int
	require.NoError(t, second.db.QueryRow("SELECT COUNT(*) FROM cycle_stats").Scan(&total))
	assert.Equal(t, 1, total)
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NewNoopRecorder()
	assert.NoError(t, r.RecordTransition(&TransitionEvent{}))
	assert.NoError(t, r.RecordSpeedChange(&SpeedChangeEvent{}))
	assert.NoError(t, r.RecordCycleStats(&CycleStats{}))
	assert.NoError(t, r.Close())
}
