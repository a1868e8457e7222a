package recorder

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists history to a SQLite database. Rows are tagged with
// the run id of the process that wrote them.
type SQLiteRecorder struct {
	db     *sql.DB
	mu     sync.Mutex
	runID  string
	logger *zap.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, logger *zap.Logger) (*SQLiteRecorder, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, runID: uuid.NewString(), logger: logger}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.Info("sqlite recorder opened", zap.String("path", dbPath), zap.String("run_id", r.runID))
	return r, nil
}

// RunID identifies this process in recorded rows.
func (r *SQLiteRecorder) RunID() string { return r.runID }

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS phase_transitions (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id      TEXT NOT NULL,
			timestamp   INTEGER NOT NULL,
			from_phase  TEXT,
			to_phase    TEXT,
			cycle       INTEGER,
			speed       REAL,
			dwell_ms    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_transitions_ts ON phase_transitions(timestamp)`,

		`CREATE TABLE IF NOT EXISTS speed_changes (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id     TEXT NOT NULL,
			timestamp  INTEGER NOT NULL,
			old_speed  REAL,
			new_speed  REAL,
			phase      TEXT,
			cycle      INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_speed_ts ON speed_changes(timestamp)`,

		`CREATE TABLE IF NOT EXISTS cycle_stats (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id       TEXT NOT NULL,
			timestamp    INTEGER NOT NULL,
			phase        TEXT,
			cycle        INTEGER,
			transitions  INTEGER,
			speed        REAL,
			subscribers  INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_stats_ts ON cycle_stats(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordTransition(evt *TransitionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO phase_transitions
		(run_id, timestamp, from_phase, to_phase, cycle, speed, dwell_ms)
		VALUES (?,?,?,?,?,?,?)`,
		r.runID, time.Now().Unix(), string(evt.From), string(evt.To),
		evt.Cycle, evt.Speed, evt.DwellMS,
	)
	return err
}

func (r *SQLiteRecorder) RecordSpeedChange(evt *SpeedChangeEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO speed_changes
		(run_id, timestamp, old_speed, new_speed, phase, cycle)
		VALUES (?,?,?,?,?,?)`,
		r.runID, time.Now().Unix(), evt.OldSpeed, evt.NewSpeed,
		string(evt.Phase), evt.Cycle,
	)
	return err
}

func (r *SQLiteRecorder) RecordCycleStats(stats *CycleStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO cycle_stats
		(run_id, timestamp, phase, cycle, transitions, speed, subscribers)
		VALUES (?,?,?,?,?,?,?)`,
		r.runID, time.Now().Unix(), string(stats.Phase), stats.Cycle,
		stats.Transitions, stats.Speed, stats.Subscribers,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	r.logger.Info("closing sqlite recorder")
	return r.db.Close()
}
