package scheduler

import (
	"fmt"

	"WhyInvesting/internal/cycle"
	"WhyInvesting/internal/recorder"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs the periodic background jobs of the service.
type Scheduler struct {
	Cron     *cron.Cron
	Driver   *cycle.Driver
	Recorder recorder.Recorder
	Logger   *zap.Logger
}

// NewScheduler creates a new Scheduler.
func NewScheduler(driver *cycle.Driver, rec recorder.Recorder, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Driver:   driver,
		Recorder: rec,
		Logger:   logger,
	}
}

// RegisterAll registers the cycle statistics job.
func (s *Scheduler) RegisterAll(statsCron string) error {
	if _, err := s.Cron.AddFunc(statsCron, s.statsTask); err != nil {
		return fmt.Errorf("register stats task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Logger.Info("scheduler started", zap.Int("jobs", len(s.Cron.Entries())))
}

// Stop stops the cron scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Logger.Info("scheduler stopped")
}

// RunStatsNow samples the driver immediately.
func (s *Scheduler) RunStatsNow() {
	s.statsTask()
}

func (s *Scheduler) statsTask() {
	snap := s.Driver.Snapshot()
	stats := &recorder.CycleStats{
		Phase:       snap.Phase,
		Cycle:       snap.Cycle,
		Transitions: snap.Transitions,
		Speed:       snap.Speed,
		Subscribers: s.Driver.Subscribers(),
	}
	s.Logger.Info("cycle stats",
		zap.String("phase", string(stats.Phase)),
		zap.Int("cycle", stats.Cycle),
		zap.Int("transitions", stats.Transitions),
		zap.Float64("speed", stats.Speed),
		zap.Int("subscribers", stats.Subscribers),
	)
	if err := s.Recorder.RecordCycleStats(stats); err != nil {
		s.Logger.Error("record cycle stats", zap.Error(err))
	}
}
