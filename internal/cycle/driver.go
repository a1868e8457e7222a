package cycle

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"WhyInvesting/internal/model"
	"WhyInvesting/internal/recorder"

	"go.uber.org/zap"
)

var ErrAlreadyRunning = errors.New("driver already running")

// Options configures the phase timings and the speed control range.
type Options struct {
	BaseDwell    map[model.Phase]time.Duration
	InitialSpeed float64
	MinSpeed     float64
	MaxSpeed     float64
	SpeedStep    float64
}

// DefaultOptions matches the stock animation: 6.2s per phase, 0.65x to 2.5x.
func DefaultOptions() Options {
	return Options{
		BaseDwell: map[model.Phase]time.Duration{
			model.PhaseCollect:    6200 * time.Millisecond,
			model.PhaseDeploy:     6200 * time.Millisecond,
			model.PhaseDistribute: 6200 * time.Millisecond,
		},
		InitialSpeed: 1.1,
		MinSpeed:     0.65,
		MaxSpeed:     2.5,
		SpeedStep:    0.05,
	}
}

// Driver advances the collect -> deploy -> distribute cycle on a single timer.
// It is the only writer of phase, cycle and speed; everyone else reads snapshots.
type Driver struct {
	mu     sync.Mutex
	opts   Options
	clock  Clock
	rec    recorder.Recorder
	logger *zap.Logger

	phase       model.Phase
	cycle       int
	transitions int
	speed       float64
	updatedAt   time.Time

	running bool
	gen     uint64
	timer   Timer
	done    chan struct{}

	subs    map[int]chan model.Snapshot
	nextSub int
}

// NewDriver creates a driver in the collect phase of cycle 0.
func NewDriver(opts Options, clock Clock, rec recorder.Recorder, logger *zap.Logger) *Driver {
	if clock == nil {
		clock = RealClock()
	}
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	d := &Driver{
		phase:     model.PhaseCollect,
		opts:      opts,
		clock:     clock,
		rec:       rec,
		logger:    logger,
		updatedAt: clock.Now(),
		subs:      make(map[int]chan model.Snapshot),
	}
	d.speed = d.clampSpeed(opts.InitialSpeed)
	return d
}

// Start schedules the first transition. The driver stops when ctx is done or Stop is called.
func (d *Driver) Start(ctx context.Context) error {
	d.mu.Lock()
	if d.running {
		d.mu.Unlock()
		return ErrAlreadyRunning
	}
	d.running = true
	d.done = make(chan struct{})
	done := d.done
	d.scheduleLocked()
	phase := d.phaseLocked()
	d.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			d.Stop()
		case <-done:
		}
	}()

	d.logger.Info("phase driver started", zap.String("phase", string(phase)), zap.Float64("speed", d.Speed()))
	return nil
}

// Stop cancels the pending transition and closes all subscriptions.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.running {
		return
	}
	d.running = false
	d.cancelLocked()
	close(d.done)
	for id, ch := range d.subs {
		close(ch)
		delete(d.subs, id)
	}
	d.logger.Info("phase driver stopped", zap.Int("cycle", d.cycle), zap.Int("transitions", d.transitions))
}

// SetSpeed applies a new speed multiplier, clamped to the configured range and
// snapped to the step. The pending wait is cancelled and a full dwell at the new
// speed is scheduled. Returns the applied speed.
func (d *Driver) SetSpeed(v float64) float64 {
	applied := d.clampSpeed(v)

	d.mu.Lock()
	old := d.speed
	if applied == old {
		d.mu.Unlock()
		return applied
	}
	d.speed = applied
	if d.running {
		d.scheduleLocked()
	}
	snap := d.snapshotLocked()
	d.broadcastLocked(snap)
	d.mu.Unlock()

	d.logger.Debug("speed changed", zap.Float64("old", old), zap.Float64("new", applied))
	if err := d.rec.RecordSpeedChange(&recorder.SpeedChangeEvent{
		OldSpeed: old, NewSpeed: applied, Phase: snap.Phase, Cycle: snap.Cycle,
	}); err != nil {
		d.logger.Error("record speed change", zap.Error(err))
	}
	return applied
}

// Speed returns the current speed multiplier.
func (d *Driver) Speed() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.speed
}

// Snapshot returns a copy of the current state.
func (d *Driver) Snapshot() model.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.snapshotLocked()
}

// Subscribe returns a channel receiving a snapshot after every transition and
// speed change. Slow readers only see the latest snapshot. The channel is closed
// by the returned cancel func or when the driver stops.
func (d *Driver) Subscribe() (<-chan model.Snapshot, func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.nextSub
	d.nextSub++
	ch := make(chan model.Snapshot, 1)
	d.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			if c, ok := d.subs[id]; ok {
				close(c)
				delete(d.subs, id)
			}
		})
	}
}

// Subscribers returns the number of active subscriptions.
func (d *Driver) Subscribers() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.subs)
}

// Dwell is the wait spent in phase at the given speed.
func (d *Driver) Dwell(phase model.Phase, speed float64) time.Duration {
	return time.Duration(float64(d.opts.BaseDwell[phase]) / speed)
}

func (d *Driver) advance(gen uint64) {
	d.mu.Lock()
	if !d.running || gen != d.gen {
		d.mu.Unlock()
		return
	}
	from := d.phase
	next, wrapped := from.Next()
	d.phase = next
	if wrapped {
		d.cycle++
	}
	d.transitions++
	d.updatedAt = d.clock.Now()
	d.scheduleLocked()
	snap := d.snapshotLocked()
	d.broadcastLocked(snap)
	d.mu.Unlock()

	d.logger.Debug("phase transition",
		zap.String("from", string(from)),
		zap.String("to", string(snap.Phase)),
		zap.Int("cycle", snap.Cycle),
		zap.Int64("dwell_ms", snap.DwellMS),
	)
	if err := d.rec.RecordTransition(&recorder.TransitionEvent{
		From: from, To: snap.Phase, Cycle: snap.Cycle, Speed: snap.Speed, DwellMS: snap.DwellMS,
	}); err != nil {
		d.logger.Error("record transition", zap.Error(err))
	}
}

// scheduleLocked replaces any pending timer with one for the current phase and speed.
func (d *Driver) scheduleLocked() {
	d.cancelLocked()
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.Dwell(d.phaseLocked(), d.speed), func() { d.advance(gen) })
}

// cancelLocked stops the pending timer and invalidates its callback.
func (d *Driver) cancelLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

func (d *Driver) broadcastLocked(snap model.Snapshot) {
	for _, ch := range d.subs {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}

func (d *Driver) phaseLocked() model.Phase {
	return d.phase
}

func (d *Driver) snapshotLocked() model.Snapshot {
	phase := d.phaseLocked()
	return model.Snapshot{
		Phase:       phase,
		PhaseIndex:  phase.Index(),
		Cycle:       d.cycle,
		Transitions: d.transitions,
		Speed:       d.speed,
		DwellMS:     d.Dwell(phase, d.speed).Milliseconds(),
		Meta:        Meta(phase),
		Lanes:       Lanes(phase),
		Particles:   Particles(phase, d.cycle, d.speed),
		UpdatedAt:   d.updatedAt,
	}
}

// clampSpeed bounds v to [MinSpeed, MaxSpeed] and snaps it to the step grid.
func (d *Driver) clampSpeed(v float64) float64 {
	lo, hi, step := d.opts.MinSpeed, d.opts.MaxSpeed, d.opts.SpeedStep
	if math.IsNaN(v) {
		v = d.opts.InitialSpeed
	}
	if step > 0 {
		v = lo + math.Round((v-lo)/step)*step
	}
	v = math.Max(lo, math.Min(hi, v))
	return math.Round(v*1e6) / 1e6
}
