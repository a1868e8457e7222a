package cycle

import "time"

// Timer is a pending scheduled call.
type Timer interface {
	Stop() bool
}

// Clock schedules a single delayed call.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}

type realClock struct{}

// RealClock schedules on the runtime timer.
func RealClock() Clock { return realClock{} }

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

func (realClock) Now() time.Time { return time.Now() }
