package quiz

import "time"

// Timer is a cancellation handle for a scheduled callback.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. Runner only schedules through it so tests
// can drive time by hand.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

// RealScheduler is backed by time.AfterFunc.
func RealScheduler() Scheduler { return realScheduler{} }

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
