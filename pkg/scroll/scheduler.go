package scroll

import "time"

// Scheduler defers a callback by a duration. The default implementation uses
// time.AfterFunc. Tests can inject a fake scheduler via SetScheduler to
// control delayed gestures deterministically.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// timerScheduler uses real timers.
type timerScheduler struct{}

func (timerScheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// scheduler is the package-level timer source, replaceable for testing.
var scheduler Scheduler = timerScheduler{}

// SetScheduler replaces the delay scheduler. Returns the previous scheduler
// so callers can restore it during cleanup.
func SetScheduler(s Scheduler) Scheduler {
	prev := scheduler
	scheduler = s
	return prev
}
