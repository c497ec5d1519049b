package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock returns the timestamp stamped onto new records.
type Clock func() time.Time

// CoarseResolution is the refresh interval of the coarse clock.
const CoarseResolution = 500 * time.Microsecond

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// StartCoarseClock starts the background goroutine that caches
// time.Now() every CoarseResolution. The goroutine is started exactly
// once and runs for the lifetime of the process, as the registry does.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(CoarseResolution)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseNow returns the most recently cached time. It falls back to
// time.Now when the coarse clock has not been started.
func CoarseNow() time.Time {
	if t := coarseNow.Load(); t != nil {
		return *t
	}
	return time.Now()
}

// CoarseClock starts the coarse clock and returns it as a Clock.
func CoarseClock() Clock {
	StartCoarseClock()
	return CoarseNow
}
