// =======================
// cube/scheduler.go
// =======================

package cube

import "time"

// FrameFunc receives the timestamp of one frame.
type FrameFunc func(now time.Duration)

// DefaultInterval is one frame at 60Hz.
const DefaultInterval = time.Second / 60

// Scheduler delivers frames one at a time on the calling goroutine.
type Scheduler struct {
	Interval time.Duration
	Clock    Clock
}

// NewScheduler returns a scheduler ticking every interval, reading
// timestamps from clock. A nil clock uses the system clock.
func NewScheduler(interval time.Duration, clock Clock) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if clock == nil {
		clock = NewSystemClock()
	}
	return &Scheduler{Interval: interval, Clock: clock}
}

// Run calls fn on every tick until quit is closed.
func (s *Scheduler) Run(quit <-chan struct{}, fn FrameFunc) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			fn(s.Clock.Now())
		}
	}
}

// Steps drives n frames at synthetic timestamps Interval, 2*Interval, ...
// without touching the wall clock.
func (s *Scheduler) Steps(n int, fn FrameFunc) {
	for i := 1; i <= n; i++ {
		fn(time.Duration(i) * s.Interval)
	}
}
