package cube

import (
	"testing"
	"time"
)

func TestSchedulerSteps(t *testing.T) {
	s := NewScheduler(20*time.Millisecond, NewManualClock(0))
	var got []time.Duration
	s.Steps(3, func(now time.Duration) { got = append(got, now) })

	want := []time.Duration{20 * time.Millisecond, 40 * time.Millisecond, 60 * time.Millisecond}
	if len(got) != len(want) {
		t.Fatalf("got %d frames, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("frame %d at %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSchedulerRunStopsOnQuit(t *testing.T) {
	clock := NewManualClock(0)
	s := NewScheduler(time.Millisecond, clock)
	quit := make(chan struct{})
	done := make(chan struct{})
	frames := 0

	go func() {
		defer close(done)
		s.Run(quit, func(now time.Duration) {
			frames++
			clock.Advance(time.Millisecond)
			if frames == 5 {
				close(quit)
			}
		})
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit was closed")
	}
	if frames < 5 {
		t.Errorf("got %d frames, want at least 5", frames)
	}
}

func TestSchedulerDefaults(t *testing.T) {
	s := NewScheduler(0, nil)
	if s.Interval != DefaultInterval {
		t.Errorf("interval = %v, want %v", s.Interval, DefaultInterval)
	}
	if _, ok := s.Clock.(*SystemClock); !ok {
		t.Errorf("clock = %T, want *SystemClock", s.Clock)
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(time.Second)
	c.Advance(500 * time.Millisecond)
	if got := c.Now(); got != 1500*time.Millisecond {
		t.Errorf("after Advance: %v", got)
	}
	c.Set(time.Second)
	if got := c.Now(); got != 1500*time.Millisecond {
		t.Errorf("Set backwards moved the clock to %v", got)
	}
	c.Advance(-time.Second)
	if got := c.Now(); got != 1500*time.Millisecond {
		t.Errorf("negative Advance moved the clock to %v", got)
	}
	c.Set(3 * time.Second)
	if got := c.Now(); got != 3*time.Second {
		t.Errorf("after Set: %v", got)
	}
}

func TestSystemClockMonotonic(t *testing.T) {
	c := NewSystemClock()
	t1 := c.Now()
	time.Sleep(5 * time.Millisecond)
	t2 := c.Now()
	if t2 <= t1 {
		t.Errorf("expected t2 > t1, got t1=%v t2=%v", t1, t2)
	}
}
