package sources

import (
	"testing"
	"time"
)

// fakeClock advances manually; Sleep records how long was requested and
// moves the clock forward so no test ever waits on the wall clock.
type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func (f *fakeClock) Now() time.Time { return f.now }
func (f *fakeClock) Sleep(d time.Duration) {
	f.slept = append(f.slept, d)
	f.now = f.now.Add(d)
}

func TestRateLimiter_FirstCallDoesNotWait(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	rl := NewRateLimiterWithClock(3*time.Second, clock)

	rl.Wait()
	if len(clock.slept) != 0 {
		t.Errorf("First call should not sleep, slept %v", clock.slept)
	}
}

func TestRateLimiter_EnforcesInterval(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	rl := NewRateLimiterWithClock(3*time.Second, clock)

	rl.Wait()
	clock.now = clock.now.Add(1 * time.Second)
	rl.Wait()

	if len(clock.slept) != 1 || clock.slept[0] != 2*time.Second {
		t.Errorf("Expected a 2s sleep to honor the 3s interval, got %v", clock.slept)
	}
}

func TestRateLimiter_NoWaitAfterInterval(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	rl := NewRateLimiterWithClock(3*time.Second, clock)

	rl.Wait()
	clock.now = clock.now.Add(5 * time.Second)
	rl.Wait()

	if len(clock.slept) != 0 {
		t.Errorf("Elapsed interval should not sleep, got %v", clock.slept)
	}
}
