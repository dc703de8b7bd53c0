package sources

import (
	"sync"
	"time"
)

// Clock abstracts wall-clock access so the limiter can be tested without
// real waits.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time        { return time.Now() }
func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

// RateLimiter enforces a minimum interval between calls.
type RateLimiter struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
	clock    Clock
}

// NewRateLimiter creates a limiter with the specified interval between
// requests, using the real clock.
func NewRateLimiter(interval time.Duration) *RateLimiter {
	return NewRateLimiterWithClock(interval, realClock{})
}

// NewRateLimiterWithClock creates a limiter with an explicit clock.
func NewRateLimiterWithClock(interval time.Duration, clock Clock) *RateLimiter {
	return &RateLimiter{
		interval: interval,
		clock:    clock,
	}
}

// Wait blocks until the next request can be made according to the limit.
func (r *RateLimiter) Wait() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	if !r.last.IsZero() {
		elapsed := now.Sub(r.last)
		if elapsed < r.interval {
			r.clock.Sleep(r.interval - elapsed)
		}
	}
	r.last = r.clock.Now()
}
