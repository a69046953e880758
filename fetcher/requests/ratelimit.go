package requests

import (
	"context"
	"sync"
	"time"
	"winalyze/pkg/config"
)

// Single riot rate limiting.
type RiotLimit struct {
	limit         int
	resetInterval time.Duration
	count         int
	lastReset     time.Time
}

// Full riot rate limit, containing all the constraints.
// Requests are only spaced, never retried.
type RateLimiter struct {
	windows []*RiotLimit
	mu      sync.Mutex
}

// Create a instance of the rate limiter from the configured windows.
func CreateRateLimiter() *RateLimiter {
	return NewRateLimiter(config.Limits.Lower, config.Limits.Higher)
}

// NewRateLimiter creates a limiter enforcing every given window.
// Windows without a positive count and interval can never be satisfied and are ignored.
func NewRateLimiter(windows ...config.LimitWindow) *RateLimiter {
	now := time.Now()
	limiter := &RateLimiter{}
	for _, window := range windows {
		if window.Count <= 0 || window.ResetInterval <= 0 {
			continue
		}
		limiter.windows = append(limiter.windows, &RiotLimit{
			limit:         window.Count,
			resetInterval: window.ResetInterval,
			lastReset:     now,
		})
	}
	return limiter
}

// Reset the count.
func (r *RateLimiter) resetCounts() {
	// Get the current time.
	now := time.Now()
	// Loop through each window and verify if can reset.
	for _, window := range r.windows {
		if now.Sub(window.lastReset) >= window.resetInterval {
			window.count = 0
			window.lastReset = now
		}
	}
}

// Check if the window is on it's limits.
func (r *RateLimiter) checkLimits() bool {
	for _, window := range r.windows {
		if window.count >= window.limit {
			return false
		}
	}
	return true
}

// Loop through each window and increment the counter.
func (r *RateLimiter) incrementCounts() {
	for _, window := range r.windows {
		window.count++
	}
}

// WaitApi blocks until a request can be made or the context is done.
func (r *RateLimiter) WaitApi(ctx context.Context) error {
	for {
		wait, ok := r.reserve()
		if ok {
			return nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// reserve takes a slot when available, otherwise returns how long until the blocking windows reset.
func (r *RateLimiter) reserve() (time.Duration, bool) {
	// Locks the limiter.
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resetCounts()

	if r.checkLimits() {
		r.incrementCounts()
		return 0, true
	}

	var waitTime time.Duration
	for _, window := range r.windows {
		// If it's not this window that is limited, just continue.
		if window.count < window.limit {
			continue
		}

		waitTill := window.resetInterval - time.Since(window.lastReset)
		if waitTill > waitTime {
			waitTime = waitTill
		}
	}
	return waitTime, false
}
