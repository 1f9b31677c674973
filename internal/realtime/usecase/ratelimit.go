package usecase

import (
	"sync"
	"time"
)

// rateLimiter counts connection attempts per user over a sliding window.
type rateLimiter struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	attempts map[string][]time.Time
	now      func() time.Time
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		limit:    limit,
		window:   window,
		attempts: make(map[string][]time.Time),
		now:      time.Now,
	}
}

func (r *rateLimiter) enabled() bool {
	return r.limit > 0 && r.window > 0
}

// allow records an attempt by userID and reports whether it fits the window.
func (r *rateLimiter) allow(userID string) bool {
	if !r.enabled() {
		return true
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	kept := r.recentLocked(userID, now)
	if len(kept) >= r.limit {
		r.attempts[userID] = kept
		return false
	}
	r.attempts[userID] = append(kept, now)
	return true
}

func (r *rateLimiter) recentLocked(userID string, now time.Time) []time.Time {
	start := now.Add(-r.window)
	kept := r.attempts[userID][:0]
	for _, ts := range r.attempts[userID] {
		if ts.After(start) {
			kept = append(kept, ts)
		}
	}
	return kept
}

// prune forgets users without an attempt inside the window.
func (r *rateLimiter) prune() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for userID := range r.attempts {
		if kept := r.recentLocked(userID, now); len(kept) == 0 {
			delete(r.attempts, userID)
		} else {
			r.attempts[userID] = kept
		}
	}
}

func (r *rateLimiter) cleanupLoop(done <-chan struct{}) {
	if !r.enabled() {
		return
	}
	ticker := time.NewTicker(r.window)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			r.prune()
		}
	}
}
