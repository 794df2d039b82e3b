// Package ratelimit provides a swappable request rate limiter. The default
// implementation counts requests per key in fixed windows in process memory;
// multi-instance deployments can substitute a shared-store implementation
// behind the same interface.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter checks and increments a request counter keyed by client identity
// within a time window.
type Limiter interface {
	// Allow records a request for key and reports whether it is within the
	// limit. When the limit is exceeded, retryAfter is the time remaining
	// until the current window resets.
	Allow(key string) (ok bool, retryAfter time.Duration)
}

type window struct {
	count    int
	resetsAt time.Time
}

// MemoryLimiter is a fixed-window in-memory Limiter.
type MemoryLimiter struct {
	mu      sync.Mutex
	limit   int
	period  time.Duration
	windows map[string]*window
	now     func() time.Time
}

// NewMemoryLimiter creates a limiter allowing limit requests per period per key.
func NewMemoryLimiter(limit int, period time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   limit,
		period:  period,
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

// Allow implements Limiter.
func (l *MemoryLimiter) Allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || !w.resetsAt.After(now) {
		l.windows[key] = &window{count: 1, resetsAt: now.Add(l.period)}
		return true, 0
	}

	if w.count >= l.limit {
		return false, w.resetsAt.Sub(now)
	}
	w.count++
	return true, 0
}
