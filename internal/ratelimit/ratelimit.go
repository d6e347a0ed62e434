// Package ratelimit provides per-identifier sliding-window admission
// control over in-memory state. Counters reset on process restart, and
// memory grows with the number of distinct identifiers; both are accepted
// properties of an ephemeral monitoring service.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter tracks request timestamps per identifier inside a trailing window.
type Limiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
}

// NewLimiter creates an empty limiter.
func NewLimiter() *Limiter {
	return &Limiter{
		requests: make(map[string][]time.Time),
	}
}

// Allow reports whether a request from identifier is admitted under the
// given limit and window. Timestamps older than the window are pruned
// lazily; the current request is recorded only when admitted, so the window
// never holds more than limit entries.
func (l *Limiter) Allow(identifier string, limit int, window time.Duration) bool {
	now := time.Now()
	cutoff := now.Add(-window)

	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.requests[identifier][:0]
	for _, t := range l.requests[identifier] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= limit {
		l.requests[identifier] = recent
		return false
	}

	l.requests[identifier] = append(recent, now)
	return true
}
