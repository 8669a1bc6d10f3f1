package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter defines the interface for rate limiting publishes per integration
type Limiter interface {
	Allow(integrationID string) bool
}

// InMemoryLimiter is an implementation of Limiter stored in memory
type InMemoryLimiter struct {
	integrations map[string]*rate.Limiter
	mu           sync.Mutex
	r            rate.Limit // Rate of adding tokens (e.g., 1 publish every 3 seconds)
	b            int        // Bucket size (e.g., can publish 3 groups in a row)
}

// NewInMemoryLimiter creates a new rate limiter
// Example: NewInMemoryLimiter(20, time.Minute, 3) -> allows 20 publishes per minute, burst of 3
func NewInMemoryLimiter(requests int, per time.Duration, burst int) Limiter {
	return &InMemoryLimiter{
		integrations: make(map[string]*rate.Limiter),
		r:            rate.Every(per / time.Duration(requests)),
		b:            burst,
	}
}

// Allow checks if a publish to the integration is allowed right now
func (l *InMemoryLimiter) Allow(integrationID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.integrations[integrationID]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.integrations[integrationID] = limiter
	}

	return limiter.Allow()
}
