package scheduler

import (
	"sync"
	"time"
)

// Breaker is a circuit breaker over consecutive failures. The counter has a
// TTL: a failure older than the TTL no longer counts, so sporadic failures
// spread over hours never trip it. When the threshold is reached the counter
// resets, leaving the breaker ready for a fresh run after a restart.
type Breaker struct {
	threshold int
	ttl       time.Duration
	now       func() time.Time

	mu          sync.Mutex
	failures    int
	lastFailure time.Time
}

// BreakerOption is a functional option for configuring the breaker.
type BreakerOption func(*Breaker)

// WithClock replaces the breaker's time source. Used in tests.
func WithClock(now func() time.Time) BreakerOption {
	return func(b *Breaker) {
		b.now = now
	}
}

// NewBreaker creates a breaker that trips after threshold consecutive
// failures recorded within ttl of each other.
func NewBreaker(threshold int, ttl time.Duration, opts ...BreakerOption) *Breaker {
	b := &Breaker{
		threshold: threshold,
		ttl:       ttl,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Record counts one failure and reports whether the breaker tripped.
func (b *Breaker) Record() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	if !b.lastFailure.IsZero() && now.Sub(b.lastFailure) > b.ttl {
		b.failures = 0
	}

	b.failures++
	b.lastFailure = now

	if b.failures >= b.threshold {
		b.failures = 0
		b.lastFailure = time.Time{}
		return true
	}

	return false
}

// Reset clears the failure counter. Called after any successful pass.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures = 0
	b.lastFailure = time.Time{}
}

// Failures returns the current consecutive failure count.
func (b *Breaker) Failures() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failures
}
