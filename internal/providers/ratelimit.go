package providers

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimiter paces API calls to stay under a provider's requests-per-minute
// quota. A zero or negative limit disables pacing.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter for the given requests-per-minute quota.
func NewRateLimiter(requestsPerMinute int) *RateLimiter {
	if requestsPerMinute <= 0 {
		return &RateLimiter{}
	}

	burst := requestsPerMinute / 5
	if burst < 1 {
		burst = 1
	}

	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), burst),
	}
}

// Wait blocks until a request slot is available or the context is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if r.limiter == nil {
		return ctx.Err()
	}
	return r.limiter.Wait(ctx)
}

// Allow reports whether a request may proceed immediately.
func (r *RateLimiter) Allow() bool {
	if r.limiter == nil {
		return true
	}
	return r.limiter.Allow()
}
