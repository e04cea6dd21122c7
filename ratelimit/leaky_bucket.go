/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/throttled/throttled/v2"
	"github.com/throttled/throttled/v2/store/memstore"
)

const leakyBucketKey = "global"

// LeakyBucketLimiter implements GCRA (Generic Cell Rate Algorithm). It's a leaky bucket variant algorithm.
// More details and good explanation of this alg is provided here: https://brandur.org/rate-limiting#gcra.
// Up to limit callers are admitted at once, then the bucket leaks one slot every window/limit.
type LeakyBucketLimiter struct {
	limiter *throttled.GCRARateLimiterCtx
}

var _ Limiter = (*LeakyBucketLimiter)(nil)

// NewLeakyBucketLimiter creates a new leaky bucket rate limiter.
func NewLeakyBucketLimiter(limit int, window time.Duration) (*LeakyBucketLimiter, error) {
	if err := validateParams(limit, window); err != nil {
		return nil, err
	}
	if window < time.Duration(limit) {
		// GCRA emits one slot per window/limit, which must not round down to zero.
		return nil, fmt.Errorf("%w: window %s is too short for limit %d", ErrInvalidConfiguration, window, limit)
	}
	gcraStore, err := memstore.NewCtx(1)
	if err != nil {
		return nil, fmt.Errorf("new in-memory store: %w", err)
	}
	quota := throttled.RateQuota{
		MaxRate:  throttled.PerDuration(limit, window),
		MaxBurst: limit - 1,
	}
	gcraLimiter, err := throttled.NewGCRARateLimiterCtx(gcraStore, quota)
	if err != nil {
		return nil, fmt.Errorf("new GCRA rate limiter: %w", err)
	}
	return &LeakyBucketLimiter{gcraLimiter}, nil
}

// Acquire blocks until the bucket has room for the caller.
func (l *LeakyBucketLimiter) Acquire(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return &WaitInterruptedError{Inner: err}
		}
		limited, res, err := l.limiter.RateLimitCtx(ctx, leakyBucketKey, 1)
		if err != nil {
			return fmt.Errorf("GCRA rate limit: %w", err)
		}
		if !limited {
			return nil
		}
		if err = sleepContext(ctx, res.RetryAfter); err != nil {
			return &WaitInterruptedError{Inner: err}
		}
	}
}
