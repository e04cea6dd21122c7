/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// TokenBucketLimiter implements token bucket rate limiting algorithm.
// The bucket holds up to limit tokens and is refilled with one token every window/limit.
type TokenBucketLimiter struct {
	limiter *rate.Limiter
}

var _ Limiter = (*TokenBucketLimiter)(nil)

// NewTokenBucketLimiter creates a new token bucket rate limiter.
func NewTokenBucketLimiter(limit int, window time.Duration) (*TokenBucketLimiter, error) {
	if err := validateParams(limit, window); err != nil {
		return nil, err
	}
	return &TokenBucketLimiter{rate.NewLimiter(rate.Limit(float64(limit)/window.Seconds()), limit)}, nil
}

// Acquire blocks until a token is available.
// The reservation is canceled if ctx is done during the wait, so the token is returned to the bucket.
func (l *TokenBucketLimiter) Acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return &WaitInterruptedError{Inner: err}
	}
	r := l.limiter.Reserve()
	if err := sleepContext(ctx, r.Delay()); err != nil {
		r.Cancel()
		return &WaitInterruptedError{Inner: err}
	}
	return nil
}
