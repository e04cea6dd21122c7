/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package ratelimit

import (
	"context"
	"time"

	"github.com/RussellLuo/slidingwindow"
)

// SlidingWindowLimiter implements sliding window rate limiting algorithm.
// A caller that is not admitted sleeps until the next window boundary and tries again.
type SlidingWindowLimiter struct {
	limiter *slidingwindow.Limiter
	window  time.Duration
}

var _ Limiter = (*SlidingWindowLimiter)(nil)

// NewSlidingWindowLimiter creates a new sliding window rate limiter.
func NewSlidingWindowLimiter(limit int, window time.Duration) (*SlidingWindowLimiter, error) {
	if err := validateParams(limit, window); err != nil {
		return nil, err
	}
	lim, _ := slidingwindow.NewLimiter(window, int64(limit), func() (slidingwindow.Window, slidingwindow.StopFunc) {
		return slidingwindow.NewLocalWindow()
	})
	return &SlidingWindowLimiter{limiter: lim, window: window}, nil
}

// Acquire blocks until the sliding window admits the caller.
func (l *SlidingWindowLimiter) Acquire(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return &WaitInterruptedError{Inner: err}
		}
		if l.limiter.Allow() {
			return nil
		}
		now := time.Now()
		retryAfter := now.Truncate(l.window).Add(l.window).Sub(now)
		if err := sleepContext(ctx, retryAfter); err != nil {
			return &WaitInterruptedError{Inner: err}
		}
	}
}
