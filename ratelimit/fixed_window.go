/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/acronis/go-crptapi/log"
)

// FixedWindowLimiterOpts represents options for FixedWindowLimiter.
type FixedWindowLimiterOpts struct {
	Logger log.FieldLogger
}

// FixedWindowLimiter admits at most limit callers per window.
// The window is reset lazily by the first caller that arrives after it has expired.
// The mutex is never held while a caller waits.
type FixedWindowLimiter struct {
	limit  int
	window time.Duration
	logger log.FieldLogger

	mu          sync.Mutex
	windowStart time.Time
	count       int
}

var _ Limiter = (*FixedWindowLimiter)(nil)

// NewFixedWindowLimiter creates a new FixedWindowLimiter.
func NewFixedWindowLimiter(limit int, window time.Duration) (*FixedWindowLimiter, error) {
	return NewFixedWindowLimiterWithOpts(limit, window, FixedWindowLimiterOpts{})
}

// NewFixedWindowLimiterWithOpts creates a new FixedWindowLimiter with the given options.
// The first window starts at construction time.
func NewFixedWindowLimiterWithOpts(limit int, window time.Duration, opts FixedWindowLimiterOpts) (*FixedWindowLimiter, error) {
	if err := validateParams(limit, window); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewDisabledLogger()
	}
	return &FixedWindowLimiter{
		limit:       limit,
		window:      window,
		logger:      logger,
		windowStart: time.Now(),
	}, nil
}

// Limit returns the maximum number of admissions per window.
func (l *FixedWindowLimiter) Limit() int {
	return l.limit
}

// Window returns the window length.
func (l *FixedWindowLimiter) Window() time.Duration {
	return l.window
}

// Acquire blocks until a slot in the current window is available and reserves it.
// An already done context is reported as interruption even if a slot is free.
func (l *FixedWindowLimiter) Acquire(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return &WaitInterruptedError{Inner: err}
		}
		wait, admitted := l.tryAcquire()
		if admitted {
			return nil
		}
		l.logger.Debug("rate limit is exhausted, waiting for the next window",
			log.Int("limit", l.limit), log.Duration("wait", wait))
		if err := sleepContext(ctx, wait); err != nil {
			return &WaitInterruptedError{Inner: err}
		}
	}
}

// tryAcquire reserves a slot if possible. Otherwise, it returns the time left until the current window expires.
func (l *FixedWindowLimiter) tryAcquire() (wait time.Duration, admitted bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(l.windowStart)
	if elapsed >= l.window {
		l.windowStart = now
		l.count = 0
		elapsed = 0
	}
	if l.count < l.limit {
		l.count++
		return 0, true
	}
	return l.window - elapsed, false
}
