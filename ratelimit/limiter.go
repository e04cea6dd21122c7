/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/acronis/go-crptapi/log"
)

// ErrInvalidConfiguration is returned when a limiter is constructed with a non-positive limit or window.
var ErrInvalidConfiguration = errors.New("invalid rate limit configuration")

// ErrInterrupted is matched (via errors.Is) by errors returned from Acquire
// when the context is done before a slot is reserved.
var ErrInterrupted = errors.New("rate limit wait interrupted")

// Limiter gates outbound calls.
type Limiter interface {
	// Acquire blocks until a slot is available and reserves it.
	// If ctx is done before a slot is reserved, *WaitInterruptedError is returned and no slot is consumed.
	Acquire(ctx context.Context) error
}

// Algorithm defines possible rate limiting algorithms.
type Algorithm string

// Rate limiting algorithms.
const (
	AlgorithmFixedWindow   Algorithm = "fixedWindow"
	AlgorithmSlidingWindow Algorithm = "slidingWindow"
	AlgorithmLeakyBucket   Algorithm = "leakyBucket"
	AlgorithmTokenBucket   Algorithm = "tokenBucket"
)

// Opts represents options for the limiter constructed by New.
type Opts struct {
	// Logger is used for debug messages about waiting callers. Logging is disabled if nil.
	Logger log.FieldLogger

	// MetricsCollector, if set, makes New wrap the limiter with InstrumentedLimiter.
	MetricsCollector MetricsCollector
}

// New creates a new Limiter using the algorithm, limit and window from the configuration.
func New(cfg *Config, opts Opts) (Limiter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfiguration)
	}
	window := time.Duration(cfg.Window)
	var lim Limiter
	var err error
	switch cfg.Algorithm {
	case AlgorithmFixedWindow, "":
		lim, err = NewFixedWindowLimiterWithOpts(cfg.Limit, window, FixedWindowLimiterOpts{Logger: opts.Logger})
	case AlgorithmSlidingWindow:
		lim, err = NewSlidingWindowLimiter(cfg.Limit, window)
	case AlgorithmLeakyBucket:
		lim, err = NewLeakyBucketLimiter(cfg.Limit, window)
	case AlgorithmTokenBucket:
		lim, err = NewTokenBucketLimiter(cfg.Limit, window)
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidConfiguration, cfg.Algorithm)
	}
	if err != nil {
		return nil, err
	}
	if opts.MetricsCollector != nil {
		algorithm := cfg.Algorithm
		if algorithm == "" {
			algorithm = AlgorithmFixedWindow
		}
		lim = NewInstrumentedLimiter(lim, algorithm, opts.MetricsCollector)
	}
	return lim, nil
}

// WaitInterruptedError is returned by Acquire when the context is done before a slot is reserved.
type WaitInterruptedError struct {
	Inner error
}

func (e *WaitInterruptedError) Error() string {
	return fmt.Sprintf("wait due to client side rate limiting: %s", e.Inner.Error())
}

// Unwrap returns the next error in the error chain.
func (e *WaitInterruptedError) Unwrap() error {
	return e.Inner
}

// Is reports whether the target is ErrInterrupted.
func (e *WaitInterruptedError) Is(target error) bool {
	return target == ErrInterrupted
}

func validateParams(limit int, window time.Duration) error {
	if limit <= 0 {
		return fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidConfiguration, limit)
	}
	if window <= 0 {
		return fmt.Errorf("%w: window must be positive, got %s", ErrInvalidConfiguration, window)
	}
	return nil
}

// sleepContext pauses the current goroutine for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
