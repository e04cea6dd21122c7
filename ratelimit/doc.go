/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

// Package ratelimit provides client side rate limiting for outbound calls.
//
// All limiters implement the Limiter interface: Acquire blocks the caller until
// a slot is available within the configured quota or until the passed context is done.
//
// The default algorithm is a fixed window with lazy reset (FixedWindowLimiter):
// at most Limit admissions happen within every window that starts when the first call
// after the previous window's expiry arrives. Note that admissions at the tail of one window
// and at the head of the next one may happen less than one window apart, so up to 2*Limit
// admissions may fall into an arbitrary sub-interval of the window length.
// Waiters are not served in FIFO order.
//
// Alternative algorithms (sliding window, leaky bucket and token bucket) are available
// and may be selected via Config.
package ratelimit
