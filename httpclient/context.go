/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package httpclient

import (
	"context"

	"github.com/acronis/go-crptapi/log"
)

// ctxKey is a typed context key; every key is a distinct pointer.
type ctxKey[T any] struct {
	name string
}

var (
	requestTypeKey = &ctxKey[string]{"request type"}
	requestIDKey   = &ctxKey[string]{"request id"}
	loggerKey      = &ctxKey[log.FieldLogger]{"logger"}
)

func withValue[T any](ctx context.Context, key *ctxKey[T], v T) context.Context {
	return context.WithValue(ctx, key, v)
}

func valueFrom[T any](ctx context.Context, key *ctxKey[T]) T {
	v, _ := ctx.Value(key).(T)
	return v
}

// WithRequestType overrides the request type used in logs and metrics for requests made with ctx.
func WithRequestType(ctx context.Context, requestType string) context.Context {
	return withValue(ctx, requestTypeKey, requestType)
}

// RequestTypeFrom returns the request type stored in ctx or "".
func RequestTypeFrom(ctx context.Context) string {
	return valueFrom(ctx, requestTypeKey)
}

// WithRequestID stores the value sent in the X-Request-ID header.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withValue(ctx, requestIDKey, requestID)
}

// RequestIDFrom returns the request ID stored in ctx or "".
func RequestIDFrom(ctx context.Context) string {
	return valueFrom(ctx, requestIDKey)
}

// WithLogger stores a logger that takes precedence over the one configured in the client.
func WithLogger(ctx context.Context, logger log.FieldLogger) context.Context {
	return withValue(ctx, loggerKey, logger)
}

// LoggerFrom returns the logger stored in ctx or nil.
func LoggerFrom(ctx context.Context) log.FieldLogger {
	return valueFrom(ctx, loggerKey)
}
