/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

// Package httpclient provides an HTTP client with a chain of round trippers
// for logging, metrics, User-Agent and X-Request-ID headers.
package httpclient

import (
	"context"
	"net/http"
	"time"

	"github.com/acronis/go-crptapi/log"
)

// DefaultRequestType is used as a request type in logs and metrics if no other is specified.
const DefaultRequestType = "generic"

// CloneHTTPRequest creates a shallow copy of the request along with a deep copy of the Headers.
func CloneHTTPRequest(req *http.Request) *http.Request {
	r := new(http.Request)
	*r = *req
	r.Header = req.Header.Clone()
	if r.Header == nil {
		r.Header = make(http.Header)
	}
	return r
}

// Opts provides options for NewWithOpts and MustWithOpts functions.
type Opts struct {
	// UserAgent is a user agent string. "go-crptapi/<version>" is used if empty.
	UserAgent string

	// RequestType is a type of request. e.g. 'documents-create' or specific information to correlate.
	RequestType string

	// Delegate is the next RoundTripper in the chain. A clone of http.DefaultTransport is used if nil.
	Delegate http.RoundTripper

	// Logger is used for logging requests when the request context doesn't carry a logger.
	Logger log.FieldLogger

	// RequestIDProvider is a function that provides a request ID.
	RequestIDProvider func(ctx context.Context) string

	// Collector is a metrics collector. It's used only if metrics are enabled in the configuration.
	Collector MetricsCollector
}

// New creates a new *http.Client with the round trippers chain built according to the configuration.
func New(cfg *Config) *http.Client {
	return NewWithOpts(cfg, Opts{})
}

// NewWithOpts creates a new *http.Client with the round trippers chain built according to the configuration and options.
// The chain (from outer to inner) is: request id, user agent, metrics, logging, delegate.
func NewWithOpts(cfg *Config, opts Opts) *http.Client {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	delegate := opts.Delegate
	if delegate == nil {
		delegate = http.DefaultTransport.(*http.Transport).Clone()
	}

	requestType := opts.RequestType
	if requestType == "" {
		requestType = DefaultRequestType
	}

	if cfg.Logger.Mode != LoggingModeNone {
		logOpts := cfg.Logger.TransportOpts()
		logOpts.Logger = opts.Logger
		delegate = NewLoggingRoundTripperWithOpts(delegate, requestType, logOpts)
	}

	if cfg.Metrics.Enabled && opts.Collector != nil {
		delegate = NewMetricsRoundTripperWithOpts(delegate, MetricsRoundTripperOpts{
			RequestType: requestType,
			Collector:   opts.Collector,
		})
	}

	delegate = NewUserAgentRoundTripper(delegate, opts.UserAgent)

	delegate = NewRequestIDRoundTripperWithOpts(delegate, RequestIDRoundTripperOpts{
		RequestIDProvider: opts.RequestIDProvider,
	})

	return &http.Client{Transport: delegate, Timeout: time.Duration(cfg.Timeout)}
}
