/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package ratelimit

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/acronis/go-crptapi/internal/libinfo"
)

// Results of waiting for a rate limit slot.
const (
	WaitResultAdmitted    = "admitted"
	WaitResultInterrupted = "interrupted"
)

// MetricsCollector is an interface for collecting rate limiting metrics.
type MetricsCollector interface {
	// WaitDuration observes how long a caller waited for a slot and how the wait ended.
	WaitDuration(algorithm Algorithm, result string, startTime time.Time)
}

// PrometheusMetricsCollector is a Prometheus metrics collector.
type PrometheusMetricsCollector struct {
	// WaitDurations is a histogram of the durations of waiting for a rate limit slot.
	WaitDurations *prometheus.HistogramVec
}

var _ MetricsCollector = (*PrometheusMetricsCollector)(nil)

// NewPrometheusMetricsCollector creates a new Prometheus metrics collector.
func NewPrometheusMetricsCollector(namespace string) *PrometheusMetricsCollector {
	return &PrometheusMetricsCollector{
		WaitDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "rate_limit_wait_duration_seconds",
			Help:        "A histogram of the durations of waiting for a client side rate limit slot.",
			Buckets:     []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10, 30, 60, 120, 300, 600},
			ConstLabels: libinfo.ConstLabels(nil),
		}, []string{"algorithm", "result"}),
	}
}

// MustRegister registers the Prometheus metrics.
func (p *PrometheusMetricsCollector) MustRegister() {
	prometheus.MustRegister(p.WaitDurations)
}

// WaitDuration observes the duration of waiting for a slot.
func (p *PrometheusMetricsCollector) WaitDuration(algorithm Algorithm, result string, startTime time.Time) {
	p.WaitDurations.WithLabelValues(string(algorithm), result).Observe(time.Since(startTime).Seconds())
}

// Unregister the Prometheus metrics.
func (p *PrometheusMetricsCollector) Unregister() {
	prometheus.Unregister(p.WaitDurations)
}

// InstrumentedLimiter is a Limiter that measures time spent in Acquire of the delegate.
type InstrumentedLimiter struct {
	// Delegate is the wrapped limiter.
	Delegate Limiter

	// Algorithm is used as a label value.
	Algorithm Algorithm

	// Collector is a metrics collector.
	Collector MetricsCollector
}

var _ Limiter = (*InstrumentedLimiter)(nil)

// NewInstrumentedLimiter creates a new InstrumentedLimiter.
func NewInstrumentedLimiter(delegate Limiter, algorithm Algorithm, collector MetricsCollector) *InstrumentedLimiter {
	return &InstrumentedLimiter{Delegate: delegate, Algorithm: algorithm, Collector: collector}
}

// Acquire calls the delegate and observes the wait duration.
func (l *InstrumentedLimiter) Acquire(ctx context.Context) error {
	start := time.Now()
	err := l.Delegate.Acquire(ctx)
	result := WaitResultAdmitted
	if err != nil {
		result = WaitResultInterrupted
	}
	l.Collector.WaitDuration(l.Algorithm, result, start)
	return err
}
