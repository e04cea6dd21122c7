/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package documents

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/acronis/go-crptapi/internal/libinfo"
)

// SubmissionResultSuccess is used as a result label value for successful submissions.
// Failed submissions are labeled with ErrorKind.
const SubmissionResultSuccess = "success"

// MetricsCollector is an interface for collecting metrics for document submissions.
type MetricsCollector interface {
	IncSubmissions(result string)
}

// PrometheusMetricsCollector is a Prometheus metrics collector.
type PrometheusMetricsCollector struct {
	Submissions *prometheus.CounterVec
}

var _ MetricsCollector = (*PrometheusMetricsCollector)(nil)

// NewPrometheusMetricsCollector creates a new Prometheus metrics collector.
func NewPrometheusMetricsCollector(namespace string) *PrometheusMetricsCollector {
	return &PrometheusMetricsCollector{
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "documents_submissions_total",
			Help:        "Number of document submissions partitioned by result.",
			ConstLabels: libinfo.ConstLabels(nil),
		}, []string{"result"}),
	}
}

// MustRegister registers the Prometheus metrics.
func (p *PrometheusMetricsCollector) MustRegister() {
	prometheus.MustRegister(p.Submissions)
}

// IncSubmissions increments the number of submissions with the given result.
func (p *PrometheusMetricsCollector) IncSubmissions(result string) {
	p.Submissions.WithLabelValues(result).Inc()
}

// Unregister the Prometheus metrics.
func (p *PrometheusMetricsCollector) Unregister() {
	prometheus.Unregister(p.Submissions)
}

type disabledMetrics struct{}

func (disabledMetrics) IncSubmissions(string) {}
