/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetricsRoundTripper(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()
	serverURL, err := url.Parse(server.URL)
	require.NoError(t, err)

	collector := NewPrometheusMetricsCollector("")
	metricsRoundTripper := NewMetricsRoundTripperWithOpts(http.DefaultTransport, MetricsRoundTripperOpts{
		RequestType: "test-request",
		Collector:   collector,
	})
	client := &http.Client{Transport: metricsRoundTripper}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, server.URL, nil)
	require.NoError(t, err)

	r, err := client.Do(req)
	require.NoError(t, err)
	_ = r.Body.Close()

	require.Equal(t, 1, testutil.CollectAndCount(collector.Durations))
	_, err = collector.Durations.GetMetricWithLabelValues("test-request", serverURL.Host, http.MethodPost, "418")
	require.NoError(t, err)
}

func TestMetricsRoundTripper_DefaultRequestType(t *testing.T) {
	rt := NewMetricsRoundTripperWithOpts(http.DefaultTransport, MetricsRoundTripperOpts{})
	require.Equal(t, DefaultRequestType, rt.(*MetricsRoundTripper).RequestType)
}
