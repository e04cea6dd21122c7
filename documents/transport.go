/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package documents

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// Response is a result of the HTTP call. Body is not returned.
type Response struct {
	StatusCode int
	Reason     string
}

// Transport sends the request body to the registry.
// It returns an error only for failures that don't produce an HTTP response.
type Transport interface {
	Post(ctx context.Context, url string, body []byte, header http.Header) (*Response, error)
}

// TransportFunc is an adapter to allow the use of ordinary functions as Transport.
type TransportFunc func(ctx context.Context, url string, body []byte, header http.Header) (*Response, error)

// Post calls f(ctx, url, body, header).
func (f TransportFunc) Post(ctx context.Context, url string, body []byte, header http.Header) (*Response, error) {
	return f(ctx, url, body, header)
}

// HTTPTransport is a Transport that uses *http.Client.
type HTTPTransport struct {
	Client *http.Client
}

var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport creates a new HTTPTransport.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	return &HTTPTransport{Client: client}
}

// Post sends POST request, drains and closes the response body.
func (t *HTTPTransport) Post(ctx context.Context, url string, body []byte, header http.Header) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := t.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	return &Response{StatusCode: resp.StatusCode, Reason: reasonPhrase(resp)}, nil
}

// reasonPhrase extracts the reason phrase from the status line ("503 Service Unavailable").
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
