/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package documents

import (
	"context"
	"errors"
	"net/http"

	"github.com/acronis/go-crptapi/httpclient"
	"github.com/acronis/go-crptapi/log"
	"github.com/acronis/go-crptapi/ratelimit"
)

// SignatureHeader is a name of the HTTP header with the caller-supplied signature.
const SignatureHeader = "Signature"

// RequestType is used in logs and metrics of the default HTTP client.
const RequestType = "documents-create"

var errNoResponse = errors.New("transport returned no response")

// Result is returned by Submit on success.
type Result struct {
	StatusCode int
}

// ClientOpts represents options for the Client.
type ClientOpts struct {
	// Limiter is shared by all Submit calls. If nil, it's built from Config.RateLimit.
	Limiter ratelimit.Limiter

	// Serializer is JSONSerializer by default.
	Serializer Serializer

	// Transport is HTTPTransport over HTTPClient by default.
	Transport Transport

	// HTTPClient is used by the default Transport.
	// If nil, the client is built by httpclient.NewWithOpts with the default configuration.
	HTTPClient *http.Client

	// Logger is disabled by default.
	Logger log.FieldLogger

	// MetricsCollector collects submission results.
	MetricsCollector MetricsCollector

	// RateLimitMetricsCollector is used only when Limiter is built from Config.RateLimit.
	RateLimitMetricsCollector ratelimit.MetricsCollector
}

// Client submits documents to the registry under a client side rate limit.
// It's safe for concurrent use.
type Client struct {
	endpoint   string
	signature  string
	limiter    ratelimit.Limiter
	serializer Serializer
	transport  Transport
	logger     log.FieldLogger
	metrics    MetricsCollector
}

// NewClient creates a new Client.
// Returned error is *Error of ErrKindInvalidConfiguration kind.
func NewClient(cfg *Config, opts ClientOpts) (*Client, error) {
	if cfg == nil {
		return nil, &Error{Kind: ErrKindInvalidConfiguration, Inner: errors.New("config is nil")}
	}
	if err := validateEndpoint(cfg.Endpoint); err != nil {
		return nil, &Error{Kind: ErrKindInvalidConfiguration, Inner: errors.New("endpoint " + err.Error())}
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.NewDisabledLogger()
	}

	limiter := opts.Limiter
	if limiter == nil {
		var err error
		limiter, err = ratelimit.New(&cfg.RateLimit, ratelimit.Opts{
			Logger:           logger,
			MetricsCollector: opts.RateLimitMetricsCollector,
		})
		if err != nil {
			return nil, &Error{Kind: ErrKindInvalidConfiguration, Inner: err}
		}
	}

	serializer := opts.Serializer
	if serializer == nil {
		serializer = JSONSerializer{}
	}

	transport := opts.Transport
	if transport == nil {
		httpClient := opts.HTTPClient
		if httpClient == nil {
			httpClient = httpclient.NewWithOpts(httpclient.NewDefaultConfig(), httpclient.Opts{
				RequestType: RequestType,
				Logger:      logger,
			})
		}
		transport = NewHTTPTransport(httpClient)
	}

	metrics := opts.MetricsCollector
	if metrics == nil {
		metrics = disabledMetrics{}
	}

	return &Client{
		endpoint:   cfg.Endpoint,
		signature:  cfg.Signature,
		limiter:    limiter,
		serializer: serializer,
		transport:  transport,
		logger:     logger,
		metrics:    metrics,
	}, nil
}

// Submit waits for a rate limit slot and sends the document to the registry.
// Returned error is *Error.
// The slot is consumed even if the submission fails after it was acquired.
func (c *Client) Submit(ctx context.Context, doc *Document) (*Result, error) {
	res, err := c.submit(ctx, doc)

	logger := c.logger
	if doc != nil {
		logger = logger.With(log.String("doc_id", doc.DocID))
	}
	if err != nil {
		var docErr *Error
		errors.As(err, &docErr)
		fields := []log.Field{log.String("kind", string(docErr.Kind)), log.Error(err)}
		if docErr.StatusCode != 0 {
			fields = append(fields, log.Int("status", docErr.StatusCode))
		}
		logger.Error("document submission failed", fields...)
		c.metrics.IncSubmissions(string(docErr.Kind))
		return nil, err
	}
	logger.Info("document submitted", log.Int("status", res.StatusCode))
	c.metrics.IncSubmissions(SubmissionResultSuccess)
	return res, nil
}

func (c *Client) submit(ctx context.Context, doc *Document) (*Result, error) {
	if err := c.limiter.Acquire(ctx); err != nil {
		return nil, &Error{Kind: limiterErrorKind(err), Inner: err}
	}

	body, err := c.serializer.Serialize(doc)
	if err != nil {
		return nil, &Error{Kind: ErrKindSerialization, Inner: err}
	}

	header := make(http.Header)
	header.Set("Content-Type", "application/json")
	header.Set(SignatureHeader, c.signature)

	resp, err := c.transport.Post(ctx, c.endpoint, body, header)
	if err != nil {
		return nil, &Error{Kind: ErrKindTransport, Inner: err}
	}
	if resp == nil {
		return nil, &Error{Kind: ErrKindTransport, Inner: errNoResponse}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Kind: ErrKindRemoteRejected, StatusCode: resp.StatusCode, Reason: resp.Reason}
	}
	return &Result{StatusCode: resp.StatusCode}, nil
}

// limiterErrorKind tells a cancelled wait from a failure of the limiter itself.
func limiterErrorKind(err error) ErrorKind {
	if errors.Is(err, ratelimit.ErrInterrupted) || errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return ErrKindInterrupted
	}
	return ErrKindRateLimit
}
