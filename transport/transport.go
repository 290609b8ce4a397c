package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/http2"

	"github.com/restkit/restkit/client"
	"github.com/restkit/restkit/logger"
	"github.com/restkit/restkit/observability"
)

const headerRequestID = "X-Request-Id"

// Transport sends client.Request values over net/http. It is safe for
// concurrent use; the underlying *http.Client carries the shared
// connection pool.
type Transport struct {
	httpClient *http.Client
	config     Config
	log        *logger.Logger
	metrics    *observability.Metrics
	traced     bool
}

// compile-time assertions
var _ client.Client = (*Transport)(nil)

// Option customizes a Transport.
type Option func(*Transport)

// WithHTTPClient replaces the constructed *http.Client entirely. The
// caller keeps responsibility for timeouts and connection reuse.
func WithHTTPClient(hc *http.Client) Option {
	return func(t *Transport) { t.httpClient = hc }
}

// WithLogger replaces the default component logger.
func WithLogger(l *logger.Logger) Option {
	return func(t *Transport) { t.log = l }
}

// WithTracing enables OpenTelemetry instrumentation: one span per send
// plus request counters and duration histograms.
func WithTracing() Option {
	return func(t *Transport) { t.traced = true }
}

// New creates a Transport from the given configuration.
func New(cfg Config, opts ...Option) (*Transport, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t := &Transport{
		config: cfg,
		log:    logger.Get("transport"),
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.httpClient == nil {
		t.httpClient = newHTTPClient(cfg)
	}

	if t.traced {
		m, err := observability.NewMetrics()
		if err != nil {
			return nil, err
		}
		t.metrics = m
	}

	return t, nil
}

// newHTTPClient builds the underlying *http.Client. With EnableHTTP2 the
// transport speaks cleartext HTTP/2 (h2c); otherwise it clones the
// default transport.
func newHTTPClient(cfg Config) *http.Client {
	if cfg.EnableHTTP2 {
		return &http.Client{
			Transport: &http2.Transport{
				AllowHTTP: true,
				DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
					return (&net.Dialer{}).DialContext(ctx, network, addr)
				},
			},
			Timeout: cfg.Timeout,
		}
	}
	return &http.Client{
		Transport: http.DefaultTransport.(*http.Transport).Clone(),
		Timeout:   cfg.Timeout,
	}
}

// Base returns the configured root address.
func (t *Transport) Base() string {
	return t.config.BaseURL
}

// Send transports the request and returns the raw response. Every
// underlying failure comes back as a *client.TransportError; status codes
// are not interpreted here — that is the pipeline's job.
func (t *Transport) Send(ctx context.Context, req client.Request) (*client.Response, error) {
	httpReq, err := t.buildRequest(ctx, req)
	if err != nil {
		return nil, client.NewTransportError("build", req.URL, err)
	}

	requestID := uuid.NewString()
	httpReq.Header.Set(headerRequestID, requestID)

	if t.traced {
		spanCtx, span := observability.StartSpan(ctx, observability.SpanHTTPSend,
			trace.WithAttributes(
				attribute.String(observability.AttrHTTPMethod, string(req.Method)),
				attribute.String(observability.AttrHTTPURL, req.URL),
				attribute.String(observability.AttrRequestID, requestID),
			),
		)
		defer span.End()
		ctx = spanCtx
		httpReq = httpReq.WithContext(ctx)
	}

	start := time.Now()
	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		if t.metrics != nil {
			t.metrics.RecordError(ctx, string(req.Method))
		}
		observability.SetSpanError(ctx, err)
		t.log.Error("send failed", logger.Fields(
			logger.FieldRequestID, requestID,
			logger.FieldURL, req.URL,
			logger.FieldError, err.Error(),
		))
		return nil, client.NewTransportError("send", req.URL, err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, client.NewTransportError("read", req.URL, err)
	}

	// net/http follows redirects, so report the URL actually responded from.
	finalURL := req.URL
	if httpResp.Request != nil && httpResp.Request.URL != nil {
		finalURL = httpResp.Request.URL.String()
	}

	duration := time.Since(start)
	if t.metrics != nil {
		t.metrics.RecordRequest(ctx, string(req.Method), httpResp.StatusCode, duration)
	}
	t.log.Debug("send completed", logger.Fields(
		logger.FieldRequestID, requestID,
		logger.FieldStatus, httpResp.StatusCode,
		logger.FieldURL, finalURL,
		logger.FieldDuration, duration.Milliseconds(),
	))

	return &client.Response{
		URL:  finalURL,
		Code: httpResp.StatusCode,
		Body: body,
	}, nil
}

// buildRequest constructs the wire request from a client.Request without
// mutating it.
func (t *Transport) buildRequest(ctx context.Context, req client.Request) (*http.Request, error) {
	if req.URL == "" {
		return nil, errors.New("empty request url")
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, string(req.Method), req.URL, body)
	if err != nil {
		return nil, err
	}

	q, err := EncodeQuery(req.Query)
	if err != nil {
		return nil, err
	}
	if q != "" {
		if httpReq.URL.RawQuery != "" {
			httpReq.URL.RawQuery += "&" + q
		} else {
			httpReq.URL.RawQuery = q
		}
	}

	for k, v := range t.config.Headers {
		httpReq.Header.Set(k, v)
	}
	if t.config.UserAgent != "" {
		httpReq.Header.Set("User-Agent", t.config.UserAgent)
	}
	// Request-level headers come last; Add keeps repeated names intact.
	for _, h := range req.Headers {
		httpReq.Header.Add(h.Name, h.Value)
	}

	return httpReq, nil
}

// Blocking returns an adapter satisfying client.BlockingClient backed by
// this transport. Calls run with context.Background().
func (t *Transport) Blocking() *BlockingTransport {
	return &BlockingTransport{t: t}
}

// BlockingTransport is the synchronous adapter over a Transport.
type BlockingTransport struct {
	t *Transport
}

var _ client.BlockingClient = (*BlockingTransport)(nil)

// Send performs the exchange on the calling goroutine.
func (b *BlockingTransport) Send(req client.Request) (*client.Response, error) {
	return b.t.Send(context.Background(), req)
}

// Base returns the configured root address.
func (b *BlockingTransport) Base() string {
	return b.t.Base()
}
