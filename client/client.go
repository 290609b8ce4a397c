package client

import (
	"context"

	"github.com/restkit/restkit/logger"
)

// Status codes within this inclusive range are treated as success.
// The range deliberately stops at 208 (Already Reported); 226 and all
// 3xx codes are classified as failures.
const (
	successCodeMin = 200
	successCodeMax = 208
)

// Client is the concurrent client contract. Send transports a Request and
// returns the raw Response, consolidating every underlying failure into a
// *TransportError. Implementations must be safe for use from multiple
// goroutines.
type Client interface {
	// Send performs the raw exchange. It must honor ctx cancellation,
	// surfacing it as an ordinary Send failure.
	Send(ctx context.Context, req Request) (*Response, error)

	// Base returns the configured root address used by callers to build
	// fully qualified request URLs.
	Base() string
}

// BlockingClient is the synchronous mirror of Client. Execute runs
// entirely on the calling goroutine and blocks until Send returns.
type BlockingClient interface {
	Send(req Request) (*Response, error)
	Base() string
}

// Execute runs req through c and validates the result. Transport failures
// from Send propagate verbatim; responses with a status code outside
// 200–208 become a *ResponseError. No retries happen at this layer.
func Execute(ctx context.Context, c Client, req Request) (*Response, error) {
	logOutgoing(req)

	resp, err := c.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	logIncoming(resp)
	if err := classify(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ExecuteBlocking is Execute for the blocking contract. The validation
// policy is shared with Execute; only the execution model differs.
func ExecuteBlocking(c BlockingClient, req Request) (*Response, error) {
	logOutgoing(req)

	resp, err := c.Send(req)
	if err != nil {
		return nil, err
	}

	logIncoming(resp)
	if err := classify(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// IsSuccessCode reports whether code falls within the accepted success
// range (200 through 208, inclusive).
func IsSuccessCode(code int) bool {
	return code >= successCodeMin && code <= successCodeMax
}

// classify converts an out-of-range response into a *ResponseError.
// Returns nil when the response is successful.
func classify(resp *Response) error {
	if IsSuccessCode(resp.Code) {
		return nil
	}
	return &ResponseError{
		URL:        resp.URL,
		StatusCode: resp.Code,
		RawBody:    resp.Body,
	}
}

// Diagnostics are a no-fail side channel: two informational records per
// call, outgoing and incoming.

func logOutgoing(req Request) {
	logger.Get("client").Info("sending request", map[string]interface{}{
		logger.FieldMethod: string(req.Method),
		logger.FieldURL:    req.URL,
		logger.FieldBytes:  len(req.Body),
	})
}

func logIncoming(resp *Response) {
	logger.Get("client").Info("received response", map[string]interface{}{
		logger.FieldStatus: resp.Code,
		logger.FieldURL:    resp.URL,
		logger.FieldBytes:  len(resp.Body),
	})
}
