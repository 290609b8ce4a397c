package client

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ResponseError is produced by the execution pipeline when the server
// answered with a status code outside the accepted success range.
type ResponseError struct {
	// URL is the address the response came from.
	URL string
	// StatusCode is the status code the server returned.
	StatusCode int
	// RawBody is the raw response body (may be empty).
	RawBody []byte
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	return fmt.Sprintf("client: server returned HTTP %d from %s", e.StatusCode, e.URL)
}

// Content returns the response body decoded as UTF-8 text. The second
// return value is false when the body is not valid UTF-8; an empty body
// decodes to ("", true).
func (e *ResponseError) Content() (string, bool) {
	if !utf8.Valid(e.RawBody) {
		return "", false
	}
	return string(e.RawBody), true
}

// TransportError consolidates every failure originating inside a
// transport's Send: connection failures, malformed URLs, timeouts, I/O
// errors. Transport implementations must funnel all their faults through
// this type so no implementation-specific error escapes the contract.
type TransportError struct {
	// Op names the failed transport operation (e.g. "build", "send", "read").
	Op string
	// URL is the request URL the failure relates to.
	URL string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("client: %s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error { return e.Err }

// NewTransportError wraps err as a TransportError for the given operation.
func NewTransportError(op, url string, err error) *TransportError {
	return &TransportError{Op: op, URL: url, Err: err}
}

// IsResponseError reports whether err is a pipeline status classification.
func IsResponseError(err error) bool {
	var e *ResponseError
	return errors.As(err, &e)
}

// AsResponseError extracts the ResponseError from err, if any.
func AsResponseError(err error) (*ResponseError, bool) {
	var e *ResponseError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsTransportError reports whether err originated inside a transport's Send.
func IsTransportError(err error) bool {
	var e *TransportError
	return errors.As(err, &e)
}
