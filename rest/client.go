package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/restkit/restkit/client"
)

// Client wraps a restkit client with JSON conventions.
type Client struct {
	c client.Client
}

// New creates a REST client over any client.Client implementation.
func New(c client.Client) *Client {
	return &Client{c: c}
}

// Unwrap returns the underlying client for direct pipeline access.
func (rc *Client) Unwrap() client.Client {
	return rc.c
}

// RequestOption configures a single REST request.
type RequestOption func(*client.Request)

// WithQuery appends ordered query parameters to the request.
func WithQuery(params ...client.QueryParam) RequestOption {
	return func(r *client.Request) {
		r.Query = append(r.Query, params...)
	}
}

// WithHeaders appends headers to the request.
func WithHeaders(headers ...client.Header) RequestOption {
	return func(r *client.Request) {
		r.Headers = append(r.Headers, headers...)
	}
}

// Response wraps a typed REST response.
type Response[T any] struct {
	// Code is the HTTP status code, always within the success range.
	Code int
	// Data is the decoded response body. The zero value when the body
	// was empty.
	Data T
}

// Get performs a GET request and decodes the JSON response into T.
func Get[T any](ctx context.Context, rc *Client, path string, opts ...RequestOption) (*Response[T], error) {
	return do[T](ctx, rc, client.MethodGet, path, nil, opts...)
}

// Post performs a POST request with a JSON body and decodes the response into T.
func Post[T any](ctx context.Context, rc *Client, path string, body any, opts ...RequestOption) (*Response[T], error) {
	return do[T](ctx, rc, client.MethodPost, path, body, opts...)
}

// Put performs a PUT request with a JSON body and decodes the response into T.
func Put[T any](ctx context.Context, rc *Client, path string, body any, opts ...RequestOption) (*Response[T], error) {
	return do[T](ctx, rc, client.MethodPut, path, body, opts...)
}

// Patch performs a PATCH request with a JSON body and decodes the response into T.
func Patch[T any](ctx context.Context, rc *Client, path string, body any, opts ...RequestOption) (*Response[T], error) {
	return do[T](ctx, rc, client.MethodPatch, path, body, opts...)
}

// Delete performs a DELETE request and decodes the JSON response into T.
func Delete[T any](ctx context.Context, rc *Client, path string, opts ...RequestOption) (*Response[T], error) {
	return do[T](ctx, rc, client.MethodDelete, path, nil, opts...)
}

// List performs a LIST request and decodes the JSON response into T.
func List[T any](ctx context.Context, rc *Client, path string, opts ...RequestOption) (*Response[T], error) {
	return do[T](ctx, rc, client.MethodList, path, nil, opts...)
}

func do[T any](ctx context.Context, rc *Client, method client.Method, path string, body any, opts ...RequestOption) (*Response[T], error) {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("rest: encoding request body: %w", err)
		}
		payload = data
	}

	req := client.Request{
		URL:    joinURL(rc.c.Base(), path),
		Method: method,
		Headers: []client.Header{
			{Name: "Content-Type", Value: "application/json"},
			{Name: "Accept", Value: "application/json"},
		},
		Body: payload,
	}
	for _, opt := range opts {
		opt(&req)
	}

	resp, err := client.Execute(ctx, rc.c, req)
	if err != nil {
		return nil, err
	}

	out := &Response[T]{Code: resp.Code}
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &out.Data); err != nil {
			return nil, fmt.Errorf("rest: decoding response from %s: %w", resp.URL, err)
		}
	}
	return out, nil
}

// joinURL combines the client base with an endpoint path. Absolute paths
// pass through untouched.
func joinURL(base, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
