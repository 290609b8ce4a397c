package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
)

// fakeClient is a scripted Client: it returns the configured response or
// error and records the requests it was handed.
type fakeClient struct {
	mu   sync.Mutex
	resp *Response
	err  error
	got  []Request
}

func (f *fakeClient) Send(_ context.Context, req Request) (*Response, error) {
	f.mu.Lock()
	f.got = append(f.got, req)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeClient) Base() string { return "http://fake.local" }

// fakeBlocking is the blocking mirror of fakeClient.
type fakeBlocking struct {
	resp *Response
	err  error
}

func (f *fakeBlocking) Send(req Request) (*Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeBlocking) Base() string { return "http://fake.local" }

func TestExecute_SuccessPassthrough(t *testing.T) {
	body := []byte(`{"ok":true}`)
	c := &fakeClient{resp: &Response{URL: "http://fake.local/v1", Code: 200, Body: body}}

	resp, err := Execute(context.Background(), c, Request{
		URL:    "http://fake.local/v1",
		Method: MethodGet,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Code != 200 {
		t.Errorf("expected 200, got %d", resp.Code)
	}
	if !bytes.Equal(resp.Body, body) {
		t.Errorf("body altered by pipeline: %q", resp.Body)
	}
	if resp.URL != "http://fake.local/v1" {
		t.Errorf("url altered by pipeline: %q", resp.URL)
	}
}

func TestExecute_SuccessRange(t *testing.T) {
	// Every code within [200, 208] is success, everything nearby is not.
	for code := 195; code <= 215; code++ {
		c := &fakeClient{resp: &Response{URL: "http://fake.local/v1", Code: code}}
		resp, err := Execute(context.Background(), c, Request{URL: "http://fake.local/v1", Method: MethodGet})

		want := code >= 200 && code <= 208
		if want {
			if err != nil {
				t.Errorf("code %d: expected success, got %v", code, err)
				continue
			}
			if resp.Code != code {
				t.Errorf("code %d: response code changed to %d", code, resp.Code)
			}
			continue
		}

		if err == nil {
			t.Errorf("code %d: expected error, got success", code)
			continue
		}
		re, ok := AsResponseError(err)
		if !ok {
			t.Errorf("code %d: expected *ResponseError, got %T", code, err)
			continue
		}
		if re.StatusCode != code {
			t.Errorf("code %d: error carries code %d", code, re.StatusCode)
		}
	}
}

func TestExecute_ServerError(t *testing.T) {
	c := &fakeClient{resp: &Response{
		URL:  "http://fake.local/missing",
		Code: 404,
		Body: []byte("not found"),
	}}

	_, err := Execute(context.Background(), c, Request{URL: "http://fake.local/missing", Method: MethodGet})
	if err == nil {
		t.Fatal("expected error")
	}

	re, ok := AsResponseError(err)
	if !ok {
		t.Fatalf("expected *ResponseError, got %T", err)
	}
	if re.StatusCode != 404 {
		t.Errorf("expected 404, got %d", re.StatusCode)
	}
	if re.URL != "http://fake.local/missing" {
		t.Errorf("unexpected url: %q", re.URL)
	}
	content, ok := re.Content()
	if !ok || content != "not found" {
		t.Errorf("expected content 'not found', got %q (valid=%v)", content, ok)
	}
}

func TestExecute_NonUTF8ErrorBody(t *testing.T) {
	c := &fakeClient{resp: &Response{
		URL:  "http://fake.local/boom",
		Code: 500,
		Body: []byte{0xFF, 0xFE},
	}}

	_, err := Execute(context.Background(), c, Request{URL: "http://fake.local/boom", Method: MethodGet})
	re, ok := AsResponseError(err)
	if !ok {
		t.Fatalf("expected *ResponseError, got %T", err)
	}
	if re.StatusCode != 500 {
		t.Errorf("expected 500, got %d", re.StatusCode)
	}
	if content, valid := re.Content(); valid {
		t.Errorf("expected invalid content, got %q", content)
	}
	// Raw bytes stay available for callers that want them.
	if !bytes.Equal(re.RawBody, []byte{0xFF, 0xFE}) {
		t.Errorf("raw body altered: %v", re.RawBody)
	}
}

func TestExecute_RangeBoundaries(t *testing.T) {
	t.Run("208 is success", func(t *testing.T) {
		c := &fakeClient{resp: &Response{URL: "http://fake.local", Code: 208}}
		resp, err := Execute(context.Background(), c, Request{URL: "http://fake.local", Method: MethodGet})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Code != 208 {
			t.Errorf("expected 208, got %d", resp.Code)
		}
	})

	t.Run("209 is failure", func(t *testing.T) {
		c := &fakeClient{resp: &Response{URL: "http://fake.local", Code: 209}}
		_, err := Execute(context.Background(), c, Request{URL: "http://fake.local", Method: MethodGet})
		re, ok := AsResponseError(err)
		if !ok {
			t.Fatalf("expected *ResponseError, got %T", err)
		}
		if re.StatusCode != 209 {
			t.Errorf("expected 209, got %d", re.StatusCode)
		}
	})
}

func TestExecute_EmptyErrorBody(t *testing.T) {
	c := &fakeClient{resp: &Response{URL: "http://fake.local", Code: 503}}
	_, err := Execute(context.Background(), c, Request{URL: "http://fake.local", Method: MethodGet})
	re, ok := AsResponseError(err)
	if !ok {
		t.Fatalf("expected *ResponseError, got %T", err)
	}
	// Empty body is valid UTF-8: content present but empty.
	content, valid := re.Content()
	if !valid || content != "" {
		t.Errorf("expected empty valid content, got %q (valid=%v)", content, valid)
	}
}

func TestExecute_SendErrorPropagatesVerbatim(t *testing.T) {
	sendErr := NewTransportError("send", "http://fake.local", errors.New("connection refused"))
	c := &fakeClient{err: sendErr}

	_, err := Execute(context.Background(), c, Request{URL: "http://fake.local", Method: MethodGet})
	if !errors.Is(err, sendErr) {
		t.Fatalf("expected the send error verbatim, got %v", err)
	}
	if IsResponseError(err) {
		t.Error("transport failure must not be classified as a response error")
	}
	if !IsTransportError(err) {
		t.Error("expected IsTransportError=true")
	}
}

func TestExecute_RequestNotMutated(t *testing.T) {
	req := Request{
		URL:    "http://fake.local/v1",
		Method: MethodPost,
		Query:  []QueryParam{{Key: "a", Value: 1}, {Key: "b", Value: "two"}},
		Headers: []Header{
			{Name: "X-One", Value: "1"},
		},
		Body: []byte("payload"),
	}
	c := &fakeClient{resp: &Response{URL: req.URL, Code: 200}}

	if _, err := Execute(context.Background(), c, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := c.got[0]
	if got.URL != req.URL || got.Method != req.Method {
		t.Error("request identity not preserved through the pipeline")
	}
	if len(got.Query) != 2 || got.Query[0].Key != "a" || got.Query[1].Key != "b" {
		t.Error("query order not preserved through the pipeline")
	}
	if !bytes.Equal(got.Body, []byte("payload")) {
		t.Error("body not preserved through the pipeline")
	}
}

func TestExecuteBlocking_MirrorsExecute(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := &fakeBlocking{resp: &Response{URL: "http://fake.local", Code: 204}}
		resp, err := ExecuteBlocking(c, Request{URL: "http://fake.local", Method: MethodDelete})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Code != 204 {
			t.Errorf("expected 204, got %d", resp.Code)
		}
	})

	t.Run("failure classification", func(t *testing.T) {
		c := &fakeBlocking{resp: &Response{URL: "http://fake.local", Code: 418, Body: []byte("teapot")}}
		_, err := ExecuteBlocking(c, Request{URL: "http://fake.local", Method: MethodGet})
		re, ok := AsResponseError(err)
		if !ok {
			t.Fatalf("expected *ResponseError, got %T", err)
		}
		if content, _ := re.Content(); content != "teapot" {
			t.Errorf("unexpected content: %q", content)
		}
	})

	t.Run("send failure verbatim", func(t *testing.T) {
		sendErr := errors.New("dial tcp: connection refused")
		c := &fakeBlocking{err: sendErr}
		_, err := ExecuteBlocking(c, Request{URL: "http://fake.local", Method: MethodGet})
		if !errors.Is(err, sendErr) {
			t.Fatalf("expected the send error verbatim, got %v", err)
		}
	})
}

func TestExecute_ConcurrentCallers(t *testing.T) {
	c := &fakeClient{resp: &Response{URL: "http://fake.local", Code: 200}}

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := Execute(context.Background(), c, Request{
				URL:    fmt.Sprintf("http://fake.local/%d", n),
				Method: MethodGet,
			})
			if err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent execute failed: %v", err)
	}
	if len(c.got) != 32 {
		t.Errorf("expected 32 recorded requests, got %d", len(c.got))
	}
}

func TestIsSuccessCode(t *testing.T) {
	tests := []struct {
		code int
		want bool
	}{
		{199, false},
		{200, true},
		{204, true},
		{208, true},
		{209, false},
		{226, false},
		{301, false},
		{404, false},
		{500, false},
	}
	for _, tc := range tests {
		if got := IsSuccessCode(tc.code); got != tc.want {
			t.Errorf("IsSuccessCode(%d) = %v, want %v", tc.code, got, tc.want)
		}
	}
}
