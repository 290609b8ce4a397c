package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// Route is a canned response for a path.
type Route struct {
	// Status is the response status code. Zero means 200.
	Status int
	// Body is the response body.
	Body []byte
	// Header holds extra response headers.
	Header map[string]string
}

// RecordedRequest captures one request the server received.
type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Server is a scripted test HTTP server backed by httptest.Server. It
// records every request it receives and answers with canned routes.
// Unmatched paths get a 404.
type Server struct {
	mu       sync.Mutex
	mux      *http.ServeMux
	ts       *httptest.Server
	requests []RecordedRequest
}

// NewServer creates and starts a scripted server.
func NewServer() *Server {
	s := &Server{mux: http.NewServeMux()}
	s.ts = httptest.NewServer(http.HandlerFunc(s.serve))
	return s
}

// Handle registers a canned response for a path.
func (s *Server) Handle(path string, route Route) {
	s.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		for k, v := range route.Header {
			w.Header().Set(k, v)
		}
		status := route.Status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		if len(route.Body) > 0 {
			_, _ = w.Write(route.Body)
		}
	})
}

// HandleFunc registers a custom handler for a path.
func (s *Server) HandleFunc(path string, h http.HandlerFunc) {
	s.mux.HandleFunc(path, h)
}

// URL returns the server's base URL.
func (s *Server) URL() string {
	return s.ts.URL
}

// Close shuts the server down.
func (s *Server) Close() {
	s.ts.Close()
}

// Requests returns a copy of all recorded requests, in arrival order.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent recorded request, or nil.
func (s *Server) LastRequest() *RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return nil
	}
	r := s.requests[len(s.requests)-1]
	return &r
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
		Body:     body,
	})
	s.mu.Unlock()

	s.mux.ServeHTTP(w, r)
}
