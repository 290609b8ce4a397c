// Package testutil provides helpers for testing code built on restkit.
//
// Server wraps httptest.Server with canned per-path responses and request
// recording, so transport-level tests don't need to hand-roll handlers:
//
//	srv := testutil.NewServer()
//	defer srv.Close()
//	srv.Handle("/v1/widgets", testutil.Route{Status: 200, Body: []byte(`[]`)})
//
//	tr, _ := transport.New(transport.Config{BaseURL: srv.URL()})
package testutil
