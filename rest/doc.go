// Package rest is a JSON-focused convenience layer over the restkit
// client contract. Its generic helpers build client.Request values with
// JSON headers, run them through the execution pipeline, and decode
// success bodies into typed results.
//
//	tr, _ := transport.New(transport.Config{BaseURL: "https://api.example.com"})
//	rc := rest.New(tr)
//
//	widgets, err := rest.Get[[]Widget](ctx, rc, "/v1/widgets")
//
// Errors are the core taxonomy unchanged: transport failures from Send
// and *client.ResponseError for out-of-range status codes. The helpers
// in errors.go cover common status checks.
package rest
