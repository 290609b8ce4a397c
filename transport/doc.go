// Package transport provides the net/http-backed implementation of the
// restkit client contracts. A single *Transport satisfies client.Client;
// its Blocking() adapter satisfies client.BlockingClient on top of the
// same configured instance.
//
// The transport owns all protocol-level concerns the core contract leaves
// to implementers: building the wire request (ordered query encoding,
// default headers, User-Agent), following redirects, and consolidating
// every net/http failure into *client.TransportError.
//
// # Usage
//
//	t, err := transport.New(transport.Config{BaseURL: "https://api.example.com"})
//	if err != nil {
//	    return err
//	}
//	resp, err := client.Execute(ctx, t, client.Request{
//	    URL:    t.Base() + "/v1/widgets",
//	    Method: client.MethodGet,
//	})
package transport
