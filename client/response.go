package client

// Response is the result of a successfully transported HTTP exchange.
//
// URL is the address actually responded from, which may differ from the
// request URL when the transport followed redirects. Body is the raw
// response payload; an empty body is valid.
//
// A Response returned by Execute or ExecuteBlocking always has Code
// within the accepted success range — callers never re-check status.
type Response struct {
	URL  string
	Code int
	Body []byte
}
