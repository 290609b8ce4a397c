// Package client defines the transport-agnostic HTTP client contract at the
// core of restkit: the Request/Response data model, the Client and
// BlockingClient interfaces implemented by concrete transports, and the
// shared execution pipeline that validates responses and classifies failures.
//
// Transports only supply the raw Send primitive and their configured base
// URL. Everything else — per-request diagnostics, the 200–208 success-range
// check, and the conversion of out-of-range responses into *ResponseError —
// lives in Execute and ExecuteBlocking so the policy exists exactly once.
//
// # Usage
//
//	req := client.Request{
//	    URL:    c.Base() + "/v1/widgets",
//	    Method: client.MethodGet,
//	}
//	resp, err := client.Execute(ctx, c, req)
//	if err != nil {
//	    var re *client.ResponseError
//	    if errors.As(err, &re) {
//	        // re.StatusCode, re.Content()
//	    }
//	    return err
//	}
//	// resp.Code is guaranteed to be within 200–208.
package client
