package client

// Method is an HTTP verb from the closed set understood by transports.
// LIST is non-standard but used by some HTTP APIs (notably secret stores)
// and must survive the trip to the wire unchanged.
type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodList    Method = "LIST"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

// QueryParam is a single query-string pair. Values may be structured
// (strings, numbers, booleans, or anything JSON-encodable); transports
// render them to text at send time.
type QueryParam struct {
	Key   string
	Value any
}

// Header is a single header name/value pair.
type Header struct {
	Name  string
	Value string
}

// Request describes an outbound HTTP request handed to the pipeline.
//
// The URL must be fully qualified; callers typically build it from a
// client's Base() plus an endpoint path. Query and Headers are ordered
// slices rather than maps because some targets are order-sensitive.
// Body holds the already-serialized payload.
//
// A Request is read-only once handed to Execute: the pipeline and the
// transport inspect it but never mutate it.
type Request struct {
	URL     string
	Method  Method
	Query   []QueryParam
	Headers []Header
	Body    []byte
}
