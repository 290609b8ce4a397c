package transport

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/restkit/restkit/client"
)

// EncodeQuery renders ordered query parameters into a raw query string.
// Insertion order is preserved, which is why url.Values is not used here.
// Strings pass through unchanged; anything else is JSON-encoded, which
// covers numbers, booleans, and composite values uniformly.
func EncodeQuery(params []client.QueryParam) (string, error) {
	if len(params) == 0 {
		return "", nil
	}

	var b strings.Builder
	for i, p := range params {
		v, err := renderQueryValue(p.Value)
		if err != nil {
			return "", fmt.Errorf("query parameter %q: %w", p.Key, err)
		}
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v))
	}
	return b.String(), nil
}

func renderQueryValue(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		data, err := json.Marshal(x)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}
