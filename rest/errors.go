package rest

import "github.com/restkit/restkit/client"

// Status helpers built on the core error taxonomy. They all answer false
// for transport-level failures, which carry no status code.

// IsNotFound checks if the error is a 404 Not Found response.
func IsNotFound(err error) bool { return hasStatus(err, 404) }

// IsAuth checks if the error is a 401 or 403 response.
func IsAuth(err error) bool { return hasStatus(err, 401) || hasStatus(err, 403) }

// IsRateLimit checks if the error is a 429 Too Many Requests response.
func IsRateLimit(err error) bool { return hasStatus(err, 429) }

// IsServerError checks if the error is a 5xx response.
func IsServerError(err error) bool {
	re, ok := client.AsResponseError(err)
	return ok && re.StatusCode >= 500 && re.StatusCode < 600
}

func hasStatus(err error, code int) bool {
	re, ok := client.AsResponseError(err)
	return ok && re.StatusCode == code
}
