package logger

import "time"

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldMethod    = "method"
	FieldURL       = "url"
	FieldStatus    = "status"
	FieldBytes     = "bytes"
	FieldRequestID = "request_id"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Info("request done", logger.Fields(logger.FieldStatus, 200))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for a request that failed.
func ErrorFields(url string, err error) map[string]interface{} {
	return map[string]interface{}{
		FieldURL:   url,
		FieldError: err.Error(),
	}
}

// DurationFields creates fields for a timed request.
func DurationFields(url string, d time.Duration) map[string]interface{} {
	return map[string]interface{}{
		FieldURL:      url,
		FieldDuration: d.Milliseconds(),
	}
}
