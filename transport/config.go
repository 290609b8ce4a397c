package transport

import (
	"fmt"
	"net/url"
	"time"

	"github.com/restkit/restkit/validation"
	"github.com/restkit/restkit/version"
)

const defaultTimeout = 30 * time.Second

// Config configures a Transport.
type Config struct {
	// BaseURL is the root address callers combine with endpoint paths.
	// It must be absolute.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required"`

	// Timeout is the per-request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is sent with every request. Defaults to restkit's version string.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// Headers are default headers applied to all requests. Request-level
	// headers are added after these.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// EnableHTTP2 switches the transport to cleartext HTTP/2 (h2c).
	// Only relevant for http:// base URLs; https negotiates HTTP/2 itself.
	EnableHTTP2 bool `yaml:"enable_http2" mapstructure:"enable_http2"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = version.UserAgent()
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return fmt.Errorf("transport: %w", err)
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("transport: base_url must be absolute (got: %s)", c.BaseURL)
	}
	return nil
}
