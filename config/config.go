package config

import (
	"fmt"

	"github.com/restkit/restkit/logger"
	"github.com/restkit/restkit/transport"
)

// KitConfig bundles the configuration every restkit consumer needs.
// Projects with more sections embed it in their own config struct:
//
//	type MyConfig struct {
//	    config.KitConfig `yaml:",inline" mapstructure:",squash"`
//	    Cache cache.Config `yaml:"cache" mapstructure:"cache"`
//	}
type KitConfig struct {
	Name        string           `yaml:"name" mapstructure:"name"`
	Environment string           `yaml:"environment" mapstructure:"environment"`
	Logging     logger.Config    `yaml:"logging" mapstructure:"logging"`
	Client      transport.Config `yaml:"client" mapstructure:"client"`
}

// ApplyDefaults applies default values to all sections.
func (c *KitConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	c.Logging.ApplyDefaults()
	c.Client.ApplyDefaults()
}

// Validate validates all sections.
func (c *KitConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("environment must be one of %v (got: %s)", validEnvs, c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Client.Validate(); err != nil {
		return err
	}
	return nil
}
