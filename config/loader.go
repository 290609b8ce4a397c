package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Loadable is implemented by config structs that know their defaults and
// their validity rules. Load calls both after unmarshalling.
type Loadable interface {
	ApplyDefaults()
	Validate() error
}

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig controls where Load looks for configuration.
type LoaderConfig struct {
	// ConfigFile is an explicit config file path. When empty, standard
	// locations are searched.
	ConfigFile string
	// EnvFile is an explicit .env file path. When empty, ./.env is used
	// if present.
	EnvFile string
	// EnvPrefix namespaces environment variable overrides
	// (e.g. prefix "APP" maps APP_CLIENT_BASE_URL to client.base_url).
	EnvPrefix string

	fs FileSystem
}

// LoaderOption customizes the loader.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvPrefix = prefix }
}

// WithFileSystem replaces file operations (for tests).
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.fs = fs }
}

// configSearchPaths are checked in order when no explicit file is given.
var configSearchPaths = []string{
	"./config.yml",
	"./config.yaml",
	"./config/config.yml",
	"./config/config.yaml",
}

// Load reads configuration into out: .env file first (so the config file
// and env overrides can reference those variables), then the YAML config
// file, then environment overrides. Defaults and validation run last.
func Load(out Loadable, opts ...LoaderOption) error {
	lc := LoaderConfig{fs: &RealFileSystem{}}
	for _, opt := range opts {
		opt(&lc)
	}

	envFile := lc.EnvFile
	if envFile == "" && lc.fs.Exists(".env") {
		envFile = ".env"
	}
	if envFile != "" {
		if err := lc.fs.LoadEnv(envFile); err != nil {
			return fmt.Errorf("config: loading env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	if lc.EnvPrefix != "" {
		v.SetEnvPrefix(lc.EnvPrefix)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configFile := lc.ConfigFile
	if configFile == "" {
		configFile = findConfigFile(lc.fs)
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: reading %s: %w", configFile, err)
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("config: unmarshalling: %w", err)
	}

	out.ApplyDefaults()
	if err := out.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// findConfigFile searches standard locations for a config file.
func findConfigFile(fs FileSystem) string {
	for _, path := range configSearchPaths {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}
