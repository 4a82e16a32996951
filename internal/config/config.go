// Package config loads the server's runtime configuration. The server
// runs with zero configuration; an optional YAML file and a couple of
// environment variables adjust the ambient behavior (log level,
// request timeout). The protocol surface itself is fixed and not
// configurable.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized at startup. The process takes no
// command-line arguments, so these are the whole outer surface.
const (
	EnvConfigPath     = "HELLO_MCP_CONFIG"
	EnvLogLevel       = "HELLO_MCP_LOG_LEVEL"
	EnvRequestTimeout = "HELLO_MCP_REQUEST_TIMEOUT"
)

// Duration wraps time.Duration so YAML values like "30s" parse.
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the server's runtime configuration.
type Config struct {
	LogLevel       string   `yaml:"log_level"`
	RequestTimeout Duration `yaml:"request_timeout"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel:       "info",
		RequestTimeout: Duration(30 * time.Second),
	}
}

// Load builds the configuration from defaults, the optional YAML file
// named by HELLO_MCP_CONFIG, and environment overrides, in that order.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(EnvConfigPath); path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvRequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", EnvRequestTimeout, err)
		}
		cfg.RequestTimeout = Duration(d)
	}

	if err := Validate(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	return nil
}

// Validate checks that a Config has valid values.
func Validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", cfg.LogLevel)
	}
	if cfg.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative, got %s", cfg.RequestTimeout.Std())
	}
	return nil
}
