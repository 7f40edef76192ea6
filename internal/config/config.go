// Package config provides configuration management for qpce.
//
// Settings are layered: defaults, then the config file, then QPCE_*
// environment variables, then command-line flags. The merged result is
// checked by Validate.
//
// Config file locations (priority order):
//  1. $QPCE_CONFIG
//  2. ./qpce.yaml
//  3. $XDG_CONFIG_HOME/qpce/config.yaml
//  4. ~/.config/qpce/config.yaml
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment overrides
const (
	EnvLogLevel    = "QPCE_LOG_LEVEL"
	EnvLogFormat   = "QPCE_LOG_FORMAT"
	EnvOutput      = "QPCE_OUTPUT"
	EnvMetricsFile = "QPCE_METRICS_FILE"
)

// Output formats
const (
	OutputSummary = "summary"
	OutputJSON    = "json"
	OutputYAML    = "yaml"
)

// ErrInvalidConfig indicates a configuration value outside its allowed set.
var ErrInvalidConfig = errors.New("invalid config")

var validate = validator.New()

// Config is the CLI configuration
type Config struct {
	LogLevel    string `yaml:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat   string `yaml:"log_format" validate:"required,oneof=text json"`
	Output      string `yaml:"output" validate:"required,oneof=summary json yaml"`
	MetricsFile string `yaml:"metrics_file,omitempty"`
}

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path. Unknown keys are rejected.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Output:    OutputSummary,
	}
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = d.LogFormat
	}
	if c.Output == "" {
		c.Output = d.Output
	}
}

// ApplyEnv overrides settings from QPCE_* variables. Empty variables are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := getenv(EnvLogFormat); v != "" {
		c.LogFormat = strings.ToLower(v)
	}
	if v := getenv(EnvOutput); v != "" {
		c.Output = strings.ToLower(v)
	}
	if v := getenv(EnvMetricsFile); v != "" {
		c.MetricsFile = v
	}
}

// Validate checks every field against its allowed values
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// SlogLevel returns the configured level. Call after Validate.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// formatValidationError reports the first failing field by its yaml key
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	for _, e := range validationErrs {
		field := yamlKey(e.StructField())
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%w: %s: field is required", ErrInvalidConfig, field)
		case "oneof":
			return fmt.Errorf("%w: %s: %q is not one of [%s]", ErrInvalidConfig, field, e.Value(), e.Param())
		default:
			return fmt.Errorf("%w: %s: validation failed (%s)", ErrInvalidConfig, field, e.Tag())
		}
	}

	return err
}

func yamlKey(structField string) string {
	switch structField {
	case "LogLevel":
		return "log_level"
	case "LogFormat":
		return "log_format"
	case "Output":
		return "output"
	case "MetricsFile":
		return "metrics_file"
	default:
		return structField
	}
}
