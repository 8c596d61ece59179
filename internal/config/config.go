// Package config loads veccalc settings from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

const (
	DefaultElementType = "float64"
	DefaultTolerance   = 0.0
	DefaultFormat      = "table"
	DefaultPrecision   = -1
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"
)

var (
	ElementTypes = []string{"float64", "float32", "int64", "fixed", "decimal"}
	Formats      = []string{"table", "plain"}
	LogLevels    = []string{"debug", "info", "warn", "error"}
	LogFormats   = []string{"text", "json"}
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	// ElementType selects the vector element type.
	ElementType string `yaml:"type"`
	// Tolerance is the default eq tolerance; 0 compares exactly.
	Tolerance float64 `yaml:"tolerance"`
	// Format is "table" for aligned columns or "plain" for bare results.
	Format string `yaml:"format"`
	// Precision is the number of digits after the decimal point for float
	// results; -1 prints the shortest exact form.
	Precision int    `yaml:"precision"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func Default() *Config {
	return &Config{
		ElementType: DefaultElementType,
		Tolerance:   DefaultTolerance,
		Format:      DefaultFormat,
		Precision:   DefaultPrecision,
		LogLevel:    DefaultLogLevel,
		LogFormat:   DefaultLogFormat,
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) Validate() error {
	var errs []error
	check := func(field, value string, allowed []string) {
		if !slices.Contains(allowed, value) {
			errs = append(errs, fmt.Errorf("%w: %s %q not one of %v", ErrInvalid, field, value, allowed))
		}
	}
	check("type", c.ElementType, ElementTypes)
	check("format", c.Format, Formats)
	check("log_level", c.LogLevel, LogLevels)
	check("log_format", c.LogFormat, LogFormats)
	if c.Tolerance < 0 {
		errs = append(errs, fmt.Errorf("%w: tolerance %v is negative", ErrInvalid, c.Tolerance))
	}
	if c.ElementType == "int64" && c.Tolerance != math.Trunc(c.Tolerance) {
		errs = append(errs, fmt.Errorf("%w: tolerance %v is not an integer for type int64", ErrInvalid, c.Tolerance))
	}
	if c.Precision < -1 {
		errs = append(errs, fmt.Errorf("%w: precision %d below -1", ErrInvalid, c.Precision))
	}
	return errors.Join(errs...)
}

// Level returns the slog level named by LogLevel, defaulting to warn.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
