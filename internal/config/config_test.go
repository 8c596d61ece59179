package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "veccalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "float64", cfg.ElementType)
	assert.Equal(t, DefaultTolerance, cfg.Tolerance)
	assert.Equal(t, -1, cfg.Precision)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, slog.LevelWarn, cfg.Level())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, "type: fixed\nprecision: 4\nlog_level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fixed", cfg.ElementType)
	assert.Equal(t, 4, cfg.Precision)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Equal(t, DefaultTolerance, cfg.Tolerance)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "type: [unterminated\n"))
	assert.ErrorContains(t, err, "config: parse")

	_, err = Load(writeFile(t, "type: complex128\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"type", func(c *Config) { c.ElementType = "int8" }, "type"},
		{"format", func(c *Config) { c.Format = "csv" }, "format"},
		{"log level", func(c *Config) { c.LogLevel = "trace" }, "log_level"},
		{"log format", func(c *Config) { c.LogFormat = "xml" }, "log_format"},
		{"tolerance", func(c *Config) { c.Tolerance = -1 }, "tolerance"},
		{"precision", func(c *Config) { c.Precision = -2 }, "precision"},
		{"fractional integer tolerance", func(c *Config) {
			c.ElementType = "int64"
			c.Tolerance = 0.5
		}, "not an integer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidateIntegerTolerance(t *testing.T) {
	cfg := Default()
	cfg.ElementType = "int64"
	cfg.Tolerance = 2
	assert.NoError(t, cfg.Validate())

	cfg.ElementType = "fixed"
	cfg.Tolerance = 0.5
	assert.NoError(t, cfg.Validate())
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Format = "csv"
	cfg.LogFormat = "xml"
	err := cfg.Validate()
	assert.ErrorContains(t, err, "format")
	assert.ErrorContains(t, err, "log_format")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Default()
	cfg.ElementType = "decimal"
	cfg.Tolerance = 0.5
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
