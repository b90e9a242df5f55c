package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hopper.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[window]
tick_rate = 120

[level]
start = "random"
seed = 42

[logging]
format = "json"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.TickRate != 120 {
		t.Fatalf("expected tick_rate 120, got %d", cfg.Window.TickRate)
	}
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Fatalf("expected default window size, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Level.Start != StartRandom || cfg.Level.Seed != 42 {
		t.Fatalf("unexpected level config %+v", cfg.Level)
	}
	if cfg.Level.ObstacleCount != 3 {
		t.Fatalf("expected default obstacle_count 3, got %d", cfg.Level.ObstacleCount)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := Load(writeConfig(t, "[window\nwidth = ")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"zero tick rate", func(c *Config) { c.Window.TickRate = 0 }},
		{"border too wide", func(c *Config) { c.Window.Border = 400 }},
		{"negative obstacle count", func(c *Config) { c.Level.ObstacleCount = -1 }},
		{"flat obstacles", func(c *Config) { c.Level.ObstacleHeight = 0 }},
		{"ground fills window", func(c *Config) { c.Level.GroundHeight = 600 }},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }},
		{"negative gap", func(c *Config) { c.Level.Gap = -1 }},
		{"gap narrower than target", func(c *Config) { c.Level.Gap = c.Level.TargetSize - 1 }},
		{"target wider than obstacles", func(c *Config) { c.Level.TargetSize = c.Level.ObstacleWidth + 1; c.Level.Gap = 200 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestBoundsAndLevelParams(t *testing.T) {
	cfg := Default()
	b := cfg.Bounds()
	if b.X != 10 || b.Y != 10 || b.Right() != 790 || b.Bottom() != 600 {
		t.Fatalf("unexpected bounds %+v", b)
	}
	p := cfg.LevelParams()
	if p.Width != 800 || p.Height != 600 || p.Border != 10 || p.ObstacleCount != 3 {
		t.Fatalf("unexpected level params %+v", p)
	}
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		t.Run(format, func(t *testing.T) {
			logger, err := NewLogger(LoggingConfig{Level: "debug", Format: format})
			if err != nil {
				t.Fatalf("NewLogger: %v", err)
			}
			if !logger.Core().Enabled(zapcore.DebugLevel) {
				t.Fatalf("expected debug enabled")
			}
		})
	}

	logger, err := NewLogger(LoggingConfig{Level: "loud"})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected unknown level to fall back to info")
	}
}
