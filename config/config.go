package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/milk9111/hopper/common"
	"github.com/milk9111/hopper/levels"
)

var ErrInvalidConfig = errors.New("config: invalid")

// StartRandom as level.start generates the first level instead of loading an
// embedded layout.
const StartRandom = "random"

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Level   LevelConfig   `toml:"level"`
	Assets  AssetsConfig  `toml:"assets"`
	Logging LoggingConfig `toml:"logging"`
}

type WindowConfig struct {
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
	Title    string  `toml:"title"`
	TickRate int     `toml:"tick_rate"` // simulation ticks per second
	Border   float64 `toml:"border"`    // wall thickness on the left, top and right
}

type LevelConfig struct {
	Start          string  `toml:"start"` // embedded layout name or "random"
	Seed           uint64  `toml:"seed"`  // 0 picks one at startup
	ObstacleCount  int     `toml:"obstacle_count"`
	ObstacleWidth  float64 `toml:"obstacle_width"`
	ObstacleHeight float64 `toml:"obstacle_height"`
	GroundHeight   float64 `toml:"ground_height"`
	TargetSize     float64 `toml:"target_size"`
	Gap            float64 `toml:"gap"`
}

type AssetsConfig struct {
	FramesDir string `toml:"frames_dir"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads a TOML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:    800,
			Height:   600,
			Title:    "hopper",
			TickRate: 60,
			Border:   10,
		},
		Level: LevelConfig{
			Start:          "classic",
			ObstacleCount:  3,
			ObstacleWidth:  100,
			ObstacleHeight: 20,
			GroundHeight:   40,
			TargetSize:     20,
			Gap:            40,
		},
		Assets: AssetsConfig{
			FramesDir: "frames",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Window.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate %d", ErrInvalidConfig, c.Window.TickRate)
	case c.Window.Border < 0 || 2*c.Window.Border >= float64(c.Window.Width):
		return fmt.Errorf("%w: border %g", ErrInvalidConfig, c.Window.Border)
	case c.Level.ObstacleCount < 0:
		return fmt.Errorf("%w: obstacle_count %d", ErrInvalidConfig, c.Level.ObstacleCount)
	case c.Level.ObstacleWidth <= 0 || c.Level.ObstacleHeight <= 0:
		return fmt.Errorf("%w: obstacle size %gx%g", ErrInvalidConfig, c.Level.ObstacleWidth, c.Level.ObstacleHeight)
	case c.Level.GroundHeight <= 0 || c.Level.GroundHeight >= float64(c.Window.Height):
		return fmt.Errorf("%w: ground_height %g", ErrInvalidConfig, c.Level.GroundHeight)
	case c.Level.TargetSize < 0 || c.Level.TargetSize > c.Level.ObstacleWidth:
		return fmt.Errorf("%w: target_size %g", ErrInvalidConfig, c.Level.TargetSize)
	case c.Level.Gap < 0 || c.Level.Gap < c.Level.TargetSize:
		// a target perched on an obstacle must stay inside that obstacle's gap
		return fmt.Errorf("%w: gap %g smaller than target_size %g", ErrInvalidConfig, c.Level.Gap, c.Level.TargetSize)
	case c.Logging.Format != "" && c.Logging.Format != "console" && c.Logging.Format != "json":
		return fmt.Errorf("%w: logging format %q", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}

// Bounds is the playable area inside the world borders.
func (c *Config) Bounds() common.Rect {
	b := c.Window.Border
	return common.Rect{
		X:      b,
		Y:      b,
		Width:  float64(c.Window.Width) - 2*b,
		Height: float64(c.Window.Height) - b,
	}
}

// LevelParams sizes the level generator to the window.
func (c *Config) LevelParams() levels.Params {
	return levels.Params{
		Width:          float64(c.Window.Width),
		Height:         float64(c.Window.Height),
		Border:         c.Window.Border,
		ObstacleCount:  c.Level.ObstacleCount,
		ObstacleWidth:  c.Level.ObstacleWidth,
		ObstacleHeight: c.Level.ObstacleHeight,
		GroundHeight:   c.Level.GroundHeight,
		TargetSize:     c.Level.TargetSize,
		Gap:            c.Level.Gap,
	}
}
