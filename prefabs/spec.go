package prefabs

import (
	"errors"
	"fmt"

	"github.com/milk9111/hopper/ecs/component"
	"gopkg.in/yaml.v3"
)

const PlayerFile = "player.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

// PlayerSpec is the player's movement tuning. Speeds are pixels per tick and
// durations are ticks.
type PlayerSpec struct {
	Name               string  `yaml:"name"`
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	SpawnX             float64 `yaml:"spawn_x"`
	SpawnY             float64 `yaml:"spawn_y"`
	Gravity            float64 `yaml:"gravity"`
	JumpVelocity       float64 `yaml:"jump_velocity"`
	Acceleration       float64 `yaml:"acceleration"`
	Deceleration       float64 `yaml:"deceleration"`
	MaxVelocity        float64 `yaml:"max_velocity"`
	DashSpeed          float64 `yaml:"dash_speed"`
	DashFrames         int     `yaml:"dash_frames"`
	DashCooldownFrames int     `yaml:"dash_cooldown_frames"`
	FramesPerTick      int     `yaml:"frames_per_tick"`
}

// LoadPlayerSpec reads player.yaml, preferring the copy under Dir.
func LoadPlayerSpec() (*PlayerSpec, error) {
	data, err := Load(PlayerFile)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", PlayerFile, err)
	}
	spec, err := ParsePlayerSpec(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", PlayerFile, err)
	}
	return spec, nil
}

// ParsePlayerSpec decodes and validates a player spec from raw YAML.
func ParsePlayerSpec(data []byte) (*PlayerSpec, error) {
	var spec PlayerSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal player spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *PlayerSpec) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("%w: size %gx%g", ErrInvalidSpec, s.Width, s.Height)
	case s.JumpVelocity >= 0:
		return fmt.Errorf("%w: jump_velocity must be negative (up), got %g", ErrInvalidSpec, s.JumpVelocity)
	case s.MaxVelocity <= 0:
		return fmt.Errorf("%w: max_velocity must be positive", ErrInvalidSpec)
	case s.Acceleration < 0 || s.Deceleration < 0 || s.Gravity < 0:
		return fmt.Errorf("%w: negative acceleration constant", ErrInvalidSpec)
	case s.DashFrames <= 0:
		return fmt.Errorf("%w: dash_frames must be positive", ErrInvalidSpec)
	case s.DashCooldownFrames < 0:
		return fmt.Errorf("%w: dash_cooldown_frames must not be negative", ErrInvalidSpec)
	case s.FramesPerTick <= 0:
		return fmt.Errorf("%w: frames_per_tick must be positive", ErrInvalidSpec)
	}
	return nil
}

func (s *PlayerSpec) Tuning() component.Tuning {
	return component.Tuning{
		Width:              s.Width,
		Height:             s.Height,
		SpawnX:             s.SpawnX,
		SpawnY:             s.SpawnY,
		Gravity:            s.Gravity,
		JumpVelocity:       s.JumpVelocity,
		Acceleration:       s.Acceleration,
		Deceleration:       s.Deceleration,
		MaxVelocity:        s.MaxVelocity,
		DashSpeed:          s.DashSpeed,
		DashFrames:         s.DashFrames,
		DashCooldownFrames: s.DashCooldownFrames,
		FramesPerTick:      s.FramesPerTick,
	}
}
