package gameconfig

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is returned by Validate and LoadTuning for out-of-range values.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every physics and timer constant of the ninja. All durations are
// in ticks; speeds are in pixels per tick.
type Tuning struct {
	// Movement
	RunSpeed   float64 `yaml:"run_speed"`
	JumpSpeed  float64 `yaml:"jump_speed"` // Negative = upward
	ClimbSpeed float64 `yaml:"climb_speed"`
	Gravity    float64 `yaml:"gravity"`

	// Ground plane and spawn
	GroundLevel float64 `yaml:"ground_level"`
	SpawnX      float64 `yaml:"spawn_x"`

	// Dash
	DashDuration int     `yaml:"dash_duration"`
	DashCooldown int     `yaml:"dash_cooldown"`
	DashSpeed    float64 `yaml:"dash_speed"`

	// Slash and shuriken active time comes from their animation length.
	SlashCooldown    int `yaml:"slash_cooldown"`
	ShurikenCooldown int `yaml:"shuriken_cooldown"`
}

// DefaultTuning returns the values the ninja was designed with: a 1280x720
// screen at 60 ticks per second with 320px sprite cells.
func DefaultTuning() Tuning {
	return Tuning{
		RunSpeed:   7,
		JumpSpeed:  -19,
		ClimbSpeed: 4.9,
		Gravity:    0.75,

		GroundLevel: 720 - 300,
		SpawnX:      1280 / 2,

		DashDuration: 12,
		DashCooldown: 240,
		DashSpeed:    30,

		SlashCooldown:    60,
		ShurikenCooldown: 60,
	}
}

// Validate checks that durations are non-negative and speeds are usable.
func (t Tuning) Validate() error {
	switch {
	case t.RunSpeed < 0:
		return fmt.Errorf("%w: run_speed %v < 0", ErrInvalidTuning, t.RunSpeed)
	case t.JumpSpeed > 0:
		return fmt.Errorf("%w: jump_speed %v must be <= 0 (up is negative)", ErrInvalidTuning, t.JumpSpeed)
	case t.ClimbSpeed < 0:
		return fmt.Errorf("%w: climb_speed %v < 0", ErrInvalidTuning, t.ClimbSpeed)
	case t.Gravity < 0:
		return fmt.Errorf("%w: gravity %v < 0", ErrInvalidTuning, t.Gravity)
	case t.DashDuration < 0 || t.DashCooldown < 0:
		return fmt.Errorf("%w: dash timers must be >= 0", ErrInvalidTuning)
	case t.DashSpeed < 0:
		return fmt.Errorf("%w: dash_speed %v < 0", ErrInvalidTuning, t.DashSpeed)
	case t.SlashCooldown < 0 || t.ShurikenCooldown < 0:
		return fmt.Errorf("%w: cooldowns must be >= 0", ErrInvalidTuning)
	}
	return nil
}

// ParseTuning overlays YAML data on the default tuning. Keys missing from the
// document keep their default value.
func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// LoadTuning reads a YAML tuning file. An empty path returns the defaults.
func LoadTuning(path string) (Tuning, error) {
	if path == "" {
		return DefaultTuning(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("load tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return Tuning{}, fmt.Errorf("load tuning %s: %w", path, err)
	}
	return t, nil
}
