// Package config provides YAML-based game configuration loading
// and validation.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// DragonConfig contains all configuration for Flappy Dragon.
type DragonConfig struct {
	Screen    DragonScreen    `yaml:"screen"`
	Timing    DragonTiming    `yaml:"timing"`
	Physics   DragonPhysics   `yaml:"physics"`
	Obstacles DragonObstacles `yaml:"obstacles"`
}

// DragonScreen defines the fixed character grid.
type DragonScreen struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// DragonTiming defines how display frames map onto physics steps.
type DragonTiming struct {
	FrameDurationMs float64 `yaml:"frame_duration_ms"` // Accumulated time needed for one physics step
}

// DragonPhysics defines player kinematics.
type DragonPhysics struct {
	Gravity      float64 `yaml:"gravity"`       // Velocity added per physics step
	AccelCutoff  float64 `yaml:"accel_cutoff"`  // Gravity stops accelerating at or above this velocity
	FlapVelocity float64 `yaml:"flap_velocity"` // Velocity set by a flap (negative = up)
}

// DragonObstacles defines obstacle generation.
type DragonObstacles struct {
	GapMin   int `yaml:"gap_min"`   // Lowest gap center row (inclusive)
	GapMax   int `yaml:"gap_max"`   // Highest gap center row (exclusive)
	BaseSize int `yaml:"base_size"` // Gap height at score 0
	MinSize  int `yaml:"min_size"`  // Gap height floor
}

// GapSize returns the gap height for the given score: max(MinSize, BaseSize-score).
func (o DragonObstacles) GapSize(score int) int {
	size := o.BaseSize - score
	if size < o.MinSize {
		return o.MinSize
	}
	return size
}

// Validate checks that the configuration can drive a game.
func (c DragonConfig) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen must be positive, got %dx%d", ErrInvalidConfig, c.Screen.Width, c.Screen.Height)
	case c.Timing.FrameDurationMs <= 0:
		return fmt.Errorf("%w: frame_duration_ms must be positive, got %g", ErrInvalidConfig, c.Timing.FrameDurationMs)
	case c.Physics.FlapVelocity >= 0:
		return fmt.Errorf("%w: flap_velocity must be negative, got %g", ErrInvalidConfig, c.Physics.FlapVelocity)
	case c.Obstacles.GapMax <= c.Obstacles.GapMin:
		return fmt.Errorf("%w: gap range [%d,%d) is empty", ErrInvalidConfig, c.Obstacles.GapMin, c.Obstacles.GapMax)
	case c.Obstacles.MinSize < 1:
		return fmt.Errorf("%w: min_size must be at least 1, got %d", ErrInvalidConfig, c.Obstacles.MinSize)
	case c.Obstacles.BaseSize < c.Obstacles.MinSize:
		return fmt.Errorf("%w: base_size %d is below min_size %d", ErrInvalidConfig, c.Obstacles.BaseSize, c.Obstacles.MinSize)
	}
	return nil
}
