package config

import (
	_ "embed"
)

//go:embed defaults/dragon.yaml
var defaultDragonYAML []byte

// DefaultDragonConfig returns the default Flappy Dragon configuration.
func DefaultDragonConfig() DragonConfig {
	return DragonConfig{
		Screen: DragonScreen{
			Width:  80,
			Height: 50,
			Title:  "Flappy Dragon",
		},
		Timing: DragonTiming{
			FrameDurationMs: 25.0,
		},
		Physics: DragonPhysics{
			Gravity:      0.2,
			AccelCutoff:  1.0,
			FlapVelocity: -2.0,
		},
		Obstacles: DragonObstacles{
			GapMin:   10,
			GapMax:   40,
			BaseSize: 20,
			MinSize:  2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDragonYAML
}
