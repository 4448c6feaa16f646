package config

import (
	_ "embed"
)

//go:embed defaults/wellhopper.yaml
var defaultYAML []byte

// DefaultConfig returns the stock configuration, matching the embedded
// YAML defaults.
func DefaultConfig() Config {
	return Config{
		Physics: PhysicsConfig{
			G:                 60,
			Softening:         1000,
			EpsilonGuard:      1.0,
			GravityMultiplier: 1.0,
			TimeDilation:      1.0,
			BaseAngularSpeed:  3.0,
			AngularDecelRatio: 2.0,
			LaunchPush:        25,
		},
		World: WorldConfig{
			Width:         800,
			Height:        600,
			BodyRadius:    8,
			SurfaceMargin: 2,
		},
		Session: SessionConfig{
			Lives:      3,
			LevelBonus: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 25,
			},
			Scaling: ScalingConfig{
				GravityBoost: 0.4,
				TimeBoost:    0.25,
			},
		},
	}
}
