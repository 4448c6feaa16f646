// Package config provides YAML-based configuration loading and
// difficulty management for Well Hopper.
package config

import (
	"math"

	"github.com/wellhopper/wellhopper/internal/physics"
)

// Config contains all tunable parameters for the game.
type Config struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	World      WorldConfig      `yaml:"world"`
	Session    SessionConfig    `yaml:"session"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines the force-law and kinetics calibration.
type PhysicsConfig struct {
	G                 float64 `yaml:"g"`
	Softening         float64 `yaml:"softening"`
	EpsilonGuard      float64 `yaml:"epsilon_guard"`
	GravityMultiplier float64 `yaml:"gravity_multiplier"`
	TimeDilation      float64 `yaml:"time_dilation"`
	BaseAngularSpeed  float64 `yaml:"base_angular_speed"`
	AngularDecelRatio float64 `yaml:"angular_decel_ratio"`
	LaunchPush        float64 `yaml:"launch_push"`
}

// WorldConfig defines the playfield.
type WorldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	BodyRadius    float64 `yaml:"body_radius"`
	SurfaceMargin float64 `yaml:"surface_margin"`
}

// SessionConfig defines session bookkeeping outside the physics core.
type SessionConfig struct {
	Lives      int `yaml:"lives"`
	LevelBonus int `yaml:"level_bonus"` // Score per completed level, scaled by level number
}

// Params converts the configuration into the physics calibration. The
// angular acceleration is always derived from the base speed so the
// escape threshold stays at 1/√2 regardless of tuning.
func (c Config) Params() physics.Params {
	base := c.Physics.BaseAngularSpeed
	accel := base * base / (16 * math.Pi)
	decel := accel * c.Physics.AngularDecelRatio
	if c.Physics.AngularDecelRatio <= 0 {
		decel = accel
	}
	return physics.Params{
		G:            c.Physics.G,
		Softening:    c.Physics.Softening,
		EpsilonGuard: c.Physics.EpsilonGuard,

		WorldW: c.World.Width,
		WorldH: c.World.Height,

		BodyRadius:    c.World.BodyRadius,
		SurfaceMargin: c.World.SurfaceMargin,

		BaseAngularSpeed: base,
		AngularAccel:     accel,
		AngularDecel:     decel,

		LaunchPush: c.Physics.LaunchPush,
	}
}

// DifficultyConfig defines how the two live tuning scalars scale as the
// player climbs levels.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at max.
type ScalingConfig struct {
	GravityBoost float64 `yaml:"gravity_boost"` // Added to the gravity multiplier at max
	TimeBoost    float64 `yaml:"time_boost"`    // Added to time dilation at max
}

// DifficultyPreset is a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
