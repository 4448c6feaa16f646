package config

import (
	"math"

	"github.com/wellhopper/wellhopper/internal/physics"
)

// DifficultyManager derives the live tuning scalars from the current
// level number. The physics core reads the result fresh every step, so
// a tier change takes effect on the very next frame.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a manager from the loaded config.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled reports whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) for a level number.
func (d *DifficultyManager) Level(levelNumber int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}
	progress := clampF(float64(levelNumber-1)/maxAt, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Tuning returns the live physics scalars for a level number, scaling
// the configured base values toward their boosted maximums.
func (d *DifficultyManager) Tuning(base PhysicsConfig, levelNumber int) physics.Tuning {
	level := d.Level(levelNumber)
	return physics.Tuning{
		GravityMultiplier: base.GravityMultiplier + level*d.cfg.Scaling.GravityBoost,
		TimeDilation:      base.TimeDilation + level*d.cfg.Scaling.TimeBoost,
	}
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
