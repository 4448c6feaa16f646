package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigParams(t *testing.T) {
	cfg := DefaultConfig()
	p := cfg.Params()

	if p.G != 60 {
		t.Errorf("G = %f, want 60", p.G)
	}
	if p.WorldW != 800 || p.WorldH != 600 {
		t.Errorf("world = %fx%f, want 800x600", p.WorldW, p.WorldH)
	}

	// Acceleration is derived, never configured directly: base²/(16π)
	base := cfg.Physics.BaseAngularSpeed
	wantAccel := base * base / (16 * math.Pi)
	if math.Abs(p.AngularAccel-wantAccel) > 1e-12 {
		t.Errorf("AngularAccel = %f, want %f", p.AngularAccel, wantAccel)
	}
	wantDecel := wantAccel * cfg.Physics.AngularDecelRatio
	if math.Abs(p.AngularDecel-wantDecel) > 1e-12 {
		t.Errorf("AngularDecel = %f, want %f", p.AngularDecel, wantDecel)
	}
}

func TestParamsDecelRatioFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Physics.AngularDecelRatio = 0

	p := cfg.Params()
	if p.AngularDecel != p.AngularAccel {
		t.Errorf("zero ratio should fall back to decel == accel, got %f vs %f", p.AngularDecel, p.AngularAccel)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantInitial float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		ApplyPreset(&cfg, tt.preset)
		if cfg.Difficulty.Enabled != tt.wantEnabled {
			t.Errorf("%s: enabled = %v", tt.preset, cfg.Difficulty.Enabled)
		}
		if cfg.Difficulty.InitialLevel != tt.wantInitial {
			t.Errorf("%s: initial = %f, want %f", tt.preset, cfg.Difficulty.InitialLevel, tt.wantInitial)
		}
	}

	// Fixed disables progression entirely
	cfg := DefaultConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	// Empty preset leaves the config untouched
	cfg = DefaultConfig()
	before := cfg.Difficulty
	ApplyPreset(&cfg, "")
	if cfg.Difficulty != before {
		t.Error("empty preset should not modify the config")
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "level", MaxAt: 10},
		Scaling:      ScalingConfig{GravityBoost: 0.4, TimeBoost: 0.2},
	})

	if got := d.Level(1); got != 0.0 {
		t.Errorf("Level(1) = %f, want 0", got)
	}
	if got := d.Level(6); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Level(6) = %f, want 0.5", got)
	}
	if got := d.Level(11); got != 1.0 {
		t.Errorf("Level(11) = %f, want 1", got)
	}
	// Clamped past the max
	if got := d.Level(99); got != 1.0 {
		t.Errorf("Level(99) = %f, want 1", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.7,
		Progression:  ProgressionConfig{Type: "level", MaxAt: 10},
	})

	if d.IsEnabled() {
		t.Error("disabled config should report not enabled")
	}
	if got := d.Level(50); got != 0.7 {
		t.Errorf("disabled manager should hold the initial level, got %f", got)
	}
}

func TestDifficultyTuning(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "level", MaxAt: 10},
		Scaling:      ScalingConfig{GravityBoost: 0.4, TimeBoost: 0.2},
	})
	base := PhysicsConfig{GravityMultiplier: 1.0, TimeDilation: 1.0}

	tun := d.Tuning(base, 1)
	if tun.GravityMultiplier != 1.0 || tun.TimeDilation != 1.0 {
		t.Errorf("level 1 tuning should be the base, got %+v", tun)
	}

	tun = d.Tuning(base, 11)
	if math.Abs(tun.GravityMultiplier-1.4) > 1e-12 {
		t.Errorf("max gravity = %f, want 1.4", tun.GravityMultiplier)
	}
	if math.Abs(tun.TimeDilation-1.2) > 1e-12 {
		t.Errorf("max dilation = %f, want 1.2", tun.TimeDilation)
	}
}

func TestSetInitialLevelClamps(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{})

	d.SetInitialLevel(1.5)
	if d.initialLevel != 1.0 {
		t.Errorf("initial level should clamp to 1, got %f", d.initialLevel)
	}
	d.SetInitialLevel(-0.5)
	if d.initialLevel != 0.0 {
		t.Errorf("initial level should clamp to 0, got %f", d.initialLevel)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  g: 42\n  base_angular_speed: 2.5\nsession:\n  lives: 7\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Physics.G != 42 {
		t.Errorf("G = %f, want 42", cfg.Physics.G)
	}
	if cfg.Session.Lives != 7 {
		t.Errorf("lives = %d, want 7", cfg.Session.Lives)
	}
}

func TestLoadMissingCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("a missing explicit config path should be an error")
	}
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	// No custom path: the embedded defaults must at minimum parse into a
	// playable configuration.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Physics.G <= 0 {
		t.Errorf("G = %f, want positive", cfg.Physics.G)
	}
	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		t.Errorf("world = %fx%f, want positive", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Physics.BaseAngularSpeed <= 0 {
		t.Error("base angular speed should be positive")
	}
}
