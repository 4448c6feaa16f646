package physics

import "math"

// Params is the fixed physics calibration. It is loaded once from
// configuration and passed explicitly into every step; there is no
// ambient global state.
type Params struct {
	G            float64 // Gravitational constant
	Softening    float64 // Added to d² in the force law; bounds short-range force
	EpsilonGuard float64 // Force is zero inside radius + guard

	WorldW float64 // World width in units; positions wrap at the edges
	WorldH float64 // World height in units

	BodyRadius    float64 // Player body radius
	SurfaceMargin float64 // Gap between a well's surface and the running body

	BaseAngularSpeed float64 // Full running speed in rad/s (100% on the meter)
	AngularAccel     float64 // rad/s² toward the target while input is held
	AngularDecel     float64 // rad/s² toward zero with no input held

	LaunchPush float64 // Fixed radial push added to every launch
}

// EscapeThreshold is the angular-speed ratio at which a launch's
// tangential speed just barely separates from the well. It falls out of
// the acceleration calibration (two full rotations of acceleration
// reach escape speed, four reach maximum): θ = ω²/(2α) with θ = 8π at
// full speed gives ω_escape/ω_max = 1/√2.
const EscapeThreshold = 0.70710678118654752

// DefaultParams returns the stock calibration. The angular acceleration
// is derived from the base speed so the escape threshold lands exactly
// at EscapeThreshold.
func DefaultParams() Params {
	const baseAngular = 3.0
	accel := baseAngular * baseAngular / (16 * math.Pi)
	return Params{
		G:            60,
		Softening:    1000,
		EpsilonGuard: 1.0,

		WorldW: 800,
		WorldH: 600,

		BodyRadius:    8,
		SurfaceMargin: 2,

		BaseAngularSpeed: baseAngular,
		AngularAccel:     accel,
		AngularDecel:     accel * 2,

		LaunchPush: 25,
	}
}

// Tuning holds the two externally configured live scalars. They are
// read every step, never cached, so a configuration change takes effect
// on the next frame.
type Tuning struct {
	GravityMultiplier float64 // Uniform scale on every source's pull
	TimeDilation      float64 // Scale on the frame delta
}

// DefaultTuning returns neutral tuning.
func DefaultTuning() Tuning {
	return Tuning{GravityMultiplier: 1.0, TimeDilation: 1.0}
}
