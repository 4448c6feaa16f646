// Package levelgen builds playable levels from an integer seed. One
// seed always reproduces one level bit-for-bit, which is what makes
// daily challenges and practice replays possible. Generation never
// fails outward: every placement that cannot find room degrades to a
// smaller level instead of an error.
package levelgen

import "math"

const lcgModulus = 233280

// Rand is the generator's deterministic random sequence, a classic
// linear-congruential generator. It is an explicit value threaded
// through every placement decision, so generation stays referentially
// transparent: same seed in, same level out.
type Rand struct {
	state int64
}

// NewRand creates a sequence seeded by the level number.
func NewRand(seed int64) *Rand {
	state := seed % lcgModulus
	if state < 0 {
		state += lcgModulus
	}
	return &Rand{state: state}
}

// Next advances the sequence and returns a value in [0, 1).
func (r *Rand) Next() float64 {
	r.state = (r.state*9301 + 49297) % lcgModulus
	return float64(r.state) / lcgModulus
}

// Range returns a value in [min, max).
func (r *Rand) Range(min, max float64) float64 {
	return min + r.Next()*(max-min)
}

// IntRange returns an integer in [min, max] inclusive.
func (r *Rand) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + int(r.Next()*float64(max-min+1))
}

// Angle returns a value in [0, 2π).
func (r *Rand) Angle() float64 {
	return r.Next() * 2 * math.Pi
}

// State exposes the raw sequence state for snapshots.
func (r *Rand) State() int64 {
	return r.state
}
