package physics

// Input is the player's directional and launch state for one step.
type Input struct {
	Left   bool
	Right  bool
	Launch bool
}

// Outcome classifies one simulation step.
type Outcome int

const (
	Continuing  Outcome = iota // Nothing decisive happened
	Landed                     // Touched down on a planet this step
	ReachedGoal                // Entered the goal trigger volume
	Destroyed                  // Contacted a black hole
)

// String returns the outcome's name.
func (o Outcome) String() string {
	switch o {
	case Continuing:
		return "continuing"
	case Landed:
		return "landed"
	case ReachedGoal:
		return "reached_goal"
	case Destroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Step advances the body by one frame and classifies the result.
// frameDelta is the wall-clock delta in seconds; the effective dt is
// frameDelta scaled by the tuning's time dilation.
//
// Evaluation order within a step is fixed: kinetics first, then
// landing, then black-hole lethality, then goal entry. Death is checked
// before the goal, so a step that touches both is Destroyed.
func Step(b *Body, w *World, in Input, frameDelta float64, tun Tuning, p Params) Outcome {
	dt := frameDelta * tun.TimeDilation

	if b.OnSurface {
		b.stepSurface(w, in, dt, p)
		if in.Launch && !b.Launched {
			b.launch(w, p)
		}
		return Continuing
	}

	b.stepFlight(w, dt, tun, p)

	if idx := b.findLanding(w); idx >= 0 {
		b.land(w, idx, p)
		return Landed
	}

	for i := range w.BlackHoles {
		bh := &w.BlackHoles[i]
		combined := bh.Radius + b.Radius
		if b.Pos.DistanceSq(bh.Pos) <= combined*combined ||
			SegmentHitsCircle(b.Prev, b.Pos, bh.Pos, combined) {
			return Destroyed
		}
	}

	// The goal is a trigger volume: its own radius only, no body padding.
	if b.Pos.DistanceSq(w.Goal.Pos) <= w.Goal.Radius*w.Goal.Radius ||
		SegmentHitsCircle(b.Prev, b.Pos, w.Goal.Pos, w.Goal.Radius) {
		return ReachedGoal
	}

	return Continuing
}
