package physics

import (
	"math"
	"testing"
)

// flightBody builds a body already in free flight.
func flightBody(pos, vel Vec2, p Params) Body {
	return Body{
		Pos:       pos,
		Prev:      pos,
		Vel:       vel,
		SourceIdx: -1,
		Launched:  true,
		Radius:    p.BodyRadius,
	}
}

// emptyWorld has no pull anywhere; the goal sits far in a corner.
func emptyWorld() World {
	return World{
		Goal:   Source{Kind: KindGoal, Pos: Vec2{X: 2, Y: 2}, Radius: 1},
		Bounds: Vec2{X: 800, Y: 600},
	}
}

func TestStepSurfaceReturnsContinuing(t *testing.T) {
	p := DefaultParams()
	w := singlePlanetWorld()
	b := NewBody(&w, w.Planets[0].Pos.Add(Vec2{X: 100}), p)

	got := Step(&b, &w, Input{Right: true}, 1.0/60.0, DefaultTuning(), p)
	if got != Continuing {
		t.Errorf("surface step = %v, want Continuing", got)
	}
	if !b.OnSurface {
		t.Error("running should stay in surface mode")
	}
}

func TestStepLaunchEntersFlight(t *testing.T) {
	p := DefaultParams()
	w := singlePlanetWorld()
	b := NewBody(&w, w.Planets[0].Pos.Add(Vec2{X: 100}), p)
	b.AngularSpeed = p.BaseAngularSpeed

	got := Step(&b, &w, Input{Launch: true}, 1.0/60.0, DefaultTuning(), p)
	if got != Continuing {
		t.Errorf("launch step = %v, want Continuing", got)
	}
	if b.OnSurface {
		t.Error("launch should leave surface mode")
	}
	if !b.Launched {
		t.Error("launch gate should be set")
	}
}

func TestStepFlightLandsOnPlanet(t *testing.T) {
	p := DefaultParams()
	w := singlePlanetWorld()

	// Aimed straight at the planet from close range
	start := w.Planets[0].Pos.Add(Vec2{X: 60})
	b := flightBody(start, Vec2{X: -600}, p)

	var got Outcome
	for i := 0; i < 120; i++ {
		got = Step(&b, &w, Input{}, 1.0/60.0, DefaultTuning(), p)
		if got != Continuing {
			break
		}
	}

	if got != Landed {
		t.Fatalf("flight into a planet = %v, want Landed", got)
	}
	if !b.OnSurface || b.SourceIdx != 0 {
		t.Error("landing should pin the body to the planet")
	}
}

func TestStepDeathBeforeGoal(t *testing.T) {
	p := DefaultParams()
	// A black hole sits inside the goal ring; one step sweeps through
	// both. Death wins.
	w := World{
		BlackHoles: []Source{{Kind: KindBlackHole, Pos: Vec2{X: 400, Y: 300}, Radius: 8}},
		Goal:       Source{Kind: KindGoal, Pos: Vec2{X: 400, Y: 300}, Radius: 16},
		Bounds:     Vec2{X: 800, Y: 600},
	}

	b := flightBody(Vec2{X: 300, Y: 300}, Vec2{X: 12000}, p)

	got := Step(&b, &w, Input{}, 1.0/60.0, DefaultTuning(), p)
	if got != Destroyed {
		t.Errorf("step touching both hole and goal = %v, want Destroyed", got)
	}
}

func TestStepGoalIgnoresBodyRadius(t *testing.T) {
	p := DefaultParams()
	w := emptyWorld()
	w.Goal = Source{Kind: KindGoal, Pos: Vec2{X: 400, Y: 300}, Radius: 16}

	// Resting just outside the ring: within radius + body radius but not
	// within the ring itself. The goal is a trigger volume, so no entry.
	b := flightBody(Vec2{X: 400 + 16 + 2, Y: 300}, Vec2{}, p)
	if got := Step(&b, &w, Input{}, 1.0/60.0, DefaultTuning(), p); got != Continuing {
		t.Errorf("body center outside the ring = %v, want Continuing", got)
	}

	// Center inside the ring: entry
	b = flightBody(Vec2{X: 400 + 16 - 2, Y: 300}, Vec2{}, p)
	if got := Step(&b, &w, Input{}, 1.0/60.0, DefaultTuning(), p); got != ReachedGoal {
		t.Errorf("body center inside the ring = %v, want ReachedGoal", got)
	}
}

func TestStepBlackHoleUsesCombinedRadius(t *testing.T) {
	p := DefaultParams()
	w := emptyWorld()
	w.BlackHoles = []Source{{Kind: KindBlackHole, Pos: Vec2{X: 400, Y: 300}, Radius: 10}}

	// Unlike the goal, lethality pads by the body radius
	b := flightBody(Vec2{X: 400 + 10 + p.BodyRadius - 1, Y: 300}, Vec2{}, p)
	if got := Step(&b, &w, Input{}, 1.0/60.0, DefaultTuning(), p); got != Destroyed {
		t.Errorf("grazing contact = %v, want Destroyed", got)
	}

	b = flightBody(Vec2{X: 400 + 10 + p.BodyRadius + 1, Y: 300}, Vec2{}, p)
	if got := Step(&b, &w, Input{}, 1.0/60.0, DefaultTuning(), p); got != Continuing {
		t.Errorf("near miss = %v, want Continuing", got)
	}
}

func TestStepBlackHoleSweepCatchesTunneling(t *testing.T) {
	p := DefaultParams()
	w := emptyWorld()
	w.BlackHoles = []Source{{Kind: KindBlackHole, Pos: Vec2{X: 400, Y: 300}, Radius: 8}}

	// Fast enough to cross the hole entirely within one step
	b := flightBody(Vec2{X: 300, Y: 300}, Vec2{X: 12000}, p)
	if got := Step(&b, &w, Input{}, 1.0/60.0, DefaultTuning(), p); got != Destroyed {
		t.Errorf("pass-through = %v, want Destroyed", got)
	}
}

func TestStepWrapResetsSweptOrigin(t *testing.T) {
	p := DefaultParams()
	w := emptyWorld()
	// A planet in the middle of the canvas, directly on the straight
	// line between the two wrap points. The teleport must not register
	// as travel through it.
	w.Planets = []Source{{Kind: KindPlanet, Pos: Vec2{X: 400, Y: 300}, Radius: 30}}

	b := flightBody(Vec2{X: 795, Y: 300}, Vec2{X: 600}, p)

	got := Step(&b, &w, Input{}, 1.0/60.0, DefaultTuning(), p)
	if got != Continuing {
		t.Fatalf("wrap step = %v, want Continuing", got)
	}
	if b.Pos.X > 400 {
		t.Fatalf("body should have wrapped to the left edge, at %v", b.Pos)
	}
	if b.Prev != b.Pos {
		t.Errorf("wrap should reset the swept origin, Prev=%v Pos=%v", b.Prev, b.Pos)
	}
}

func TestStepTimeDilationScalesMotion(t *testing.T) {
	p := DefaultParams()
	w := emptyWorld()

	normal := flightBody(Vec2{X: 100, Y: 100}, Vec2{X: 60}, p)
	dilated := flightBody(Vec2{X: 100, Y: 100}, Vec2{X: 60}, p)

	Step(&normal, &w, Input{}, 1.0/60.0, Tuning{GravityMultiplier: 1, TimeDilation: 1}, p)
	Step(&dilated, &w, Input{}, 1.0/60.0, Tuning{GravityMultiplier: 1, TimeDilation: 2}, p)

	moved := normal.Pos.X - 100
	movedDilated := dilated.Pos.X - 100
	if math.Abs(movedDilated-2*moved) > 1e-9 {
		t.Errorf("dilation 2 should double force-free travel: %f vs %f", movedDilated, moved)
	}
}

func TestOutcomeString(t *testing.T) {
	cases := map[Outcome]string{
		Continuing:  "continuing",
		Landed:      "landed",
		ReachedGoal: "reached_goal",
		Destroyed:   "destroyed",
	}
	for o, want := range cases {
		if o.String() != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", o, o.String(), want)
		}
	}
}
