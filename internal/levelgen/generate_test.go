package levelgen

import (
	"testing"

	"github.com/wellhopper/wellhopper/internal/physics"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(7)
	b := Generate(7)

	if a.Archetype != b.Archetype {
		t.Fatalf("archetypes differ: %s vs %s", a.Archetype, b.Archetype)
	}
	if a.Start != b.Start {
		t.Errorf("starts differ: %v vs %v", a.Start, b.Start)
	}
	if a.World.Goal != b.World.Goal {
		t.Errorf("goals differ: %v vs %v", a.World.Goal, b.World.Goal)
	}
	if len(a.World.Planets) != len(b.World.Planets) {
		t.Fatalf("planet counts differ: %d vs %d", len(a.World.Planets), len(b.World.Planets))
	}
	for i := range a.World.Planets {
		if a.World.Planets[i] != b.World.Planets[i] {
			t.Errorf("planet %d differs: %v vs %v", i, a.World.Planets[i], b.World.Planets[i])
		}
	}
	if len(a.World.BlackHoles) != len(b.World.BlackHoles) {
		t.Fatalf("hole counts differ: %d vs %d", len(a.World.BlackHoles), len(b.World.BlackHoles))
	}
	for i := range a.World.BlackHoles {
		if a.World.BlackHoles[i] != b.World.BlackHoles[i] {
			t.Errorf("hole %d differs", i)
		}
	}
}

func TestGenerateTutorialLevels(t *testing.T) {
	for _, n := range []int{1, 2} {
		lvl := Generate(n)
		if lvl.Archetype != ArchetypeSimple {
			t.Errorf("level %d archetype = %s, want %s", n, lvl.Archetype, ArchetypeSimple)
		}
		if len(lvl.World.BlackHoles) != 0 {
			t.Errorf("level %d should have no black holes, got %d", n, len(lvl.World.BlackHoles))
		}
		if got := len(lvl.World.Planets); got < 1 || got > 4 {
			t.Errorf("level %d planet count = %d, want 1..4", n, got)
		}
	}
}

func TestGenerateNeverEmpty(t *testing.T) {
	for n := 1; n <= 60; n++ {
		lvl := Generate(n)
		if lvl == nil {
			t.Fatalf("level %d: nil level", n)
		}
		if len(lvl.World.Planets) == 0 {
			t.Errorf("level %d: no planets", n)
		}
		if lvl.Number != n || lvl.Seed != int64(n) {
			t.Errorf("level %d: number/seed mismatch: %d/%d", n, lvl.Number, lvl.Seed)
		}
		if _, ok := placers[lvl.Archetype]; !ok {
			t.Errorf("level %d: unknown archetype %s", n, lvl.Archetype)
		}
	}
}

func TestGenerateArchetypeMatchesTier(t *testing.T) {
	for n := 1; n <= 60; n++ {
		lvl := Generate(n)
		tier := tierFor(n)
		found := false
		for _, a := range tier.Archetypes {
			if a == lvl.Archetype {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("level %d: archetype %s not in tier %s", n, lvl.Archetype, tier.Name)
		}
	}
}

func TestGeneratePlanetsSeparatedAndInBounds(t *testing.T) {
	p := physics.DefaultParams()
	for n := 1; n <= 60; n++ {
		lvl := Generate(n)
		planets := lvl.World.Planets

		for i := range planets {
			pl := &planets[i]
			if pl.Kind != physics.KindPlanet {
				t.Errorf("level %d planet %d has kind %s", n, i, pl.Kind)
			}
			if pl.Pos.X < pl.Radius || pl.Pos.X > p.WorldW-pl.Radius ||
				pl.Pos.Y < pl.Radius || pl.Pos.Y > p.WorldH-pl.Radius {
				t.Errorf("level %d planet %d sticks out of the canvas: %v r=%f", n, i, pl.Pos, pl.Radius)
			}
			for j := i + 1; j < len(planets); j++ {
				dist := pl.Pos.Distance(planets[j].Pos)
				if dist <= pl.Radius+planets[j].Radius {
					t.Errorf("level %d planets %d and %d overlap: dist %f", n, i, j, dist)
				}
			}
		}
	}
}

func TestGenerateStartOnFirstPlanetSurface(t *testing.T) {
	p := physics.DefaultParams()
	for n := 1; n <= 30; n++ {
		lvl := Generate(n)
		anchor := lvl.World.Planets[0]
		orbit := anchor.Radius + p.BodyRadius + p.SurfaceMargin
		dist := lvl.Start.Distance(anchor.Pos)
		if diff := dist - orbit; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("level %d: start sits at %f from planet 0, want orbit %f", n, dist, orbit)
		}
	}
}

func TestGenerateGoalShape(t *testing.T) {
	for n := 1; n <= 60; n++ {
		goal := Generate(n).World.Goal
		if goal.Kind != physics.KindGoal {
			t.Errorf("level %d goal kind = %s", n, goal.Kind)
		}
		if goal.Radius != goalRadius {
			t.Errorf("level %d goal radius = %f, want %f", n, goal.Radius, goalRadius)
		}
		if goal.Strength != physics.StrengthFor(goalRadius, goalStrengthMul) {
			t.Errorf("level %d goal strength = %f", n, goal.Strength)
		}
		if goal.Pos.X < goalRadius || goal.Pos.X > 800-goalRadius ||
			goal.Pos.Y < goalRadius || goal.Pos.Y > 600-goalRadius {
			t.Errorf("level %d goal outside the canvas: %v", n, goal.Pos)
		}
	}
}

func TestGenerateBlackHoleConstraints(t *testing.T) {
	for n := 1; n <= 60; n++ {
		lvl := Generate(n)
		tier := tierFor(n)
		holes := lvl.World.BlackHoles

		if len(holes) > tier.BlackHoles {
			t.Errorf("level %d: %d holes exceeds tier budget %d", n, len(holes), tier.BlackHoles)
		}

		for i := range holes {
			h := &holes[i]
			if h.Kind != physics.KindBlackHole {
				t.Errorf("level %d hole %d kind = %s", n, i, h.Kind)
			}
			if h.Radius < blackHoleMinRadius || h.Radius > blackHoleMaxRadius {
				t.Errorf("level %d hole %d radius = %f out of range", n, i, h.Radius)
			}
			if h.Strength != physics.StrengthFor(h.Radius, blackHoleStrengthMul) {
				t.Errorf("level %d hole %d strength = %f", n, i, h.Strength)
			}

			for j := range lvl.World.Planets {
				pl := &lvl.World.Planets[j]
				need := pl.Radius + h.Radius + blackHolePlanetGap
				if d := h.Pos.Distance(pl.Pos); d < need-1e-9 {
					t.Errorf("level %d hole %d too close to planet %d: %f < %f", n, i, j, d, need)
				}
			}
			if d := h.Pos.Distance(lvl.World.Goal.Pos); d < lvl.World.Goal.Radius+h.Radius+blackHoleGoalGap-1e-9 {
				t.Errorf("level %d hole %d too close to the goal: %f", n, i, d)
			}
			if d := h.Pos.Distance(lvl.Start); d < blackHoleStartGap-1e-9 {
				t.Errorf("level %d hole %d too close to the spawn: %f", n, i, d)
			}
			for j := i + 1; j < len(holes); j++ {
				need := h.Radius + holes[j].Radius + blackHoleMutualGap
				if d := h.Pos.Distance(holes[j].Pos); d < need-1e-9 {
					t.Errorf("level %d holes %d and %d too close: %f < %f", n, i, j, d, need)
				}
			}
		}
	}
}

func TestEveryArchetypeHasPlacer(t *testing.T) {
	all := []Archetype{
		ArchetypeSimple, ArchetypeBinary, ArchetypeGauntlet,
		ArchetypeVoid, ArchetypeMaze, ArchetypeGiant,
		ArchetypePrecision, ArchetypeSlingshot, ArchetypeChaos,
	}
	for _, a := range all {
		if _, ok := placers[a]; !ok {
			t.Errorf("archetype %s has no placer", a)
		}
	}
}
