package levelgen

import (
	"math"

	"github.com/wellhopper/wellhopper/internal/physics"
)

// Goal and black-hole placement calibration. Black holes pull 4× as
// hard as a planet of equal radius; the goal exerts only a light tug
// toward the exit.
const (
	goalRadius      = 16.0
	goalBuffer      = 20.0
	goalAttempts    = 50
	goalStrengthMul = 0.35

	blackHoleStrengthMul = 4.0
	blackHoleMinRadius   = 6.0
	blackHoleMaxRadius   = 12.0
	blackHoleAttempts    = 100
	blackHolePlanetGap   = 60.0
	blackHoleGoalGap     = 120.0
	blackHoleStartGap    = 150.0
	blackHoleMutualGap   = 100.0
)

// Generate builds the level for the given level number using the stock
// physics calibration. It is a pure function of the number: two calls
// with the same number produce bit-identical levels.
func Generate(number int) *Level {
	return GenerateWithParams(number, physics.DefaultParams())
}

// GenerateWithParams builds a level against an explicit calibration
// (world size, body radius). Generation is atomic: the returned level
// is fully built, and no failure mode aborts it. Placements that find
// no room degrade to fewer entities.
func GenerateWithParams(number int, p physics.Params) *Level {
	seed := int64(number)
	rng := NewRand(seed)
	tier := tierFor(number)
	arch := pickArchetype(rng, tier)
	bounds := physics.Vec2{X: p.WorldW, Y: p.WorldH}

	planets := placers[arch](rng, tier, bounds)
	if len(planets) == 0 {
		// The rejection budget produced nothing; a single centered well
		// keeps the level playable.
		r := (tier.MinRadius + tier.MaxRadius) / 2
		planets = []physics.Source{newPlanet(physics.Vec2{X: bounds.X / 2, Y: bounds.Y / 2}, r, 1.0)}
	}

	start := placeStart(rng, &planets[0], p)
	goal := placeGoal(rng, planets, tier, bounds)
	holes := placeBlackHoles(rng, planets, goal, start, tier, bounds)

	return &Level{
		Number:    number,
		Seed:      seed,
		Archetype: arch,
		World: physics.World{
			Planets:    planets,
			BlackHoles: holes,
			Goal:       goal,
			Bounds:     bounds,
		},
		Start: start,
	}
}

// placeStart puts the spawn just outside planet 0 at a random angle.
func placeStart(rng *Rand, anchor *physics.Source, p physics.Params) physics.Vec2 {
	angle := rng.Angle()
	orbit := anchor.Radius + p.BodyRadius + p.SurfaceMargin
	return anchor.Pos.Add(physics.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(orbit))
}

// placeGoal anchors the goal near the planet GoalHops hops into the
// sequence, re-rolls while it overlaps a planet, and if every attempt
// fails displaces the last candidate along the offending axis. The
// result is always inside the canvas.
func placeGoal(rng *Rand, planets []physics.Source, tier Tier, bounds physics.Vec2) physics.Source {
	anchorIdx := tier.GoalHops
	if anchorIdx > len(planets)-1 {
		anchorIdx = len(planets) - 1
	}
	anchor := &planets[anchorIdx]

	var pos physics.Vec2
	placed := false
	for attempt := 0; attempt < goalAttempts; attempt++ {
		angle := rng.Angle()
		dist := anchor.Radius + goalRadius + rng.Range(40, 140)
		pos = anchor.Pos.Add(physics.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(dist))
		if goalClear(pos, planets) {
			placed = true
			break
		}
	}

	if !placed {
		// Forced displacement: push the last candidate straight out of
		// each well it still overlaps, along whichever axis offends less.
		for i := range planets {
			pl := &planets[i]
			need := pl.Radius + goalRadius + goalBuffer
			d := pos.Sub(pl.Pos)
			if d.Len() >= need {
				continue
			}
			if math.Abs(d.X) >= math.Abs(d.Y) {
				if d.X >= 0 {
					pos.X = pl.Pos.X + need
				} else {
					pos.X = pl.Pos.X - need
				}
			} else {
				if d.Y >= 0 {
					pos.Y = pl.Pos.Y + need
				} else {
					pos.Y = pl.Pos.Y - need
				}
			}
		}
	}

	pos.X = math.Max(goalRadius, math.Min(bounds.X-goalRadius, pos.X))
	pos.Y = math.Max(goalRadius, math.Min(bounds.Y-goalRadius, pos.Y))

	return physics.Source{
		Kind:     physics.KindGoal,
		Pos:      pos,
		Radius:   goalRadius,
		Strength: physics.StrengthFor(goalRadius, goalStrengthMul),
	}
}

// goalClear reports whether the goal circle keeps its buffer from every
// planet.
func goalClear(pos physics.Vec2, planets []physics.Source) bool {
	for i := range planets {
		need := planets[i].Radius + goalRadius + goalBuffer
		if pos.DistanceSq(planets[i].Pos) < need*need {
			return false
		}
	}
	return true
}

// placeBlackHoles rejection-samples the tier's black holes against
// minimum distances from every planet, the goal, the spawn, and each
// other. A hole that finds no valid position is simply omitted.
func placeBlackHoles(rng *Rand, planets []physics.Source, goal physics.Source, start physics.Vec2, tier Tier, bounds physics.Vec2) []physics.Source {
	if tier.BlackHoles == 0 {
		return nil
	}

	holes := make([]physics.Source, 0, tier.BlackHoles)
	for i := 0; i < tier.BlackHoles; i++ {
		for attempt := 0; attempt < blackHoleAttempts; attempt++ {
			r := rng.Range(blackHoleMinRadius, blackHoleMaxRadius)
			pos := physics.Vec2{
				X: rng.Range(r+edgeMargin, bounds.X-r-edgeMargin),
				Y: rng.Range(r+edgeMargin, bounds.Y-r-edgeMargin),
			}
			if blackHoleClear(pos, r, planets, goal, start, holes) {
				holes = append(holes, physics.Source{
					Kind:     physics.KindBlackHole,
					Pos:      pos,
					Radius:   r,
					Strength: physics.StrengthFor(r, blackHoleStrengthMul),
				})
				break
			}
		}
	}
	return holes
}

func blackHoleClear(pos physics.Vec2, r float64, planets []physics.Source, goal physics.Source, start physics.Vec2, holes []physics.Source) bool {
	for i := range planets {
		need := planets[i].Radius + r + blackHolePlanetGap
		if pos.DistanceSq(planets[i].Pos) < need*need {
			return false
		}
	}
	if pos.Distance(goal.Pos) < goal.Radius+r+blackHoleGoalGap {
		return false
	}
	if pos.Distance(start) < blackHoleStartGap {
		return false
	}
	for i := range holes {
		if pos.Distance(holes[i].Pos) < holes[i].Radius+r+blackHoleMutualGap {
			return false
		}
	}
	return true
}
