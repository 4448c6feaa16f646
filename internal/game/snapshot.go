package game

import "math"

// Snapshot captures the complete session state for determinism testing
// and replay. Primitive fields only, so it hashes and serializes
// stably.
type Snapshot struct {
	Tick   uint64
	Mode   int
	State  string
	Score  int
	Lives  int
	Deaths int

	LevelNumber int
	Seed        int64
	Archetype   string
	PlanetCount int
	HoleCount   int

	X, Y         float64
	VX, VY       float64
	Angle        float64
	AngularSpeed float64
	OnSurface    bool
	SourceIdx    int
	Launched     bool
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.tick,
		Mode:   int(g.mode),
		State:  g.state,
		Score:  g.score,
		Lives:  g.lives,
		Deaths: g.deaths,

		LevelNumber: g.levelNum,
		Seed:        g.level.Seed,
		Archetype:   string(g.level.Archetype),
		PlanetCount: len(g.level.World.Planets),
		HoleCount:   len(g.level.World.BlackHoles),

		X: g.body.Pos.X, Y: g.body.Pos.Y,
		VX: g.body.Vel.X, VY: g.body.Vel.Y,
		Angle:        g.body.Angle,
		AngularSpeed: g.body.AngularSpeed,
		OnSurface:    g.body.OnSurface,
		SourceIdx:    g.body.SourceIdx,
		Launched:     g.body.Launched,
	}
}

// Hash folds the snapshot into a single value for determinism checks.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Mode)
	h = h*31 + uint64(snap.Score)
	h = h*31 + uint64(int64(snap.Lives)&0xffff)
	h = h*31 + uint64(snap.Deaths)
	h = h*31 + uint64(snap.LevelNumber)
	h = h*31 + uint64(snap.PlanetCount)
	h = h*31 + uint64(snap.HoleCount)
	for _, s := range snap.State {
		h = h*31 + uint64(s)
	}
	for _, f := range []float64{snap.X, snap.Y, snap.VX, snap.VY, snap.Angle, snap.AngularSpeed} {
		h = h*31 + math.Float64bits(f)
	}
	if snap.OnSurface {
		h = h*31 + 1
	}
	if snap.Launched {
		h = h*31 + 1
	}
	h = h*31 + uint64(int64(snap.SourceIdx)&0xffff)
	return h
}
