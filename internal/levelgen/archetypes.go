package levelgen

import (
	"math"

	"github.com/wellhopper/wellhopper/internal/physics"
)

// placeAttempts bounds the rejection sampling per planet. A candidate
// that finds no room within the budget is silently dropped; fewer
// planets than requested is an accepted outcome, not an error.
const placeAttempts = 100

// edgeMargin keeps planet centers off the canvas edges, beyond their
// own radius.
const edgeMargin = 40.0

// placer is one layout strategy: a pure function of the random
// sequence, the tier configuration, and the canvas bounds.
type placer func(rng *Rand, tier Tier, bounds physics.Vec2) []physics.Source

// placers dispatches an archetype tag to its strategy.
var placers = map[Archetype]placer{
	ArchetypeSimple:    placeSimple,
	ArchetypeBinary:    placeBinary,
	ArchetypeGauntlet:  placeGauntlet,
	ArchetypeVoid:      placeVoid,
	ArchetypeMaze:      placeMaze,
	ArchetypeGiant:     placeGiant,
	ArchetypePrecision: placePrecision,
	ArchetypeSlingshot: placeSlingshot,
	ArchetypeChaos:     placeChaos,
}

// newPlanet builds a planet-class source. Strength scales with the cube
// of the radius so bigger wells pull harder; mul is the archetype's
// calibration knob.
func newPlanet(pos physics.Vec2, radius, mul float64) physics.Source {
	return physics.Source{
		Kind:     physics.KindPlanet,
		Pos:      pos,
		Radius:   radius,
		Strength: physics.StrengthFor(radius, mul),
	}
}

// spaced reports whether a candidate keeps the minimum surface gap from
// every accepted planet (center distance ≥ r_a + r_b + minSpacing).
func spaced(planets []physics.Source, pos physics.Vec2, radius, minSpacing float64) bool {
	for i := range planets {
		need := planets[i].Radius + radius + minSpacing
		if pos.DistanceSq(planets[i].Pos) < need*need {
			return false
		}
	}
	return true
}

// clampCenter keeps a planet center inside the canvas with its whole
// disc visible.
func clampCenter(pos physics.Vec2, radius float64, bounds physics.Vec2) physics.Vec2 {
	pos.X = math.Max(radius+edgeMargin, math.Min(bounds.X-radius-edgeMargin, pos.X))
	pos.Y = math.Max(radius+edgeMargin, math.Min(bounds.Y-radius-edgeMargin, pos.Y))
	return pos
}

// sampleUniform draws a center anywhere the disc fits.
func sampleUniform(rng *Rand, radius float64, bounds physics.Vec2) physics.Vec2 {
	return physics.Vec2{
		X: rng.Range(radius+edgeMargin, bounds.X-radius-edgeMargin),
		Y: rng.Range(radius+edgeMargin, bounds.Y-radius-edgeMargin),
	}
}

// rejectionPlace runs the shared accept/drop loop for one planet.
// sample draws a fresh radius and position each attempt.
func rejectionPlace(planets []physics.Source, minSpacing float64, sample func() (physics.Vec2, float64)) (physics.Vec2, float64, bool) {
	for attempt := 0; attempt < placeAttempts; attempt++ {
		pos, radius := sample()
		if spaced(planets, pos, radius, minSpacing) {
			return pos, radius, true
		}
	}
	return physics.Vec2{}, 0, false
}

// placeSimple scatters planets uniformly: the tutorial layout.
func placeSimple(rng *Rand, tier Tier, bounds physics.Vec2) []physics.Source {
	n := rng.IntRange(tier.MinPlanets, tier.MaxPlanets)
	planets := make([]physics.Source, 0, n)
	for i := 0; i < n; i++ {
		pos, radius, ok := rejectionPlace(planets, tier.MinSpacing, func() (physics.Vec2, float64) {
			r := rng.Range(tier.MinRadius, tier.MaxRadius)
			return sampleUniform(rng, r, bounds), r
		})
		if ok {
			planets = append(planets, newPlanet(pos, radius, 1.0))
		}
	}
	return planets
}

// placeBinary anchors the level on two heavy wells left and right of
// center, with small satellites scattered between them.
func placeBinary(rng *Rand, tier Tier, bounds physics.Vec2) []physics.Source {
	n := rng.IntRange(tier.MinPlanets, tier.MaxPlanets)
	planets := make([]physics.Source, 0, n)

	for _, fx := range []float64{0.28, 0.72} {
		r := rng.Range(tier.MaxRadius*0.85, tier.MaxRadius)
		pos := physics.Vec2{
			X: bounds.X*fx + rng.Range(-30, 30),
			Y: bounds.Y*0.5 + rng.Range(-60, 60),
		}
		pos = clampCenter(pos, r, bounds)
		if spaced(planets, pos, r, tier.MinSpacing) {
			planets = append(planets, newPlanet(pos, r, 1.1))
		}
	}

	for i := len(planets); i < n; i++ {
		pos, radius, ok := rejectionPlace(planets, tier.MinSpacing, func() (physics.Vec2, float64) {
			r := rng.Range(tier.MinRadius, tier.MinRadius+(tier.MaxRadius-tier.MinRadius)*0.4)
			return sampleUniform(rng, r, bounds), r
		})
		if ok {
			planets = append(planets, newPlanet(pos, radius, 1.0))
		}
	}
	return planets
}

// placeGauntlet lines planets up along a horizontal corridor with
// alternating vertical offsets, forcing a weave.
func placeGauntlet(rng *Rand, tier Tier, bounds physics.Vec2) []physics.Source {
	n := rng.IntRange(tier.MinPlanets, tier.MaxPlanets)
	planets := make([]physics.Source, 0, n)
	dir := 1.0
	for i := 0; i < n; i++ {
		baseX := bounds.X*0.1 + (bounds.X*0.8)*float64(i)/float64(maxInt(n-1, 1))
		pos, radius, ok := rejectionPlace(planets, tier.MinSpacing, func() (physics.Vec2, float64) {
			r := rng.Range(tier.MinRadius, (tier.MinRadius+tier.MaxRadius)/2)
			p := physics.Vec2{
				X: baseX + rng.Range(-30, 30),
				Y: bounds.Y*0.5 + dir*rng.Range(30, 130),
			}
			return clampCenter(p, r, bounds), r
		})
		if ok {
			planets = append(planets, newPlanet(pos, radius, 1.0))
		}
		dir = -dir
	}
	return planets
}

// placeVoid hugs the canvas edges, leaving a dead-empty center the
// player must cross in one committed flight.
func placeVoid(rng *Rand, tier Tier, bounds physics.Vec2) []physics.Source {
	n := rng.IntRange(tier.MinPlanets, tier.MaxPlanets)
	center := physics.Vec2{X: bounds.X / 2, Y: bounds.Y / 2}
	void := math.Min(bounds.X, bounds.Y) * 0.32

	planets := make([]physics.Source, 0, n)
	for i := 0; i < n; i++ {
		pos, radius, ok := rejectionPlace(planets, tier.MinSpacing, func() (physics.Vec2, float64) {
			r := rng.Range(tier.MinRadius, tier.MaxRadius)
			p := sampleUniform(rng, r, bounds)
			if p.Distance(center) < void+r {
				// Inside the void; shove the candidate out along its ray.
				p = center.Add(p.Sub(center).Normalize().Scale(void + r))
				p = clampCenter(p, r, bounds)
			}
			return p, r
		})
		if ok {
			planets = append(planets, newPlanet(pos, radius, 1.0))
		}
	}
	return planets
}

// placeMaze jitters small planets around a grid, producing dense
// corridors.
func placeMaze(rng *Rand, tier Tier, bounds physics.Vec2) []physics.Source {
	n := rng.IntRange(tier.MinPlanets, tier.MaxPlanets)
	cols := 4
	rows := (n + cols - 1) / cols

	planets := make([]physics.Source, 0, n)
	for i := 0; i < n; i++ {
		cellX := float64(i%cols) + 0.5
		cellY := float64(i/cols) + 0.5
		pos, radius, ok := rejectionPlace(planets, tier.MinSpacing, func() (physics.Vec2, float64) {
			r := rng.Range(tier.MinRadius*0.8, tier.MaxRadius*0.8)
			p := physics.Vec2{
				X: bounds.X*cellX/float64(cols) + rng.Range(-50, 50),
				Y: bounds.Y*cellY/float64(maxInt(rows, 1)) + rng.Range(-50, 50),
			}
			return clampCenter(p, r, bounds), r
		})
		if ok {
			planets = append(planets, newPlanet(pos, radius, 1.0))
		}
	}
	return planets
}

// placeGiant drops one oversized well near the center and scatters
// small moons around it.
func placeGiant(rng *Rand, tier Tier, bounds physics.Vec2) []physics.Source {
	n := rng.IntRange(tier.MinPlanets, tier.MaxPlanets)

	giantR := math.Min(tier.MaxRadius*1.9, 72)
	giantPos := physics.Vec2{
		X: bounds.X*0.5 + rng.Range(-40, 40),
		Y: bounds.Y*0.5 + rng.Range(-40, 40),
	}
	giantPos = clampCenter(giantPos, giantR, bounds)
	planets := []physics.Source{newPlanet(giantPos, giantR, 1.2)}

	for i := 1; i < n; i++ {
		pos, radius, ok := rejectionPlace(planets, tier.MinSpacing, func() (physics.Vec2, float64) {
			r := rng.Range(tier.MinRadius, tier.MinRadius*1.4)
			return sampleUniform(rng, r, bounds), r
		})
		if ok {
			planets = append(planets, newPlanet(pos, radius, 1.0))
		}
	}
	return planets
}

// placePrecision uses tiny wells with wide gaps: every landing is an
// aimed one.
func placePrecision(rng *Rand, tier Tier, bounds physics.Vec2) []physics.Source {
	n := rng.IntRange(tier.MinPlanets, tier.MaxPlanets)
	spacing := tier.MinSpacing * 1.6

	planets := make([]physics.Source, 0, n)
	for i := 0; i < n; i++ {
		pos, radius, ok := rejectionPlace(planets, spacing, func() (physics.Vec2, float64) {
			r := rng.Range(tier.MinRadius*0.6, tier.MinRadius)
			return sampleUniform(rng, r, bounds), r
		})
		if ok {
			planets = append(planets, newPlanet(pos, radius, 1.0))
		}
	}
	return planets
}

// placeSlingshot lays planets down in close heavy pairs whose combined
// pull rewards gravity-assist launches.
func placeSlingshot(rng *Rand, tier Tier, bounds physics.Vec2) []physics.Source {
	n := rng.IntRange(tier.MinPlanets, tier.MaxPlanets)

	planets := make([]physics.Source, 0, n)
	for len(planets) < n {
		pos, radius, ok := rejectionPlace(planets, tier.MinSpacing, func() (physics.Vec2, float64) {
			r := rng.Range(tier.MinRadius, tier.MaxRadius)
			return sampleUniform(rng, r, bounds), r
		})
		if !ok {
			break
		}
		planets = append(planets, newPlanet(pos, radius, 1.5))
		if len(planets) >= n {
			break
		}

		// Partner sits just past the spacing minimum, same heavy pull.
		partnerR := rng.Range(tier.MinRadius, tier.MaxRadius)
		angle := rng.Angle()
		dist := radius + partnerR + tier.MinSpacing*1.05
		partner := pos.Add(physics.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(dist))
		partner = clampCenter(partner, partnerR, bounds)
		if spaced(planets, partner, partnerR, tier.MinSpacing) {
			planets = append(planets, newPlanet(partner, partnerR, 1.5))
		}
	}
	return planets
}

// placeChaos ignores the tier's careful ranges: any size anywhere, with
// per-planet strength rolled independently.
func placeChaos(rng *Rand, tier Tier, bounds physics.Vec2) []physics.Source {
	n := rng.IntRange(tier.MinPlanets, tier.MaxPlanets)
	spacing := tier.MinSpacing * 0.85

	planets := make([]physics.Source, 0, n)
	for i := 0; i < n; i++ {
		pos, radius, ok := rejectionPlace(planets, spacing, func() (physics.Vec2, float64) {
			r := rng.Range(tier.MinRadius*0.6, tier.MaxRadius*1.15)
			return sampleUniform(rng, r, bounds), r
		})
		if ok {
			planets = append(planets, newPlanet(pos, radius, rng.Range(0.7, 1.8)))
		}
	}
	return planets
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
