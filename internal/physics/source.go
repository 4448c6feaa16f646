package physics

// Kind classifies a gravity source. All three kinds share one force
// law; they differ only in how collisions against them are classified.
type Kind int

const (
	KindPlanet    Kind = iota // Landable surface
	KindBlackHole             // Lethal on contact
	KindGoal                  // Level exit; trigger volume with light pull
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case KindPlanet:
		return "planet"
	case KindBlackHole:
		return "blackhole"
	case KindGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// Source is a fixed circular gravity well. Sources never move; only the
// player's body does.
type Source struct {
	Kind     Kind
	Pos      Vec2
	Radius   float64
	Strength float64 // Scales with radius³; see StrengthFor
}

// StrengthFor returns the strength for a source of the given radius.
// Bigger bodies pull harder; mul is the per-kind or per-archetype
// multiplier.
func StrengthFor(radius, mul float64) float64 {
	return radius * radius * radius * mul
}

// ForceOn returns the force pulling a body at pos toward the source, or
// the zero vector when the body is within radius + epsilonGuard of the
// center. The guard is a normal branch, not an error: it prevents the
// inverse-square law from blowing up at contact.
func (s *Source) ForceOn(pos Vec2, p Params, gravityMult float64) Vec2 {
	delta := s.Pos.Sub(pos)
	distSq := delta.LenSq()
	dist := delta.Len()
	guard := s.Radius + p.EpsilonGuard
	if dist < guard {
		return Vec2{}
	}
	mag := s.Strength * p.G * gravityMult / (distSq + p.Softening)
	return delta.Scale(mag / dist)
}

// World is the immutable set of gravity sources a body moves through:
// the level's planets in generation order, its black holes, and exactly
// one goal. Bounds is the wrap rectangle.
type World struct {
	Planets    []Source
	BlackHoles []Source
	Goal       Source
	Bounds     Vec2
}

// ForceAt sums the force law over every source in the world.
func (w *World) ForceAt(pos Vec2, p Params, gravityMult float64) Vec2 {
	var total Vec2
	for i := range w.Planets {
		total = total.Add(w.Planets[i].ForceOn(pos, p, gravityMult))
	}
	for i := range w.BlackHoles {
		total = total.Add(w.BlackHoles[i].ForceOn(pos, p, gravityMult))
	}
	total = total.Add(w.Goal.ForceOn(pos, p, gravityMult))
	return total
}
