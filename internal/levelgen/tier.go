package levelgen

// Tier is the difficulty configuration fixed by the level number before
// any random decision is made.
type Tier struct {
	Name string

	MinPlanets int
	MaxPlanets int

	MinRadius float64
	MaxRadius float64

	// MinSpacing is the required gap between planet surfaces; the
	// center-to-center constraint is r_a + r_b + MinSpacing.
	MinSpacing float64

	BlackHoles int

	// GoalHops indexes into the planet sequence to anchor the goal;
	// clamped to the last planet when fewer were placed.
	GoalHops int

	// Archetypes the tier draws from, uniformly.
	Archetypes []Archetype
}

// tierFor maps a level number to its difficulty tier.
func tierFor(level int) Tier {
	switch {
	case level <= 2:
		return Tier{
			Name:       "tutorial",
			MinPlanets: 3, MaxPlanets: 4,
			MinRadius: 28, MaxRadius: 42,
			MinSpacing: 90,
			BlackHoles: 0,
			GoalHops:   1,
			Archetypes: []Archetype{ArchetypeSimple},
		}
	case level <= 5:
		return Tier{
			Name:       "easy",
			MinPlanets: 4, MaxPlanets: 5,
			MinRadius: 24, MaxRadius: 42,
			MinSpacing: 80,
			BlackHoles: 0,
			GoalHops:   2,
			Archetypes: []Archetype{ArchetypeSimple, ArchetypeBinary},
		}
	case level <= 9:
		return Tier{
			Name:       "medium",
			MinPlanets: 5, MaxPlanets: 6,
			MinRadius: 22, MaxRadius: 40,
			MinSpacing: 70,
			BlackHoles: 1,
			GoalHops:   2,
			Archetypes: []Archetype{ArchetypeBinary, ArchetypeGauntlet, ArchetypeVoid},
		}
	case level <= 14:
		return Tier{
			Name:       "hard",
			MinPlanets: 6, MaxPlanets: 8,
			MinRadius: 20, MaxRadius: 38,
			MinSpacing: 60,
			BlackHoles: 2,
			GoalHops:   3,
			Archetypes: []Archetype{ArchetypeGauntlet, ArchetypeVoid, ArchetypeMaze, ArchetypeGiant},
		}
	case level <= 19:
		return Tier{
			Name:       "expert",
			MinPlanets: 7, MaxPlanets: 9,
			MinRadius: 18, MaxRadius: 36,
			MinSpacing: 55,
			BlackHoles: 3,
			GoalHops:   4,
			Archetypes: []Archetype{ArchetypeMaze, ArchetypeGiant, ArchetypePrecision, ArchetypeSlingshot},
		}
	default:
		return Tier{
			Name:       "master",
			MinPlanets: 8, MaxPlanets: 10,
			MinRadius: 16, MaxRadius: 34,
			MinSpacing: 50,
			BlackHoles: 4,
			GoalHops:   5,
			Archetypes: []Archetype{ArchetypePrecision, ArchetypeSlingshot, ArchetypeChaos},
		}
	}
}

// pickArchetype draws the tier's archetype for this level.
func pickArchetype(rng *Rand, tier Tier) Archetype {
	if len(tier.Archetypes) == 1 {
		return tier.Archetypes[0]
	}
	return tier.Archetypes[rng.IntRange(0, len(tier.Archetypes)-1)]
}
