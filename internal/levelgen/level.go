package levelgen

import "github.com/wellhopper/wellhopper/internal/physics"

// Archetype names a level-layout strategy. The tier table picks one per
// level; each archetype is an independent placement strategy sharing
// the same finalization.
type Archetype string

const (
	ArchetypeSimple    Archetype = "simple"
	ArchetypeBinary    Archetype = "binary"
	ArchetypeGauntlet  Archetype = "gauntlet"
	ArchetypeVoid      Archetype = "void"
	ArchetypeMaze      Archetype = "maze"
	ArchetypeGiant     Archetype = "giant"
	ArchetypePrecision Archetype = "precision"
	ArchetypeSlingshot Archetype = "slingshot"
	ArchetypeChaos     Archetype = "chaos"
)

// Level is one fully generated playable layout. It is constructed
// atomically by Generate and immutable afterward; level transitions
// replace it wholesale.
type Level struct {
	Number    int
	Seed      int64
	Archetype Archetype

	// World holds the planets (index 0 is the spawn anchor, order is
	// generation order), black holes, and the single goal.
	World physics.World

	// Start is just outside planet 0's surface.
	Start physics.Vec2
}
