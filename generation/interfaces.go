package generation

import (
	"rogue-builder/components"
)

// MapArchitect is a pluggable dungeon layout strategy
type MapArchitect interface {
	Name() string
	Build(rng RandomSource) Layout
}

// Layout is what an architect hands back to the builder
type Layout struct {
	Map         *components.MapComponent
	PlayerStart components.Point  // Always a floor tile
	Rooms       []components.Rect // Only set by room-based architects

	// SpawnCandidates, when non-empty, are used as monster spawns verbatim.
	// Otherwise SampleSpawns asks the builder to draw spawns by distance.
	SpawnCandidates []components.Point
	SampleSpawns    bool
}
