package generation

import (
	"rogue-builder/components"
	"rogue-builder/config"
)

// EmptyArchitect produces an open floor map. It consumes no randomness and is used as a test fixture.
type EmptyArchitect struct {
	cfg config.Generation
}

// NewEmptyArchitect creates an empty-map architect
func NewEmptyArchitect(cfg config.Generation) *EmptyArchitect {
	return &EmptyArchitect{cfg: cfg}
}

// Name identifies the architect in logs
func (a *EmptyArchitect) Name() string {
	return "empty"
}

// Build fills the map with floor and starts the player in the center
func (a *EmptyArchitect) Build(rng RandomSource) Layout {
	mapComp := components.NewMapComponent(a.cfg.Width, a.cfg.Height)
	mapComp.Fill(components.TileFloor)

	return Layout{
		Map:         mapComp,
		PlayerStart: mapComp.Center(),
	}
}
