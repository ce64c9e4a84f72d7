package generation

import (
	"math"

	"rogue-builder/components"
	"rogue-builder/config"
)

// CellularAutomataArchitect grows cave-like levels from random noise
type CellularAutomataArchitect struct {
	cfg config.Generation
}

// NewCellularAutomataArchitect creates a cellular automata architect
func NewCellularAutomataArchitect(cfg config.Generation) *CellularAutomataArchitect {
	return &CellularAutomataArchitect{cfg: cfg}
}

// Name identifies the architect in logs
func (a *CellularAutomataArchitect) Name() string {
	return "cellular_automata"
}

// Build seeds noise, smooths it and picks the floor tile nearest the center as the start.
// Random stream: one Range(0, 100) per tile in index order, nothing else.
func (a *CellularAutomataArchitect) Build(rng RandomSource) Layout {
	mapComp := components.NewMapComponent(a.cfg.Width, a.cfg.Height)

	a.randomNoiseMap(mapComp, rng)

	for i := 0; i < a.cfg.AutomataPasses; i++ {
		a.iteration(mapComp)
	}

	return Layout{
		Map:          mapComp,
		PlayerStart:  a.findStart(mapComp),
		SampleSpawns: true,
	}
}

// randomNoiseMap makes roughly 45% of the tiles floor
func (a *CellularAutomataArchitect) randomNoiseMap(mapComp *components.MapComponent, rng RandomSource) {
	for i := range mapComp.Tiles {
		if rng.Range(0, 100) > a.cfg.AutomataWallThreshold {
			mapComp.Tiles[i] = components.TileFloor
		} else {
			mapComp.Tiles[i] = components.TileWall
		}
	}
}

// countAdjacentWalls counts wall tiles among the 8 neighbours of an interior tile
func (a *CellularAutomataArchitect) countAdjacentWalls(mapComp *components.MapComponent, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if mapComp.Tiles[(y+dy)*mapComp.Width+x+dx] == components.TileWall {
				count++
			}
		}
	}
	return count
}

// iteration applies one smoothing pass. Neighbour counts always come from the
// previous pass; results go to a fresh buffer. The 1-tile border is left untouched.
func (a *CellularAutomataArchitect) iteration(mapComp *components.MapComponent) {
	newTiles := make([]components.TileType, len(mapComp.Tiles))
	copy(newTiles, mapComp.Tiles)

	for y := 1; y < mapComp.Height-1; y++ {
		for x := 1; x < mapComp.Width-1; x++ {
			walls := a.countAdjacentWalls(mapComp, x, y)
			idx := y*mapComp.Width + x

			// Crowded tiles close up, and so do fully isolated ones
			if walls > 4 || walls == 0 {
				newTiles[idx] = components.TileWall
			} else {
				newTiles[idx] = components.TileFloor
			}
		}
	}

	mapComp.Tiles = newTiles
}

// findStart returns the floor tile closest to the map center, first in scan order on ties
func (a *CellularAutomataArchitect) findStart(mapComp *components.MapComponent) components.Point {
	center := mapComp.Center()
	best := math.Inf(1)
	start := center
	found := false

	for idx, tile := range mapComp.Tiles {
		if tile != components.TileFloor {
			continue
		}
		p := mapComp.IndexToPoint(idx)
		if d := center.DistanceTo(p); d < best {
			best = d
			start = p
			found = true
		}
	}

	// A fully walled cave is possible in principle; carve the center so the start is walkable
	if !found {
		mapComp.SetTile(center, components.TileFloor)
	}

	return start
}
