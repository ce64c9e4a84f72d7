package generation

import (
	"math"

	"github.com/sirupsen/logrus"

	"rogue-builder/components"
	"rogue-builder/config"
	"rogue-builder/logger"
	"rogue-builder/navigation"
)

// DrunkardsWalkArchitect carves winding tunnels with random walks from the center
type DrunkardsWalkArchitect struct {
	cfg config.Generation
}

// NewDrunkardsWalkArchitect creates a drunkard's walk architect
func NewDrunkardsWalkArchitect(cfg config.Generation) *DrunkardsWalkArchitect {
	return &DrunkardsWalkArchitect{cfg: cfg}
}

// Name identifies the architect in logs
func (a *DrunkardsWalkArchitect) Name() string {
	return "drunkards_walk"
}

// desiredFloor is the floor tile count the architect keeps walking towards
func (a *DrunkardsWalkArchitect) desiredFloor(numTiles int) int {
	want := int(math.Ceil(float64(numTiles)*a.cfg.DesiredFloorRatio - 1e-9))
	if want > numTiles {
		want = numTiles
	}
	return want
}

// Build walks until enough of the map is floor.
// Random stream: the first walk from the center, then per extra walk Range(0, W), Range(0, H)
// for the start followed by the walk's direction picks.
func (a *DrunkardsWalkArchitect) Build(rng RandomSource) Layout {
	mapComp := components.NewMapComponent(a.cfg.Width, a.cfg.Height)
	center := mapComp.Center()
	desired := a.desiredFloor(mapComp.NumTiles())

	a.drunkard(mapComp, center, rng)

	walks := 1
	for mapComp.Count(components.TileFloor) < desired {
		if walks >= a.cfg.MaxDrunkardWalks {
			logger.WithComponent("generation").WithFields(logrus.Fields{
				"walks": walks,
				"floor": mapComp.Count(components.TileFloor),
			}).Warn("Drunkard walk cap reached before floor target")
			break
		}

		start := components.Point{
			X: rng.Range(0, mapComp.Width),
			Y: rng.Range(0, mapComp.Height),
		}
		a.drunkard(mapComp, start, rng)
		walks++

		a.pruneUnreachable(mapComp, center)
	}

	return Layout{
		Map:          mapComp,
		PlayerStart:  center,
		SampleSpawns: true,
	}
}

// drunkard stumbles from start, turning every visited tile into floor.
// It stops on leaving the map or once the step budget is spent.
func (a *DrunkardsWalkArchitect) drunkard(mapComp *components.MapComponent, start components.Point, rng RandomSource) {
	pos := start
	staggered := 0

	for {
		mapComp.SetTile(pos, components.TileFloor)

		direction, _ := RandomEntry(rng, components.CardinalDirections[:])
		pos = pos.Add(direction)
		if !mapComp.InBounds(pos) {
			break
		}

		staggered++
		if staggered > a.cfg.StaggerDistance {
			break
		}
	}
}

// pruneUnreachable walls off every tile the center cannot reach, so the level stays one piece
func (a *DrunkardsWalkArchitect) pruneUnreachable(mapComp *components.MapComponent, center components.Point) {
	field := navigation.Compute(mapComp, []components.Point{center}, a.cfg.MaxFlowDistance)
	for idx, dist := range field.Distances {
		if dist > a.cfg.MaxFlowDistance {
			mapComp.Tiles[idx] = components.TileWall
		}
	}
}
