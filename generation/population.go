package generation

import (
	"github.com/sirupsen/logrus"

	"rogue-builder/components"
	"rogue-builder/logger"
	"rogue-builder/navigation"
)

// SpawnOptions controls monster spawn sampling
type SpawnOptions struct {
	Count       int     // How many spawn points to draw
	MinDistance float64 // Spawns must be strictly farther than this from the start
}

// SpawnPool lists floor tiles farther than minDistance from start, in index order
func SpawnPool(mapComp *components.MapComponent, start components.Point, minDistance float64) []components.Point {
	var pool []components.Point
	for idx, tile := range mapComp.Tiles {
		if tile != components.TileFloor {
			continue
		}
		p := mapComp.IndexToPoint(idx)
		if start.DistanceTo(p) > minDistance {
			pool = append(pool, p)
		}
	}
	return pool
}

// SampleSpawns draws distinct spawn points without replacement.
// When the pool is smaller than requested the result is clamped to the pool size.
// Random stream: one SliceIndex call per drawn point.
func SampleSpawns(mapComp *components.MapComponent, start components.Point, opts SpawnOptions, rng RandomSource) []components.Point {
	pool := SpawnPool(mapComp, start, opts.MinDistance)

	count := opts.Count
	if count > len(pool) {
		logger.WithComponent("generation").WithFields(logrus.Fields{
			"requested": opts.Count,
			"available": len(pool),
		}).Debug("Spawn pool smaller than requested, clamping")
		count = len(pool)
	}

	spawns := make([]components.Point, 0, count)
	for i := 0; i < count; i++ {
		idx, ok := rng.SliceIndex(len(pool))
		if !ok {
			break
		}
		spawns = append(spawns, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}

	return spawns
}

// FindMostDistant returns the floor tile with the largest finite walking distance from start.
// Ties go to the first tile in index order; start itself is returned when nothing else is reachable.
func FindMostDistant(mapComp *components.MapComponent, start components.Point, maxDistance float64) components.Point {
	field := navigation.Compute(mapComp, []components.Point{start}, maxDistance)

	best := -1.0
	farthest := start
	for idx, dist := range field.Distances {
		if dist == navigation.Unreachable || mapComp.Tiles[idx] != components.TileFloor {
			continue
		}
		if dist > best {
			best = dist
			farthest = mapComp.IndexToPoint(idx)
		}
	}

	return farthest
}
