package navigation

import (
	"rogue-builder/components"
)

// adjacentRange is how close a chaser must be to step straight onto its target
const adjacentRange = 1.2

// ChaseStep returns the tile a chaser at from should move to in order to close in on target.
// A fresh field is computed from target on every call.
// Returns false when target cannot be reached from from.
func ChaseStep(grid Grid, from, target components.Point, maxDistance float64) (components.Point, bool) {
	if from.DistanceTo(target) <= adjacentRange {
		return target, true
	}

	field := Compute(grid, []components.Point{target}, maxDistance)
	next, ok := FindLowestExit(field, grid, grid.PointToIndex(from))
	if !ok {
		return from, false
	}
	return grid.IndexToPoint(next), true
}
