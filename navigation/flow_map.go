package navigation

import (
	"fmt"
	"math"

	"rogue-builder/components"
)

// Unreachable marks a tile that was never reached or lies beyond the exploration horizon
const Unreachable = math.MaxFloat64

// Grid is the view of a map the flow engine needs
type Grid interface {
	Size() (width, height int)
	InBounds(p components.Point) bool
	CanEnter(p components.Point) bool
	PointToIndex(p components.Point) int
	IndexToPoint(idx int) components.Point
}

// FlowMap stores the shortest walking distance from a set of sources to every tile
type FlowMap struct {
	Width, Height int
	Distances     []float64 // Per-tile distance, Unreachable if not reached
	MaxDistance   float64   // Exploration horizon this field was computed with
	Visited       int       // Number of tiles finalized during the search
}

// Compute runs a multi-source breadth-first search over enterable tiles.
//
// Every source starts at distance 0. Edges are the four cardinal steps with unit cost,
// so the first time a tile is dequeued its distance is final. Tiles farther than
// maxDistance are left Unreachable. A source outside the grid is a caller bug and panics.
func Compute(grid Grid, sources []components.Point, maxDistance float64) *FlowMap {
	width, height := grid.Size()
	size := width * height

	f := &FlowMap{
		Width:       width,
		Height:      height,
		Distances:   make([]float64, size),
		MaxDistance: maxDistance,
	}
	for i := range f.Distances {
		f.Distances[i] = Unreachable
	}

	queue := make([]int, 0, size)
	for _, src := range sources {
		if !grid.InBounds(src) {
			panic(fmt.Sprintf("navigation: flow source %v outside %dx%d map", src, width, height))
		}
		idx := grid.PointToIndex(src)
		if f.Distances[idx] == 0 {
			continue // Duplicate source
		}
		f.Distances[idx] = 0
		f.Visited++
		queue = append(queue, idx)
	}

	for head := 0; head < len(queue); head++ {
		idx := queue[head]
		next := f.Distances[idx] + 1
		if next > maxDistance {
			continue
		}

		p := grid.IndexToPoint(idx)
		for _, d := range components.CardinalDirections {
			n := p.Add(d)
			if !grid.CanEnter(n) {
				continue
			}
			nIdx := grid.PointToIndex(n)
			if f.Distances[nIdx] != Unreachable {
				continue // Already finalized
			}
			f.Distances[nIdx] = next
			f.Visited++
			queue = append(queue, nIdx)
		}
	}

	return f
}

// Reachable reports whether the tile at idx received a finite distance
func (f *FlowMap) Reachable(idx int) bool {
	return f.Distances[idx] < Unreachable
}

// DistanceAt returns the distance recorded for p, Unreachable when off the field
func (f *FlowMap) DistanceAt(p components.Point) float64 {
	if p.X < 0 || p.Y < 0 || p.X >= f.Width || p.Y >= f.Height {
		return Unreachable
	}
	return f.Distances[p.Y*f.Width+p.X]
}

// FindLowestExit returns the neighbour of fromIdx to step onto when descending the field.
//
// Neighbours are examined in W, E, N, S order and must be enterable. The winner is the one
// with the smallest finite distance that is strictly below the current tile's; on a tie the
// first in enumeration order wins. Returns false when no neighbour improves on the current tile.
func FindLowestExit(f *FlowMap, grid Grid, fromIdx int) (int, bool) {
	from := grid.IndexToPoint(fromIdx)
	best := f.Distances[fromIdx]
	bestIdx := -1

	for _, d := range components.CardinalDirections {
		n := from.Add(d)
		if !grid.CanEnter(n) {
			continue
		}
		nIdx := grid.PointToIndex(n)
		if dist := f.Distances[nIdx]; dist < best {
			best = dist
			bestIdx = nIdx
		}
	}

	if bestIdx < 0 {
		return 0, false
	}
	return bestIdx, true
}
