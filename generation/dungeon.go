package generation

import (
	"sort"

	"github.com/sirupsen/logrus"

	"rogue-builder/components"
	"rogue-builder/config"
	"rogue-builder/logger"
)

const (
	minRoomSize = 2
	maxRoomSize = 10 // Exclusive
)

// RoomsArchitect places non-overlapping rectangular rooms and joins them with L-shaped corridors
type RoomsArchitect struct {
	cfg config.Generation
}

// NewRoomsArchitect creates a rooms and corridors architect
func NewRoomsArchitect(cfg config.Generation) *RoomsArchitect {
	return &RoomsArchitect{cfg: cfg}
}

// Name identifies the architect in logs
func (a *RoomsArchitect) Name() string {
	return "rooms"
}

// Build carves rooms, connects them left to right and starts the player in the leftmost room.
// Random stream: four Range calls per room sample (x, y, width, height), then one
// Range(0, 2) per corridor.
func (a *RoomsArchitect) Build(rng RandomSource) Layout {
	mapComp := components.NewMapComponent(a.cfg.Width, a.cfg.Height)

	rooms := a.buildRandomRooms(mapComp, rng)

	// Sort by horizontal center so corridors sweep across the map
	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].Center().X < rooms[j].Center().X
	})

	a.buildCorridors(mapComp, rooms, rng)

	spawns := make([]components.Point, 0, len(rooms)-1)
	for _, room := range rooms[1:] {
		spawns = append(spawns, room.Center())
	}

	return Layout{
		Map:             mapComp,
		PlayerStart:     rooms[0].Center(),
		Rooms:           rooms,
		SpawnCandidates: spawns,
	}
}

// buildRandomRooms samples rectangles until enough rooms fit or the attempt cap is hit.
// The first sample always fits, so at least one room is returned.
func (a *RoomsArchitect) buildRandomRooms(mapComp *components.MapComponent, rng RandomSource) []components.Rect {
	rooms := make([]components.Rect, 0, a.cfg.NumRooms)

	attempts := 0
	for len(rooms) < a.cfg.NumRooms && attempts < a.cfg.MaxRoomAttempts {
		attempts++

		room := components.NewRect(
			rng.Range(1, mapComp.Width-10),
			rng.Range(1, mapComp.Height-10),
			rng.Range(minRoomSize, maxRoomSize),
			rng.Range(minRoomSize, maxRoomSize),
		)

		overlap := false
		for _, r := range rooms {
			if r.Intersect(room) {
				overlap = true
				break
			}
		}
		if overlap {
			continue
		}

		for _, p := range room.Points() {
			if idx, ok := mapComp.TryIndex(p); ok {
				mapComp.Tiles[idx] = components.TileFloor
			}
		}
		rooms = append(rooms, room)
	}

	if len(rooms) < a.cfg.NumRooms {
		logger.WithComponent("generation").WithFields(logrus.Fields{
			"rooms":    len(rooms),
			"wanted":   a.cfg.NumRooms,
			"attempts": attempts,
		}).Debug("Room attempts exhausted, accepting fewer rooms")
	}

	return rooms
}

// buildCorridors joins each consecutive pair of rooms
func (a *RoomsArchitect) buildCorridors(mapComp *components.MapComponent, rooms []components.Rect, rng RandomSource) {
	for i := 1; i < len(rooms); i++ {
		prev := rooms[i-1].Center()
		next := rooms[i].Center()

		// Coin flip for horizontal-first or vertical-first
		if rng.Range(0, 2) == 1 {
			createHorizontalCorridor(mapComp, prev.X, next.X, prev.Y)
			createVerticalCorridor(mapComp, prev.Y, next.Y, next.X)
		} else {
			createVerticalCorridor(mapComp, prev.Y, next.Y, prev.X)
			createHorizontalCorridor(mapComp, prev.X, next.X, next.Y)
		}
	}
}

func createHorizontalCorridor(mapComp *components.MapComponent, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		if idx, ok := mapComp.TryIndex(components.Point{X: x, Y: y}); ok {
			mapComp.Tiles[idx] = components.TileFloor
		}
	}
}

func createVerticalCorridor(mapComp *components.MapComponent, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		if idx, ok := mapComp.TryIndex(components.Point{X: x, Y: y}); ok {
			mapComp.Tiles[idx] = components.TileFloor
		}
	}
}
