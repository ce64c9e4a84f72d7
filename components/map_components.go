package components

import (
	"fmt"
	"image/color"
	"math"
)

// TileType identifies what occupies a single map cell
type TileType int

// Tile types
const (
	TileWall TileType = iota
	TileFloor
	TileExit // Stairs down to the next level
)

// String returns a short name for the tile type
func (t TileType) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileExit:
		return "exit"
	default:
		return fmt.Sprintf("tile(%d)", int(t))
	}
}

// Point is an integer map coordinate
type Point struct {
	X, Y int
}

// NewPoint creates a point
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of two points
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// DistanceTo returns the Pythagorean distance between two points
func (p Point) DistanceTo(o Point) float64 {
	dx := float64(p.X - o.X)
	dy := float64(p.Y - o.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Cardinal direction offsets in neighbour enumeration order: W, E, N, S
var CardinalDirections = [4]Point{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
}

// TileDefinition describes the visual appearance of a tile type
type TileDefinition struct {
	Glyph rune        // The character drawn for the tile
	FG    color.Color // Foreground color
	BG    color.Color // Background color (optional)
}

// NewTileDefinition creates a tile definition using a character code
func NewTileDefinition(glyph rune, fg, bg color.Color) TileDefinition {
	return TileDefinition{
		Glyph: glyph,
		FG:    fg,
		BG:    bg,
	}
}

// MapComponent stores the game map data.
// Tiles are laid out row-major: index = y*Width + x.
// Revealed belongs to the renderer and is only touched through the accessors below.
type MapComponent struct {
	Width    int
	Height   int
	Tiles    []TileType
	Revealed []bool
}

// NewMapComponent creates a new map with the given dimensions, filled with walls
func NewMapComponent(width, height int) *MapComponent {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("components: invalid map dimensions %dx%d", width, height))
	}

	m := &MapComponent{
		Width:    width,
		Height:   height,
		Tiles:    make([]TileType, width*height),
		Revealed: make([]bool, width*height),
	}

	// Start with walls everywhere
	m.Fill(TileWall)

	return m
}

// NumTiles returns the total number of cells
func (m *MapComponent) NumTiles() int {
	return m.Width * m.Height
}

// Size returns the map dimensions
func (m *MapComponent) Size() (width, height int) {
	return m.Width, m.Height
}

// Center returns the geometric center cell of the map
func (m *MapComponent) Center() Point {
	return Point{X: m.Width / 2, Y: m.Height / 2}
}

// InBounds reports whether p lies on the map
func (m *MapComponent) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// TryIndex returns the tile index for p, or false if p is off the map
func (m *MapComponent) TryIndex(p Point) (int, bool) {
	if !m.InBounds(p) {
		return 0, false
	}
	return p.Y*m.Width + p.X, true
}

// PointToIndex converts an in-bounds point to its tile index.
// Passing an out-of-bounds point is a caller bug and panics.
func (m *MapComponent) PointToIndex(p Point) int {
	idx, ok := m.TryIndex(p)
	if !ok {
		panic(fmt.Sprintf("components: point %v outside %dx%d map", p, m.Width, m.Height))
	}
	return idx
}

// IndexToPoint converts a tile index back to its point
func (m *MapComponent) IndexToPoint(idx int) Point {
	if idx < 0 || idx >= len(m.Tiles) {
		panic(fmt.Sprintf("components: index %d outside %dx%d map", idx, m.Width, m.Height))
	}
	return Point{X: idx % m.Width, Y: idx / m.Width}
}

// TileAt returns the tile at p; p must be in bounds
func (m *MapComponent) TileAt(p Point) TileType {
	return m.Tiles[m.PointToIndex(p)]
}

// SetTile sets the tile at p; p must be in bounds
func (m *MapComponent) SetTile(p Point, t TileType) {
	m.Tiles[m.PointToIndex(p)] = t
}

// CanEnter returns true if p is on the map and not a wall
func (m *MapComponent) CanEnter(p Point) bool {
	idx, ok := m.TryIndex(p)
	if !ok {
		return false
	}
	return m.Tiles[idx] != TileWall
}

// Fill overwrites every tile
func (m *MapComponent) Fill(t TileType) {
	for i := range m.Tiles {
		m.Tiles[i] = t
	}
}

// Count returns how many tiles are of type t
func (m *MapComponent) Count(t TileType) int {
	n := 0
	for _, tile := range m.Tiles {
		if tile == t {
			n++
		}
	}
	return n
}

// CardinalNeighbors returns the in-bounds 4-connected neighbours of p in W, E, N, S order
func (m *MapComponent) CardinalNeighbors(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range CardinalDirections {
		n := p.Add(d)
		if m.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// MooreNeighbors returns the in-bounds 8-connected neighbours of p in row-major order
func (m *MapComponent) MooreNeighbors(p Point) []Point {
	out := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Point{X: p.X + dx, Y: p.Y + dy}
			if m.InBounds(n) {
				out = append(out, n)
			}
		}
	}
	return out
}

// IsRevealed reports whether the renderer has uncovered p
func (m *MapComponent) IsRevealed(p Point) bool {
	return m.Revealed[m.PointToIndex(p)]
}

// Reveal marks p as uncovered
func (m *MapComponent) Reveal(p Point) {
	m.Revealed[m.PointToIndex(p)] = true
}

// RevealAll uncovers the whole map (magic mapping)
func (m *MapComponent) RevealAll() {
	for i := range m.Revealed {
		m.Revealed[i] = true
	}
}

// Clone returns a deep copy of the map
func (m *MapComponent) Clone() *MapComponent {
	c := &MapComponent{
		Width:    m.Width,
		Height:   m.Height,
		Tiles:    make([]TileType, len(m.Tiles)),
		Revealed: make([]bool, len(m.Revealed)),
	}
	copy(c.Tiles, m.Tiles)
	copy(c.Revealed, m.Revealed)
	return c
}
