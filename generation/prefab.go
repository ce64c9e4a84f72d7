package generation

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"rogue-builder/components"
	"rogue-builder/config"
	"rogue-builder/logger"
	"rogue-builder/navigation"
)

// Prefab legend
const (
	PrefabWall   = '#'
	PrefabFloor  = '-'
	PrefabSpawn  = 'M' // Floor plus a monster spawn point
	PrefabPlayer = '@' // Floor plus the player start
)

var (
	// ErrUnsupportedPrefabSymbol means a prefab uses a character outside the legend
	ErrUnsupportedPrefabSymbol = errors.New("unsupported prefab symbol")
	// ErrRaggedPrefab means prefab rows differ in width
	ErrRaggedPrefab = errors.New("prefab rows differ in width")
	// ErrEmptyPrefab means a prefab has no rows
	ErrEmptyPrefab = errors.New("prefab is empty")
)

// FortressName identifies the built-in fortress prefab
const FortressName = "fortress"

//go:embed prefabs/fortress.txt
var fortressLayout string

// Prefab is a hand-authored block stamped onto a generated map
type Prefab struct {
	Name   string
	Width  int
	Height int
	cells  []rune // Row-major, Width*Height
}

// Fortress parses the embedded fortress layout
func Fortress() (*Prefab, error) {
	return ParsePrefab(FortressName, fortressLayout)
}

// ParsePrefab reads a textual layout. Blank lines are ignored and every other
// line is one row; all rows must share the same width and use only legend symbols.
func ParsePrefab(name, layout string) (*Prefab, error) {
	var rows [][]rune
	for _, line := range strings.Split(layout, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, []rune(line))
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("prefab %q: %w", name, ErrEmptyPrefab)
	}

	p := &Prefab{
		Name:   name,
		Width:  len(rows[0]),
		Height: len(rows),
		cells:  make([]rune, 0, len(rows[0])*len(rows)),
	}

	for y, row := range rows {
		if len(row) != p.Width {
			return nil, fmt.Errorf("prefab %q row %d has width %d, want %d: %w", name, y, len(row), p.Width, ErrRaggedPrefab)
		}
		for x, c := range row {
			switch c {
			case PrefabWall, PrefabFloor, PrefabSpawn, PrefabPlayer:
			default:
				return nil, fmt.Errorf("prefab %q cell (%d,%d) %q: %w", name, x, y, c, ErrUnsupportedPrefabSymbol)
			}
		}
		p.cells = append(p.cells, row...)
	}

	return p, nil
}

// At returns the legend symbol at prefab-local coordinates
func (p *Prefab) At(x, y int) rune {
	return p.cells[y*p.Width+x]
}

// Count returns how many cells use symbol
func (p *Prefab) Count(symbol rune) int {
	n := 0
	for _, c := range p.cells {
		if c == symbol {
			n++
		}
	}
	return n
}

// ApplyPrefab looks for a spot far enough from the player and stamps the prefab there.
//
// A candidate rectangle is accepted when one of its cells lies strictly between
// PrefabMinDistance and the flow horizon from the player start, and the rectangle covers
// neither the amulet nor the player start. After PrefabAttempts rejected candidates the overlay is skipped.
// Random stream: Range(0, W-w), Range(0, H-h) per attempt.
// Returns whether the prefab was placed.
func ApplyPrefab(mb *MapBuilder, prefab *Prefab, rng RandomSource, cfg config.Generation) bool {
	log := logger.WithComponent("generation").WithField("prefab", prefab.Name)
	mapComp := mb.Map

	if prefab.Width >= mapComp.Width || prefab.Height >= mapComp.Height {
		log.Debug("Prefab larger than map, skipping")
		return false
	}

	field := navigation.Compute(mapComp, []components.Point{mb.PlayerStart}, cfg.MaxFlowDistance)

	var placement *components.Rect
	attempts := 0
	for placement == nil && attempts < cfg.PrefabAttempts {
		attempts++

		dimensions := components.NewRect(
			rng.Range(0, mapComp.Width-prefab.Width),
			rng.Range(0, mapComp.Height-prefab.Height),
			prefab.Width,
			prefab.Height,
		)

		if dimensions.Contains(mb.AmuletStart) || dimensions.Contains(mb.PlayerStart) {
			continue
		}

		for _, pt := range dimensions.Points() {
			dist := field.DistanceAt(pt)
			if dist < cfg.MaxFlowDistance && dist > cfg.PrefabMinDistance {
				placement = &dimensions
				break
			}
		}
	}

	if placement == nil {
		log.WithField("attempts", attempts).Debug("No valid prefab placement found, skipping")
		return false
	}

	covered := mapset.New[components.Point]()
	for _, pt := range placement.Points() {
		covered.Put(pt)
	}
	kept := mb.MonsterSpawns[:0]
	for _, pt := range mb.MonsterSpawns {
		if !covered.Has(pt) {
			kept = append(kept, pt)
		}
	}
	mb.MonsterSpawns = kept

	for y := 0; y < prefab.Height; y++ {
		for x := 0; x < prefab.Width; x++ {
			pt := components.Point{X: placement.X1 + x, Y: placement.Y1 + y}
			switch prefab.At(x, y) {
			case PrefabWall:
				mapComp.SetTile(pt, components.TileWall)
			case PrefabFloor:
				mapComp.SetTile(pt, components.TileFloor)
			case PrefabSpawn:
				mapComp.SetTile(pt, components.TileFloor)
				mb.MonsterSpawns = append(mb.MonsterSpawns, pt)
			case PrefabPlayer:
				mapComp.SetTile(pt, components.TileFloor)
				mb.PlayerStart = pt
			}
		}
	}

	log.WithFields(logrus.Fields{
		"x":        placement.X1,
		"y":        placement.Y1,
		"attempts": attempts,
	}).Debug("Prefab placed")

	return true
}
