package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"rogue-builder/components"
	"rogue-builder/generation"
	"rogue-builder/navigation"
)

var (
	playerColor = color.RGBA{255, 255, 0, 255}
	amuletColor = color.RGBA{218, 165, 32, 255}
	spawnColor  = color.RGBA{220, 40, 40, 255}
	background  = color.RGBA{0, 0, 0, 255}
)

// Cell is what one map position looks like on screen
type Cell struct {
	Glyph rune
	FG    color.Color
	BG    color.Color
}

// RenderSystem draws a generated level and the status bar
type RenderSystem struct {
	tileset  *Tileset // Nil draws flat blocks instead of glyphs
	tileSize int
	spawns   map[components.Point]bool
	ShowFlow bool
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(tileset *Tileset, tileSize int) *RenderSystem {
	return &RenderSystem{
		tileset:  tileset,
		tileSize: tileSize,
	}
}

// SetLevel caches per-level lookups; call it whenever a new level is shown
func (s *RenderSystem) SetLevel(level *generation.MapBuilder) {
	s.spawns = make(map[components.Point]bool, len(level.MonsterSpawns))
	for _, p := range level.MonsterSpawns {
		s.spawns[p] = true
	}
}

// ToggleFlow switches the distance overlay on or off
func (s *RenderSystem) ToggleFlow() {
	s.ShowFlow = !s.ShowFlow
}

// CellAt resolves the glyph and colours for a map position.
// Markers win over terrain: player, then amulet, then spawns. An amulet tile that became the exit keeps its exit glyph.
func CellAt(level *generation.MapBuilder, spawns map[components.Point]bool, p components.Point) Cell {
	tile := level.Map.TileAt(p)
	def := level.Theme.TileToRender(tile)
	cell := Cell{Glyph: def.Glyph, FG: def.FG, BG: def.BG}

	switch {
	case p == level.PlayerStart:
		cell.Glyph, cell.FG = '@', playerColor
	case p == level.AmuletStart:
		if tile != components.TileExit {
			cell.Glyph, cell.FG = '|', amuletColor
		}
	case spawns[p]:
		cell.Glyph, cell.FG = 'm', spawnColor
	}
	return cell
}

// FlowRange returns the largest finite distance in the field, at least 1
func FlowRange(field *navigation.FlowMap) float64 {
	longest := 1.0
	for _, d := range field.Distances {
		if d != navigation.Unreachable && d > longest {
			longest = d
		}
	}
	return longest
}

// FlowColor shades a distance from green (near) to red (far)
func FlowColor(dist, longest float64) color.RGBA {
	t := dist / longest
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return color.RGBA{
		R: uint8(t * 200),
		G: uint8((1 - t) * 160),
		B: 40,
		A: 255,
	}
}

// Draw renders the level, optionally over its flow field, and the newest messages
func (s *RenderSystem) Draw(screen *ebiten.Image, level *generation.MapBuilder, field *navigation.FlowMap, log *MessageLog) {
	screen.Fill(background)

	s.drawMap(screen, level, field)
	s.drawMessages(screen, level.Map.Height, log)
}

func (s *RenderSystem) drawMap(screen *ebiten.Image, level *generation.MapBuilder, field *navigation.FlowMap) {
	longest := 1.0
	overlay := s.ShowFlow && field != nil
	if overlay {
		longest = FlowRange(field)
	}

	size := float32(s.tileSize)
	for idx := range level.Map.Tiles {
		p := level.Map.IndexToPoint(idx)
		cell := CellAt(level, s.spawns, p)

		if overlay && field.Reachable(idx) {
			cell.BG = FlowColor(field.Distances[idx], longest)
		}

		px, py := float32(p.X)*size, float32(p.Y)*size
		vector.DrawFilledRect(screen, px, py, size, size, cell.BG, false)

		if s.tileset != nil {
			s.tileset.DrawTile(screen, cell.Glyph, p.X, p.Y, cell.FG)
			continue
		}

		// Without a sprite sheet walls fill the cell and everything else is a centered block
		if level.Map.Tiles[idx] == components.TileWall && cell.Glyph == level.Theme.TileToRender(components.TileWall).Glyph {
			vector.DrawFilledRect(screen, px+1, py+1, size-2, size-2, cell.FG, false)
		} else {
			inset := size / 3
			vector.DrawFilledRect(screen, px+inset, py+inset, size-2*inset, size-2*inset, cell.FG, false)
		}
	}
}

func (s *RenderSystem) drawMessages(screen *ebiten.Image, mapHeight int, log *MessageLog) {
	if log == nil {
		return
	}

	top := mapHeight * s.tileSize
	for i, msg := range log.RecentMessages(2) {
		if s.tileset != nil {
			s.tileset.DrawString(screen, msg.Text, 0, mapHeight+1+i, msg.Color())
			continue
		}
		ebitenutil.DebugPrintAt(screen, msg.Text, 4, top+2+i*16)
	}
}
