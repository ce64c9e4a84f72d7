package generation

import (
	"image/color"

	"rogue-builder/components"
)

// MapTheme maps tile types to how they are drawn. It carries no gameplay meaning.
type MapTheme interface {
	Name() string
	TileToRender(tile components.TileType) components.TileDefinition
}

var (
	black     = color.RGBA{0, 0, 0, 255}
	white     = color.RGBA{255, 255, 255, 255}
	stone     = color.RGBA{128, 128, 128, 255}
	darkStone = color.RGBA{64, 64, 64, 255}
	leaf      = color.RGBA{34, 139, 34, 255}
	moss      = color.RGBA{107, 142, 35, 255}
	soil      = color.RGBA{40, 26, 13, 255}
	magenta   = color.RGBA{255, 0, 255, 255} // Undefined tiles
)

// ThemeDefinition is a fixed tile to glyph table
type ThemeDefinition struct {
	ID          string
	Definitions map[components.TileType]components.TileDefinition
}

// Name returns the theme ID
func (t *ThemeDefinition) Name() string {
	return t.ID
}

// TileToRender returns the visual definition for a tile type
func (t *ThemeDefinition) TileToRender(tile components.TileType) components.TileDefinition {
	if def, exists := t.Definitions[tile]; exists {
		return def
	}
	return components.NewTileDefinition('?', magenta, black)
}

// DungeonTheme draws stone walls and flagstone floors
var DungeonTheme MapTheme = &ThemeDefinition{
	ID: "dungeon",
	Definitions: map[components.TileType]components.TileDefinition{
		components.TileWall:  components.NewTileDefinition('#', stone, black),
		components.TileFloor: components.NewTileDefinition('.', darkStone, black),
		components.TileExit:  components.NewTileDefinition('>', white, black),
	},
}

// ForestTheme draws trees for walls and undergrowth for floors
var ForestTheme MapTheme = &ThemeDefinition{
	ID: "forest",
	Definitions: map[components.TileType]components.TileDefinition{
		components.TileWall:  components.NewTileDefinition('"', leaf, soil),
		components.TileFloor: components.NewTileDefinition(';', moss, soil),
		components.TileExit:  components.NewTileDefinition('>', white, soil),
	},
}

// RandomTheme picks one of the two themes with a single Range(0, 2) call
func RandomTheme(rng RandomSource) MapTheme {
	if rng.Range(0, 2) == 0 {
		return DungeonTheme
	}
	return ForestTheme
}
