package generation

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"rogue-builder/components"
	"rogue-builder/config"
	"rogue-builder/logger"
)

// MapBuilder is the finished level handed to the rest of the game
type MapBuilder struct {
	Map           *components.MapComponent
	PlayerStart   components.Point
	AmuletStart   components.Point   // Farthest reachable floor tile from the player start
	MonsterSpawns []components.Point // Ordered spawn points
	Theme         MapTheme
	Rooms         []components.Rect // Only filled by room-based architects
	Architect     string            // Name of the architect that laid out the map
}

// RandomArchitect picks one of the three production architects with a single Range(0, 3) call
func RandomArchitect(rng RandomSource, cfg config.Generation) MapArchitect {
	switch rng.Range(0, 3) {
	case 0:
		return NewDrunkardsWalkArchitect(cfg)
	case 1:
		return NewRoomsArchitect(cfg)
	default:
		return NewCellularAutomataArchitect(cfg)
	}
}

// ErrUnknownArchitect is returned by ArchitectByName for names no architect answers to
var ErrUnknownArchitect = errors.New("unknown architect")

// ArchitectByName returns the architect with the given name, including those outside the random rotation
func ArchitectByName(name string, cfg config.Generation) (MapArchitect, error) {
	architects := []MapArchitect{
		NewDrunkardsWalkArchitect(cfg),
		NewRoomsArchitect(cfg),
		NewCellularAutomataArchitect(cfg),
		NewBSPArchitect(cfg),
		NewEmptyArchitect(cfg),
	}
	for _, architect := range architects {
		if architect.Name() == name {
			return architect, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownArchitect, name)
}

// Build generates a complete level with a randomly chosen architect.
// The only error is a broken embedded prefab, which is a packaging bug.
func Build(rng RandomSource, cfg config.Generation) (*MapBuilder, error) {
	return BuildWith(RandomArchitect(rng, cfg), rng, cfg)
}

// BuildWith generates a complete level with the given architect:
// layout, amulet, monster spawns, fortress overlay and finally the theme.
func BuildWith(architect MapArchitect, rng RandomSource, cfg config.Generation) (*MapBuilder, error) {
	fortress, err := Fortress()
	if err != nil {
		return nil, fmt.Errorf("failed to load prefab: %w", err)
	}

	mb := Assemble(architect, rng, cfg)
	placed := ApplyPrefab(mb, fortress, rng, cfg)
	mb.Theme = RandomTheme(rng)

	logger.WithComponent("generation").WithFields(logrus.Fields{
		"architect": mb.Architect,
		"theme":     mb.Theme.Name(),
		"spawns":    len(mb.MonsterSpawns),
		"prefab":    placed,
		"start":     mb.PlayerStart,
		"amulet":    mb.AmuletStart,
	}).Info("Generated level")

	return mb, nil
}

// Assemble runs the architect and derives the amulet location and monster spawns.
// The map is left without prefab or theme; the default theme is set so the result is drawable.
func Assemble(architect MapArchitect, rng RandomSource, cfg config.Generation) *MapBuilder {
	layout := architect.Build(rng)

	mb := &MapBuilder{
		Map:         layout.Map,
		PlayerStart: layout.PlayerStart,
		Rooms:       layout.Rooms,
		Theme:       DungeonTheme,
		Architect:   architect.Name(),
	}

	mb.AmuletStart = FindMostDistant(mb.Map, mb.PlayerStart, cfg.MaxFlowDistance)

	switch {
	case len(layout.SpawnCandidates) > 0:
		mb.MonsterSpawns = append([]components.Point(nil), layout.SpawnCandidates...)
	case layout.SampleSpawns:
		mb.MonsterSpawns = SampleSpawns(mb.Map, mb.PlayerStart, SpawnOptions{
			Count:       cfg.NumMonsters,
			MinDistance: cfg.MinSpawnDistance,
		}, rng)
	}

	return mb
}

// PrepareLevel marks how the level is left. Before the final level the amulet tile
// becomes an exit; on the final level the tile stays floor and the amulet item goes there.
func (mb *MapBuilder) PrepareLevel(level, finalLevel int) *components.MapTransitionComponent {
	if level >= finalLevel {
		return components.NewMapTransitionComponent(components.TransitionAmulet, level, mb.AmuletStart)
	}

	mb.Map.SetTile(mb.AmuletStart, components.TileExit)
	return components.NewMapTransitionComponent(components.TransitionStairsDown, level, mb.AmuletStart)
}

// Render returns the themed glyph grid, one string per row.
// The player start is drawn as '@' and the amulet, unless already an exit, as '|'.
func (mb *MapBuilder) Render() []string {
	rows := make([]string, mb.Map.Height)
	line := make([]rune, mb.Map.Width)
	for y := 0; y < mb.Map.Height; y++ {
		for x := 0; x < mb.Map.Width; x++ {
			p := components.Point{X: x, Y: y}
			tile := mb.Map.TileAt(p)
			switch {
			case p == mb.PlayerStart:
				line[x] = '@'
			case p == mb.AmuletStart && tile != components.TileExit:
				line[x] = '|'
			default:
				line[x] = mb.Theme.TileToRender(tile).Glyph
			}
		}
		rows[y] = string(line)
	}
	return rows
}
