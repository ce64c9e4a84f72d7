package generation

import (
	"errors"
	"strings"
	"testing"

	"rogue-builder/components"
	"rogue-builder/config"
	"rogue-builder/navigation"
)

func TestRandomArchitect(t *testing.T) {
	cfg := config.DefaultGeneration()
	tests := []struct {
		roll int
		want string
	}{
		{0, "drunkards_walk"},
		{1, "rooms"},
		{2, "cellular_automata"},
	}
	for _, tc := range tests {
		if got := RandomArchitect(newScriptedRandom(t, tc.roll), cfg).Name(); got != tc.want {
			t.Errorf("roll %d picked %q, want %q", tc.roll, got, tc.want)
		}
	}
}

func TestArchitectByName(t *testing.T) {
	cfg := config.DefaultGeneration()
	for _, name := range []string{"drunkards_walk", "rooms", "cellular_automata", "bsp", "empty"} {
		arch, err := ArchitectByName(name, cfg)
		if err != nil {
			t.Fatalf("ArchitectByName(%q): %v", name, err)
		}
		if arch.Name() != name {
			t.Errorf("ArchitectByName(%q) returned %q", name, arch.Name())
		}
	}

	if _, err := ArchitectByName("maze", cfg); !errors.Is(err, ErrUnknownArchitect) {
		t.Errorf("unknown name error = %v, want ErrUnknownArchitect", err)
	}
}

func TestRandomTheme(t *testing.T) {
	if got := RandomTheme(newScriptedRandom(t, 0)); got != DungeonTheme {
		t.Errorf("roll 0 picked %q, want dungeon", got.Name())
	}
	if got := RandomTheme(newScriptedRandom(t, 1)); got != ForestTheme {
		t.Errorf("roll 1 picked %q, want forest", got.Name())
	}
}

func TestThemeGlyphs(t *testing.T) {
	tests := []struct {
		theme MapTheme
		tile  components.TileType
		want  rune
	}{
		{DungeonTheme, components.TileWall, '#'},
		{DungeonTheme, components.TileFloor, '.'},
		{DungeonTheme, components.TileExit, '>'},
		{ForestTheme, components.TileWall, '"'},
		{ForestTheme, components.TileFloor, ';'},
		{ForestTheme, components.TileExit, '>'},
		{DungeonTheme, components.TileType(99), '?'},
	}
	for _, tc := range tests {
		if got := tc.theme.TileToRender(tc.tile).Glyph; got != tc.want {
			t.Errorf("%s %v = %q, want %q", tc.theme.Name(), tc.tile, got, tc.want)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	cfg := config.DefaultGeneration()
	for _, seed := range testSeeds {
		a, err := Build(NewRandom(seed), cfg)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		b, err := Build(NewRandom(seed), cfg)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}

		if a.Architect != b.Architect || a.Theme != b.Theme {
			t.Errorf("seed %d: %s/%s vs %s/%s", seed, a.Architect, a.Theme.Name(), b.Architect, b.Theme.Name())
		}
		if strings.Join(a.Render(), "\n") != strings.Join(b.Render(), "\n") {
			t.Errorf("seed %d: maps differ", seed)
		}
		if len(a.MonsterSpawns) != len(b.MonsterSpawns) {
			t.Errorf("seed %d: spawn counts differ", seed)
		}
	}
}

func TestBuildWithEveryArchitect(t *testing.T) {
	cfg := config.DefaultGeneration()
	architects := []MapArchitect{
		NewEmptyArchitect(cfg),
		NewRoomsArchitect(cfg),
		NewCellularAutomataArchitect(cfg),
		NewDrunkardsWalkArchitect(cfg),
		NewBSPArchitect(cfg),
	}

	for _, arch := range architects {
		t.Run(arch.Name(), func(t *testing.T) {
			for _, seed := range testSeeds[:3] {
				mb, err := BuildWith(arch, NewRandom(seed), cfg)
				if err != nil {
					t.Fatalf("BuildWith: %v", err)
				}
				checkLevel(t, mb, cfg)
				if mb.Architect != arch.Name() {
					t.Errorf("architect = %q, want %q", mb.Architect, arch.Name())
				}
			}
		})
	}
}

func checkLevel(t *testing.T, mb *MapBuilder, cfg config.Generation) {
	t.Helper()

	if mb.Map.Width != cfg.Width || mb.Map.Height != cfg.Height {
		t.Fatalf("map is %dx%d", mb.Map.Width, mb.Map.Height)
	}
	if mb.Map.TileAt(mb.PlayerStart) != components.TileFloor {
		t.Errorf("start %v is not floor", mb.PlayerStart)
	}
	if mb.Map.TileAt(mb.AmuletStart) != components.TileFloor {
		t.Errorf("amulet %v is not floor", mb.AmuletStart)
	}

	field := navigation.Compute(mb.Map, []components.Point{mb.PlayerStart}, cfg.MaxFlowDistance)
	if field.DistanceAt(mb.AmuletStart) >= navigation.Unreachable {
		t.Errorf("amulet %v is unreachable", mb.AmuletStart)
	}

	seen := map[components.Point]bool{}
	for _, p := range mb.MonsterSpawns {
		if seen[p] {
			t.Errorf("duplicate spawn %v", p)
		}
		seen[p] = true
		if mb.Map.TileAt(p) != components.TileFloor {
			t.Errorf("spawn %v is not floor", p)
		}
	}

	if mb.Theme != DungeonTheme && mb.Theme != ForestTheme {
		t.Errorf("unexpected theme %v", mb.Theme)
	}
}

func TestPrepareLevel(t *testing.T) {
	cfg := config.DefaultGeneration()

	t.Run("intermediate level gets an exit", func(t *testing.T) {
		mb := emptyLevel(t, cfg)
		tr := mb.PrepareLevel(1, cfg.FinalLevel)

		if tr.TransitionType != components.TransitionStairsDown || tr.IsFinal() {
			t.Errorf("transition = %+v, want stairs down", tr)
		}
		if tr.Destination != mb.AmuletStart || tr.Level != 1 {
			t.Errorf("transition = %+v", tr)
		}
		if mb.Map.TileAt(mb.AmuletStart) != components.TileExit {
			t.Error("amulet tile was not turned into an exit")
		}
	})

	t.Run("final level keeps the amulet", func(t *testing.T) {
		mb := emptyLevel(t, cfg)
		tr := mb.PrepareLevel(cfg.FinalLevel, cfg.FinalLevel)

		if tr.TransitionType != components.TransitionAmulet || !tr.IsFinal() {
			t.Errorf("transition = %+v, want amulet", tr)
		}
		if mb.Map.Count(components.TileExit) != 0 {
			t.Error("final level should not have an exit")
		}
	})
}

func TestRender(t *testing.T) {
	cfg := config.DefaultGeneration()
	mb := emptyLevel(t, cfg)

	rows := mb.Render()
	if len(rows) != cfg.Height || len([]rune(rows[0])) != cfg.Width {
		t.Fatalf("render is %dx%d", len([]rune(rows[0])), len(rows))
	}
	if rows[0][0] != '|' {
		t.Errorf("amulet glyph = %q, want '|'", rows[0][0])
	}
	if rows[25][40] != '@' {
		t.Errorf("player glyph = %q, want '@'", rows[25][40])
	}
	if rows[10][10] != '.' {
		t.Errorf("floor glyph = %q, want '.'", rows[10][10])
	}

	mb.PrepareLevel(0, cfg.FinalLevel)
	if got := mb.Render()[0][0]; got != '>' {
		t.Errorf("exit glyph = %q, want '>'", got)
	}

	mb.Theme = ForestTheme
	if got := mb.Render()[10][10]; got != ';' {
		t.Errorf("forest floor glyph = %q, want ';'", got)
	}
}
