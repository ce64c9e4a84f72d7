package systems

import (
	"testing"

	"rogue-builder/components"
	"rogue-builder/config"
	"rogue-builder/generation"
	"rogue-builder/navigation"
)

func emptyLevel(t *testing.T) *generation.MapBuilder {
	t.Helper()
	cfg := config.DefaultGeneration()
	cfg.Width, cfg.Height = 20, 12
	return generation.Assemble(generation.NewEmptyArchitect(cfg), generation.NewRandom(1), cfg)
}

func TestCellAtMarkers(t *testing.T) {
	level := emptyLevel(t)
	spawn := components.Point{X: 3, Y: 3}
	spawns := map[components.Point]bool{spawn: true}

	tests := []struct {
		name string
		p    components.Point
		want rune
	}{
		{"player", level.PlayerStart, '@'},
		{"amulet", level.AmuletStart, '|'},
		{"spawn", spawn, 'm'},
		{"floor", components.Point{X: 5, Y: 8}, '.'},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CellAt(level, spawns, tc.p).Glyph; got != tc.want {
				t.Errorf("glyph = %q, want %q", got, tc.want)
			}
		})
	}

	level.PrepareLevel(0, 2)
	if got := CellAt(level, spawns, level.AmuletStart).Glyph; got != '>' {
		t.Errorf("exit glyph = %q, want '>'", got)
	}
}

func TestCellAtUsesTheme(t *testing.T) {
	level := emptyLevel(t)
	level.Theme = generation.ForestTheme
	level.Map.SetTile(components.Point{X: 1, Y: 1}, components.TileWall)

	if got := CellAt(level, nil, components.Point{X: 1, Y: 1}).Glyph; got != '"' {
		t.Errorf("forest wall glyph = %q, want '\"'", got)
	}
}

func TestFlowColor(t *testing.T) {
	near := FlowColor(0, 10)
	far := FlowColor(10, 10)
	beyond := FlowColor(50, 10)

	if near.R != 0 || near.G != 160 {
		t.Errorf("near = %+v", near)
	}
	if far.R != 200 || far.G != 0 {
		t.Errorf("far = %+v", far)
	}
	if beyond != far {
		t.Errorf("distances past the range should clamp, got %+v", beyond)
	}
}

func TestFlowRange(t *testing.T) {
	level := emptyLevel(t)
	field := navigation.Compute(level.Map, []components.Point{{X: 0, Y: 0}}, config.MaxFlowDistance)

	// Farthest corner of a 20x12 open map
	if got := FlowRange(field); got != 30 {
		t.Errorf("FlowRange = %v, want 30", got)
	}

	empty := navigation.Compute(level.Map, nil, config.MaxFlowDistance)
	if got := FlowRange(empty); got != 1 {
		t.Errorf("FlowRange without sources = %v, want 1", got)
	}
}

func TestMessageLog(t *testing.T) {
	log := NewMessageLog(3)
	for i := 0; i < 5; i++ {
		log.Add(MessageTypeNormal, "message %d", i)
	}

	if len(log.Messages) != 3 {
		t.Fatalf("kept %d messages, want 3", len(log.Messages))
	}

	recent := log.RecentMessages(10)
	want := []string{"message 4", "message 3", "message 2"}
	if len(recent) != len(want) {
		t.Fatalf("recent = %d messages, want %d", len(recent), len(want))
	}
	for i := range want {
		if recent[i].Text != want[i] {
			t.Errorf("recent[%d] = %q, want %q", i, recent[i].Text, want[i])
		}
	}
}

func TestMessageColors(t *testing.T) {
	normal := ColoredMessage{Type: MessageTypeNormal}.Color()
	alert := ColoredMessage{Type: MessageTypeAlert}.Color()
	if normal == alert {
		t.Error("alert messages should stand out from normal ones")
	}
}

func TestGlyphCell(t *testing.T) {
	col, row := GlyphCell('@')
	if col != 0 || row != 4 {
		t.Errorf("'@' at (%d,%d), want (0,4)", col, row)
	}
}
