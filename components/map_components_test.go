package components

import "testing"

func TestPointIndexRoundTrip(t *testing.T) {
	m := NewMapComponent(80, 50)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p := Point{X: x, Y: y}
			idx := m.PointToIndex(p)
			if idx != y*m.Width+x {
				t.Fatalf("PointToIndex(%v) = %d, want %d", p, idx, y*m.Width+x)
			}
			if got := m.IndexToPoint(idx); got != p {
				t.Fatalf("IndexToPoint(PointToIndex(%v)) = %v", p, got)
			}
		}
	}
}

func TestCanEnter(t *testing.T) {
	m := NewMapComponent(4, 3)
	m.SetTile(Point{1, 1}, TileFloor)
	m.SetTile(Point{2, 1}, TileExit)

	tests := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, false}, // wall
		{Point{1, 1}, true},  // floor
		{Point{2, 1}, true},  // exit
		{Point{-1, 0}, false},
		{Point{0, -1}, false},
		{Point{4, 0}, false},
		{Point{0, 3}, false},
	}
	for _, tc := range tests {
		if got := m.CanEnter(tc.p); got != tc.want {
			t.Errorf("CanEnter(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestTileAtOutOfBoundsPanics(t *testing.T) {
	m := NewMapComponent(4, 4)

	for _, p := range []Point{{-1, 0}, {4, 0}, {0, 4}, {0, -1}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("TileAt(%v) did not panic", p)
				}
			}()
			m.TileAt(p)
		}()
	}

	defer func() {
		if recover() == nil {
			t.Error("SetTile out of bounds did not panic")
		}
	}()
	m.SetTile(Point{10, 10}, TileFloor)
}

func TestIndexToPointOutOfRangePanics(t *testing.T) {
	m := NewMapComponent(3, 3)
	defer func() {
		if recover() == nil {
			t.Error("IndexToPoint(9) did not panic")
		}
	}()
	m.IndexToPoint(9)
}

func TestNeighbors(t *testing.T) {
	m := NewMapComponent(5, 5)

	tests := []struct {
		name         string
		p            Point
		wantCardinal int
		wantMoore    int
	}{
		{"interior", Point{2, 2}, 4, 8},
		{"corner", Point{0, 0}, 2, 3},
		{"edge", Point{4, 2}, 3, 5},
	}
	for _, tc := range tests {
		if got := len(m.CardinalNeighbors(tc.p)); got != tc.wantCardinal {
			t.Errorf("%s: CardinalNeighbors = %d, want %d", tc.name, got, tc.wantCardinal)
		}
		if got := len(m.MooreNeighbors(tc.p)); got != tc.wantMoore {
			t.Errorf("%s: MooreNeighbors = %d, want %d", tc.name, got, tc.wantMoore)
		}
	}

	got := m.CardinalNeighbors(Point{2, 2})
	want := []Point{{1, 2}, {3, 2}, {2, 1}, {2, 3}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CardinalNeighbors order[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFillCountAndClone(t *testing.T) {
	m := NewMapComponent(6, 4)
	if got := m.Count(TileWall); got != 24 {
		t.Fatalf("new map walls = %d, want 24", got)
	}

	m.Fill(TileFloor)
	m.SetTile(Point{0, 0}, TileWall)

	c := m.Clone()
	c.SetTile(Point{1, 0}, TileWall)

	if got := m.Count(TileWall); got != 1 {
		t.Errorf("original walls = %d, want 1", got)
	}
	if got := c.Count(TileWall); got != 2 {
		t.Errorf("clone walls = %d, want 2", got)
	}
}

func TestReveal(t *testing.T) {
	m := NewMapComponent(3, 3)
	p := Point{1, 2}
	if m.IsRevealed(p) {
		t.Fatal("fresh map should be hidden")
	}
	m.Reveal(p)
	if !m.IsRevealed(p) {
		t.Error("Reveal did not uncover tile")
	}
	m.RevealAll()
	if !m.IsRevealed(Point{0, 0}) {
		t.Error("RevealAll left tile hidden")
	}
}

func TestRect(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	if r.Center() != (Point{4, 4}) {
		t.Errorf("Center = %v, want {4 4}", r.Center())
	}
	if got := len(r.Points()); got != 8 {
		t.Errorf("Points = %d, want 8", got)
	}
	if !r.Contains(Point{5, 4}) || r.Contains(Point{6, 4}) {
		t.Error("Contains should treat X2 as exclusive")
	}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", NewRect(4, 4, 3, 3), true},
		{"touching", NewRect(6, 3, 2, 2), true},
		{"apart", NewRect(10, 10, 2, 2), false},
	}
	for _, tc := range tests {
		if got := r.Intersect(tc.other); got != tc.want {
			t.Errorf("%s: Intersect = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPointDistance(t *testing.T) {
	if d := (Point{0, 0}).DistanceTo(Point{3, 4}); d != 5 {
		t.Errorf("DistanceTo = %v, want 5", d)
	}
}

func TestMapTransition(t *testing.T) {
	tr := NewMapTransitionComponent(TransitionAmulet, 2, Point{5, 5})
	if !tr.IsFinal() {
		t.Error("amulet transition should be final")
	}
	if NewMapTransitionComponent(TransitionStairsDown, 0, Point{}).IsFinal() {
		t.Error("stairs transition should not be final")
	}
}
