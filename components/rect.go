package components

// Rect is an axis-aligned rectangle. X2 and Y2 are exclusive when iterating cells.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRect creates a rectangle from its top-left corner and size
func NewRect(x, y, width, height int) Rect {
	return Rect{X1: x, Y1: y, X2: x + width, Y2: y + height}
}

// Width returns the number of columns covered
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns the number of rows covered
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}

// Center returns the middle cell of the rectangle
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Intersect reports whether two rectangles overlap or touch
func (r Rect) Intersect(o Rect) bool {
	return r.X1 <= o.X2 && r.X2 >= o.X1 && r.Y1 <= o.Y2 && r.Y2 >= o.Y1
}

// Contains reports whether p is one of the rectangle's cells
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X1 && p.X < r.X2 && p.Y >= r.Y1 && p.Y < r.Y2
}

// Points returns every cell of the rectangle in row-major order
func (r Rect) Points() []Point {
	if r.X2 <= r.X1 || r.Y2 <= r.Y1 {
		return nil
	}
	out := make([]Point, 0, r.Width()*r.Height())
	for y := r.Y1; y < r.Y2; y++ {
		for x := r.X1; x < r.X2; x++ {
			out = append(out, Point{X: x, Y: y})
		}
	}
	return out
}
