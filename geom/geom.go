// Package geom provides the 2D points and axis-aligned rectangles used to
// address cell grids. Coordinates are signed, extents are kept non-negative.
package geom

// Point is a position in cell or pixel space, depending on context.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle with a signed origin and a non-negative
// extent. A zero width or height denotes an empty area and is valid.
type Rect struct {
	X, Y int
	W, H int
}

// Rct is shorthand for Rect{X: x, Y: y, W: w, H: h}.
func Rct(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromPoints returns the smallest rectangle containing both points. The
// points may be given in any order; coincident or axis-aligned points yield
// a zero width or height.
func RectFromPoints(p1, p2 Point) Rect {
	return Rect{
		X: min(p1.X, p2.X),
		Y: min(p1.Y, p2.Y),
		W: abs(p1.X - p2.X),
		H: abs(p1.Y - p2.Y),
	}
}

// RectFromPointAndSize returns the rectangle with top-left corner p and the
// given extents.
func RectFromPointAndSize(p Point, w, h int) Rect {
	return Rect{X: p.X, Y: p.Y, W: w, H: h}
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	return Rect{
		X: x,
		Y: y,
		W: max(r.X+r.W, other.X+other.W) - x,
		H: max(r.Y+r.H, other.Y+other.H) - y,
	}
}

// Intersect returns the largest rectangle contained in both r and other.
// Disjoint inputs produce an empty rectangle with zero extents.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	return Rect{
		X: x,
		Y: y,
		W: max(min(r.X+r.W, other.X+other.W)-x, 0),
		H: max(min(r.Y+r.H, other.Y+other.H)-y, 0),
	}
}

// ClipWithin clips r against the rectangle at the origin with the given
// extents. It returns the clipped rectangle and the offset of its top-left
// corner within r's own local space, which callers use to skip the
// clipped-away leading rows and columns of a source buffer.
func (r Rect) ClipWithin(width, height int) (Rect, Point) {
	clipped := r.Intersect(Rect{X: 0, Y: 0, W: width, H: height})
	return clipped, Point{X: -min(r.X, 0), Y: -min(r.Y, 0)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
