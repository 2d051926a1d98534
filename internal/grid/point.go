// Package grid provides the integer coordinate type shared by every field.
package grid

import "fmt"

// Point is an integer cell coordinate. X grows to the east, Y grows with
// latitude.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Cardinal returns the four edge-adjacent neighbours in W, N, E, S order.
func (p Point) Cardinal() [4]Point {
	return [4]Point{
		{p.X - 1, p.Y},
		{p.X, p.Y - 1},
		{p.X + 1, p.Y},
		{p.X, p.Y + 1},
	}
}

// Diagonal returns the four corner-adjacent neighbours.
func (p Point) Diagonal() [4]Point {
	return [4]Point{
		{p.X - 1, p.Y - 1},
		{p.X + 1, p.Y - 1},
		{p.X + 1, p.Y + 1},
		{p.X - 1, p.Y + 1},
	}
}

// Neighbours4 returns the cardinal neighbours as a slice.
func (p Point) Neighbours4() []Point {
	c := p.Cardinal()
	return c[:]
}

// Neighbours8 returns the cardinal neighbours followed by the diagonal ones.
func (p Point) Neighbours8() []Point {
	c, d := p.Cardinal(), p.Diagonal()
	out := make([]Point, 0, 8)
	out = append(out, c[:]...)
	return append(out, d[:]...)
}

// InBounds reports whether p lies in the half-open rectangle
// [minX, maxX) x [minY, maxY).
func (p Point) InBounds(minX, minY, maxX, maxY int) bool {
	return p.X >= minX && p.X < maxX && p.Y >= minY && p.Y < maxY
}

// InSquare reports whether p lies inside an n x n grid anchored at the origin.
func (p Point) InSquare(n int) bool { return p.InBounds(0, 0, n, n) }

// Index returns the row-major slice index of p in a grid of the given width.
func (p Point) Index(width int) int { return p.Y*width + p.X }

// FromIndex is the inverse of Index.
func FromIndex(i, width int) Point { return Point{X: i % width, Y: i / width} }

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }
