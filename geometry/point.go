package geometry

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Point is an integer coordinate. Coordinates are signed so that arithmetic
// may step outside any region before a Bounds check clips it.
type Point struct {
	X, Y int
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p offset by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Translate moves p by distance unit steps in direction d.
// No bounds check is performed. A negative distance moves backwards.
func (p Point) Translate(d Direction, distance int) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx*distance, Y: p.Y + dy*distance}
}

// Step is Translate(d, 1).
func (p Point) Step(d Direction) Point {
	return p.Translate(d, 1)
}

// ManhattanDistance returns |Δx| + |Δy|.
func (p Point) ManhattanDistance(q Point) int {
	return Abs(p.X-q.X) + Abs(p.Y-q.Y)
}

// Around returns the single-step neighbours of p for every direction in g,
// in group declaration order.
func (p Point) Around(g Group) []Point {
	dirs := g.expand()
	out := make([]Point, 0, len(dirs))
	for _, d := range dirs {
		out = append(out, p.Step(d))
	}
	return out
}

// WithinManhattanDistance returns every point q with ManhattanDistance(p, q) ≤ r,
// p included, each exactly once. Points are ordered by row (Y ascending) and
// then by column (X ascending). A negative radius yields nil.
//
// Complexity: O(r²); the result holds 2r²+2r+1 points.
func (p Point) WithinManhattanDistance(r int) []Point {
	if r < 0 {
		return nil
	}
	out := make([]Point, 0, 2*r*r+2*r+1)
	for dy := -r; dy <= r; dy++ {
		span := r - Abs(dy)
		for dx := -span; dx <= span; dx++ {
			out = append(out, Point{X: p.X + dx, Y: p.Y + dy})
		}
	}
	return out
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Abs returns the absolute value of a signed integer.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
