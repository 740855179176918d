package geometry

import (
	"fmt"
	"iter"
)

// Bounds is an axis-aligned rectangle of valid coordinates.
// A Bounds with zero width or height is the empty region: it contains no
// point and is the identity element of Union.
type Bounds struct {
	Top, Left     int
	Width, Height int
}

// FromSize returns a width×height region anchored at (0,0).
// It panics on negative sizes.
func FromSize(width, height int) Bounds {
	if width < 0 || height < 0 {
		panic(panicNegativeSize)
	}
	return Bounds{Width: width, Height: height}
}

// BoundsOf returns the 1×1 region holding only p.
func BoundsOf(p Point) Bounds {
	return Bounds{Top: p.Y, Left: p.X, Width: 1, Height: 1}
}

// FromCorners returns the smallest region containing both a and b.
func FromCorners(a, b Point) Bounds {
	return BoundsOf(a).Union(BoundsOf(b))
}

// IsEmpty reports whether the region has no area.
func (b Bounds) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Area is Width×Height, or 0 for an empty region.
func (b Bounds) Area() int {
	if b.IsEmpty() {
		return 0
	}
	return b.Width * b.Height
}

// Right is the largest valid X (Left+Width-1).
func (b Bounds) Right() int {
	return b.Left + b.Width - 1
}

// Bottom is the largest valid Y (Top+Height-1).
func (b Bounds) Bottom() int {
	return b.Top + b.Height - 1
}

// TopLeft returns (Left, Top).
func (b Bounds) TopLeft() Point {
	return Point{X: b.Left, Y: b.Top}
}

// BottomRight returns (Right, Bottom).
func (b Bounds) BottomRight() Point {
	return Point{X: b.Right(), Y: b.Bottom()}
}

// Contains reports whether p lies inside the region.
// Complexity: O(1).
func (b Bounds) Contains(p Point) bool {
	return !b.IsEmpty() &&
		p.X >= b.Left && p.X <= b.Right() &&
		p.Y >= b.Top && p.Y <= b.Bottom()
}

// X yields the column coordinates Left..Right in ascending order.
func (b Bounds) X() iter.Seq[int] {
	return span(b.Left, b.Width)
}

// Y yields the row coordinates Top..Bottom in ascending order.
func (b Bounds) Y() iter.Seq[int] {
	return span(b.Top, b.Height)
}

// Points yields every point of the region in row-major order.
func (b Bounds) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if b.IsEmpty() {
			return
		}
		for y := b.Top; y <= b.Bottom(); y++ {
			for x := b.Left; x <= b.Right(); x++ {
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Union returns the smallest region containing both b and o.
// The empty region is ignored, so Union never shrinks a non-empty input.
func (b Bounds) Union(o Bounds) Bounds {
	switch {
	case o.IsEmpty():
		return b
	case b.IsEmpty():
		return o
	}
	left, top := min(b.Left, o.Left), min(b.Top, o.Top)
	right, bottom := max(b.Right(), o.Right()), max(b.Bottom(), o.Bottom())
	return Bounds{Top: top, Left: left, Width: right - left + 1, Height: bottom - top + 1}
}

// Extend returns b grown to include p; it is b itself when p is already inside.
func (b Bounds) Extend(p Point) Bounds {
	if b.Contains(p) {
		return b
	}
	return b.Union(BoundsOf(p))
}

// String formats the region as "[left,top wxh]".
func (b Bounds) String() string {
	return fmt.Sprintf("[%d,%d %dx%d]", b.Left, b.Top, b.Width, b.Height)
}

func span(from, n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(from + i) {
				return
			}
		}
	}
}
