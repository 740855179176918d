// SPDX-License-Identifier: MIT

package grid

import (
	"maps"
	"slices"

	"github.com/katalvlaran/gridkit/geometry"
)

// Grid is a mapping from points to values over a rectangular region.
//
// Invariants:
//   - every stored point lies within Bounds();
//   - Bounds() only grows (through Set), never shrinks.
//
// The zero value is an empty sparse grid ready for Set.
type Grid[T any] struct {
	bounds geometry.Bounds
	cells  map[geometry.Point]T
	fill   T
	dense  bool
}

// Entry is one cell of a grid: its coordinates and value.
type Entry[T any] struct {
	Point geometry.Point
	Value T
}

// Empty returns a sparse grid with zero-area bounds. It grows as Set is called;
// unset points inside the grown bounds read as absent.
func Empty[T any]() *Grid[T] {
	return &Grid[T]{cells: make(map[geometry.Point]T)}
}

// WithSize returns a dense grid over b where every cell reads as fill until set.
func WithSize[T any](b geometry.Bounds, fill T) *Grid[T] {
	return &Grid[T]{
		bounds: b,
		cells:  make(map[geometry.Point]T),
		fill:   fill,
		dense:  true,
	}
}

// Bounds returns the current region of the grid.
func (g *Grid[T]) Bounds() geometry.Bounds {
	return g.bounds
}

// Width is Bounds().Width.
func (g *Grid[T]) Width() int {
	return g.bounds.Width
}

// Height is Bounds().Height.
func (g *Grid[T]) Height() int {
	return g.bounds.Height
}

// Len returns the number of explicitly stored cells.
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// Contains reports whether p lies within the grid's bounds.
func (g *Grid[T]) Contains(p geometry.Point) bool {
	return g.bounds.Contains(p)
}

// Get returns the value at p. ok is false when p is outside the bounds, or
// when the grid is sparse and p was never set. Get never panics.
func (g *Grid[T]) Get(p geometry.Point) (v T, ok bool) {
	if !g.bounds.Contains(p) {
		return v, false
	}
	if v, ok = g.cells[p]; ok {
		return v, true
	}
	if g.dense {
		return g.fill, true
	}
	return v, false
}

// present reports whether Get(p) would succeed.
func (g *Grid[T]) present(p geometry.Point) bool {
	if !g.bounds.Contains(p) {
		return false
	}
	if g.dense {
		return true
	}
	_, ok := g.cells[p]
	return ok
}

// GetOr returns the value at p, or def when Get reports absent.
func (g *Grid[T]) GetOr(p geometry.Point, def T) T {
	if v, ok := g.Get(p); ok {
		return v
	}
	return def
}

// Set stores v at p, growing the bounds to include p when needed.
// Repeated identical writes leave the grid unchanged.
func (g *Grid[T]) Set(p geometry.Point, v T) {
	if g.cells == nil {
		g.cells = make(map[geometry.Point]T)
	}
	g.cells[p] = v
	g.bounds = g.bounds.Extend(p)
}

// Points returns every coordinate of the bounds in row-major order,
// whether or not a value was set there.
func (g *Grid[T]) Points() []geometry.Point {
	return slices.Collect(g.bounds.Points())
}

// Entries returns every present cell in row-major order: all in-bounds cells
// for dense grids, only the set ones for sparse grids.
func (g *Grid[T]) Entries() []Entry[T] {
	out := make([]Entry[T], 0, len(g.cells))
	for p := range g.bounds.Points() {
		if v, ok := g.Get(p); ok {
			out = append(out, Entry[T]{Point: p, Value: v})
		}
	}
	return out
}

// Find returns the first present cell, in row-major order, matching pred.
func (g *Grid[T]) Find(pred func(p geometry.Point, v T) bool) (Entry[T], bool) {
	for p := range g.bounds.Points() {
		if v, ok := g.Get(p); ok && pred(p, v) {
			return Entry[T]{Point: p, Value: v}, true
		}
	}
	return Entry[T]{}, false
}

// Count returns the number of present cells matching pred.
func (g *Grid[T]) Count(pred func(p geometry.Point, v T) bool) int {
	n := 0
	for p := range g.bounds.Points() {
		if v, ok := g.Get(p); ok && pred(p, v) {
			n++
		}
	}
	return n
}

// Clone returns an independent copy; values themselves are copied shallowly.
func (g *Grid[T]) Clone() *Grid[T] {
	c := *g
	c.cells = maps.Clone(g.cells)
	if c.cells == nil {
		c.cells = make(map[geometry.Point]T)
	}
	return &c
}

// Equal reports whether a and b have the same bounds and the same value (or
// absence) at every point. Dense and sparse grids with identical contents are equal.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.bounds != b.bounds {
		return false
	}
	for p := range a.bounds.Points() {
		va, oka := a.Get(p)
		vb, okb := b.Get(p)
		if oka != okb || va != vb {
			return false
		}
	}
	return true
}
