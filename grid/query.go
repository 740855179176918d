// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/gridkit/geometry"
)

// Trace casts a ray from p: starting one step beyond p it yields the value of
// each cell along d together with its presence (as reported by Get), and
// stops the instant the ray leaves the bounds. Unset cells of a sparse grid
// are yielded as (zero, false). p itself may lie outside the grid.
// Each iteration re-walks from p.
func (g *Grid[T]) Trace(p geometry.Point, d geometry.Direction) iter.Seq2[T, bool] {
	return func(yield func(T, bool) bool) {
		for q := p.Step(d); g.bounds.Contains(q); q = q.Step(d) {
			v, ok := g.Get(q)
			if !yield(v, ok) {
				return
			}
		}
	}
}

// InDirection is Trace without presence: it yields one value per in-bounds
// step along d, T's zero value for unset cells of a sparse grid.
func (g *Grid[T]) InDirection(p geometry.Point, d geometry.Direction) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range g.Trace(p, d) {
			if !yield(v) {
				return
			}
		}
	}
}

// Ray returns at most n values of InDirection(p, d).
func (g *Grid[T]) Ray(p geometry.Point, d geometry.Direction, n int) []T {
	out := make([]T, 0, max(n, 0))
	if n <= 0 {
		return out
	}
	for v := range g.InDirection(p, d) {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

// Adjacent returns the values one step from p in every direction of group,
// in group order; unset cells of a sparse grid read as T's zero value. If any
// neighbour lies outside the bounds it returns ErrIncompleteNeighborhood and
// no values; use AdjacentEntries when partial neighbourhoods are acceptable.
func (g *Grid[T]) Adjacent(p geometry.Point, group geometry.Group) ([]T, error) {
	out := make([]T, 0, group.Arity())
	for d := range group.Each() {
		q := p.Step(d)
		if !g.bounds.Contains(q) {
			return nil, fmt.Errorf("%w: %v of %v", ErrIncompleteNeighborhood, d, p)
		}
		v, _ := g.Get(q)
		out = append(out, v)
	}
	return out, nil
}

// AdjacentPair is Adjacent for the two-direction groups (TLBR, TRBL).
// It panics when group does not expand to exactly two directions.
func (g *Grid[T]) AdjacentPair(p geometry.Point, group geometry.Group) ([2]T, error) {
	var pair [2]T
	if group.Arity() != 2 {
		panic(panicPairArity)
	}
	vals, err := g.Adjacent(p, group)
	if err != nil {
		return pair, err
	}
	copy(pair[:], vals)
	return pair, nil
}

// AdjacentEntries returns the neighbours of p for group, in group order,
// silently omitting the ones outside the bounds. Unset cells of a sparse grid
// are included with T's zero value, as in Adjacent.
func (g *Grid[T]) AdjacentEntries(p geometry.Point, group geometry.Group) []Entry[T] {
	return g.AppendAdjacentEntries(make([]Entry[T], 0, group.Arity()), p, group)
}

// AppendAdjacentEntries appends the in-bounds neighbours of p to dst and returns
// the extended slice. Reusing dst across calls keeps tight loops allocation free.
func (g *Grid[T]) AppendAdjacentEntries(dst []Entry[T], p geometry.Point, group geometry.Group) []Entry[T] {
	for d := range group.Each() {
		q := p.Step(d)
		if !g.bounds.Contains(q) {
			continue
		}
		v, _ := g.Get(q)
		dst = append(dst, Entry[T]{Point: q, Value: v})
	}
	return dst
}
