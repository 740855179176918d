// SPDX-License-Identifier: MIT

package grid

import "github.com/katalvlaran/gridkit/geometry"

// Region is a maximal set of connected cells sharing one value.
type Region[T any] struct {
	Value  T
	Points []geometry.Point // in discovery (BFS) order, seed first
}

// Flood returns every point reachable from start by repeatedly stepping in
// the directions of group onto present cells accepted by accept. The walk
// uses an explicit work queue, so deep regions do not grow the call stack.
// start is included when it is present and accepted; otherwise the result is nil.
//
// Time:   O(k·d) for k reached cells, d = group arity.
// Memory: O(k).
func (g *Grid[T]) Flood(start geometry.Point, group geometry.Group, accept func(p geometry.Point, v T) bool) []geometry.Point {
	v, ok := g.Get(start)
	if !ok || !accept(start, v) {
		return nil
	}
	seen := map[geometry.Point]struct{}{start: {}}
	queue := []geometry.Point{start}
	var buf []Entry[T]
	for qi := 0; qi < len(queue); qi++ {
		buf = g.AppendAdjacentEntries(buf[:0], queue[qi], group)
		for _, e := range buf {
			if _, done := seen[e.Point]; done || !g.present(e.Point) || !accept(e.Point, e.Value) {
				continue
			}
			seen[e.Point] = struct{}{}
			queue = append(queue, e.Point)
		}
	}
	return queue
}

// Regions partitions the present cells into maximal NonDiagonal-connected
// regions of equal value. Regions are returned in row-major order of their
// first cell, so the result is deterministic.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func Regions[T comparable](g *Grid[T]) []Region[T] {
	seen := make(map[geometry.Point]struct{}, g.bounds.Area())
	var out []Region[T]
	for _, e := range g.Entries() {
		if _, done := seen[e.Point]; done {
			continue
		}
		want := e.Value
		pts := g.Flood(e.Point, geometry.NonDiagonal, func(_ geometry.Point, v T) bool { return v == want })
		for _, p := range pts {
			seen[p] = struct{}{}
		}
		out = append(out, Region[T]{Value: want, Points: pts})
	}
	return out
}
