// SPDX-License-Identifier: MIT

// Package grid provides Grid[T], a coordinate-indexed container over a
// rectangular region, built by parsing text and queried through the
// geometry package's points, directions and bounds.
//
// What:
//
//   - Parse turns newline separated rows into a Grid, decoding every token
//     with a caller supplied DecodeFunc (see Rune, Digit and TileSet).
//   - Get/Set are bounds-safe: reads outside the region report ok=false,
//     writes outside the region grow it.
//   - InDirection and Trace cast a ray from a point until it leaves the bounds.
//   - Adjacent/AdjacentEntries read a direction group around a point.
//   - Render/String print the grid back to text; Parse(Render(g)) == g for
//     grids of single-character tokens.
//   - Flood and Regions walk connected cells with an explicit work queue.
//
// Density:
//
//   - Grids built by Parse or WithSize are dense: every in-bounds point has
//     a value (the fill value when never set).
//   - Grids built by Empty are sparse: unset points read as absent and are
//     skipped by Entries.
//
// Determinism:
//
//   - Points, Entries, Find, Regions and Render walk rows top to bottom and
//     columns left to right, so "first match in scan order" is reproducible.
//
// Concurrency:
//
//   - A Grid is not safe for concurrent mutation; callers own it exclusively.
//
// Complexity:
//
//   - Get, Set: O(1) expected.
//   - Parse, Render, Entries, Points: O(W×H).
//   - InDirection: O(k) for k yielded cells.
//   - Flood, Regions: O(W×H×d), d = group arity. Memory O(W×H).
//
// Errors:
//
//   - ErrBadToken: a token could not be decoded (wrapped in *parser.ParseError).
//   - ErrUnknownTile: TileSet.Decode got a token outside the set.
//   - ErrIncompleteNeighborhood: Adjacent found a neighbour outside the bounds.
//   - ErrOptionViolation: an invalid Option was supplied.
package grid
