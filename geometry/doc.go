// Package geometry provides the integer coordinate model shared by the
// gridkit packages: points, unit directions, direction groups and
// axis-aligned bounds.
//
// What:
//
//   - Point is an immutable (X, Y) value. X grows to the right, Y grows
//     downward (screen coordinates), so Top is (0,-1).
//   - Direction is one of eight unit step vectors.
//   - Group is a named, fixed-arity list of directions (NonDiagonal, TLBR, …)
//     used for neighbourhood and diagonal-pair queries.
//   - Bounds is a rectangle of valid coordinates with containment, row/column
//     iteration and union.
//
// Why:
//
//   - Maze walking, word search, robot simulation and antenna geometry all
//     speak the same coordinate language; keeping it in one leaf package
//     lets grid and non-grid consumers share it.
//
// Complexity:
//
//   - Translate, ManhattanDistance, Contains, Union: O(1).
//   - Around(g): O(|g|).
//   - WithinManhattanDistance(r): O(r²), returns exactly 2r²+2r+1 points.
//
// Errors:
//
//   - ErrUnknownArrow: ParseArrow got a rune outside ^ > v <.
//
// Values in this package are plain comparable structs and integers; they are
// safe to copy, compare with == and use as map keys.
package geometry
