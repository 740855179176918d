// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrBadToken indicates a token in the input text could not be decoded.
	ErrBadToken = errors.New("grid: cannot decode token")
	// ErrUnknownTile indicates a token outside a TileSet.
	ErrUnknownTile = errors.New("grid: unknown tile")
	// ErrIncompleteNeighborhood indicates a requested neighbour lies outside the grid.
	ErrIncompleteNeighborhood = errors.New("grid: incomplete neighborhood")
	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("grid: invalid option supplied")
)

// Panic messages for programmer errors.
const (
	panicPairArity     = "grid: AdjacentPair requires a group of arity 2"
	panicNilDecode     = "grid: decode function is nil"
	panicTokenWidth    = "grid: FixedWidth requires a width >= 1"
	panicDuplicateTile = "grid: TileSet maps two runes to the same tile"
)
