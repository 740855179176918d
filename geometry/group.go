package geometry

import (
	"fmt"
	"iter"
)

// Group names a fixed, ordered list of directions. A Group is not a
// Direction: it expands to several unit steps and is used for neighbourhood
// queries (Point.Around, Grid.Adjacent).
type Group uint8

const (
	// NonDiagonal expands to [Top, Right, Bottom, Left].
	NonDiagonal Group = iota
	// TLBR expands to [TopLeft, BottomRight].
	TLBR
	// TRBL expands to [TopRight, BottomLeft].
	TRBL
	// Diagonal expands to [TopRight, BottomRight, BottomLeft, TopLeft].
	Diagonal
	// All expands to the four orthogonal directions followed by the four diagonals.
	All
)

var groups = [...][]Direction{
	NonDiagonal: {Top, Right, Bottom, Left},
	TLBR:        {TopLeft, BottomRight},
	TRBL:        {TopRight, BottomLeft},
	Diagonal:    {TopRight, BottomRight, BottomLeft, TopLeft},
	All:         {Top, Right, Bottom, Left, TopRight, BottomRight, BottomLeft, TopLeft},
}

var groupNames = [...]string{
	NonDiagonal: "NonDiagonal",
	TLBR:        "TLBR",
	TRBL:        "TRBL",
	Diagonal:    "Diagonal",
	All:         "All",
}

// Valid reports whether g is a declared group.
func (g Group) Valid() bool {
	return int(g) < len(groups)
}

// Directions returns a fresh copy of the group's directions in declaration order.
func (g Group) Directions() []Direction {
	out := make([]Direction, len(g.expand()))
	copy(out, g.expand())
	return out
}

// Each yields the group's directions in declaration order without allocating
// a slice; use it in tight neighbour loops.
func (g Group) Each() iter.Seq[Direction] {
	dirs := g.expand()
	return func(yield func(Direction) bool) {
		for _, d := range dirs {
			if !yield(d) {
				return
			}
		}
	}
}

// Arity is the number of directions the group expands to.
func (g Group) Arity() int {
	return len(g.expand())
}

// String returns the group name, e.g. "TLBR".
func (g Group) String() string {
	if !g.Valid() {
		return fmt.Sprintf("Group(%d)", uint8(g))
	}
	return groupNames[g]
}

// expand returns the shared backing slice; callers inside the package must
// not modify it.
func (g Group) expand() []Direction {
	if !g.Valid() {
		panic(panicBadGroup)
	}
	return groups[g]
}
