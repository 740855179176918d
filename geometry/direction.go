package geometry

import "fmt"

// Direction is a unit step on the integer plane.
type Direction uint8

// The eight primary directions. Orthogonal ones come first, clockwise from
// Top, followed by the diagonals clockwise from TopRight.
const (
	Top Direction = iota
	Right
	Bottom
	Left
	TopRight
	BottomRight
	BottomLeft
	TopLeft
)

// directionCount is the number of primary directions.
const directionCount = 8

// deltas holds (dx, dy) per Direction, indexed by its value.
var deltas = [directionCount][2]int{
	Top:         {0, -1},
	Right:       {1, 0},
	Bottom:      {0, 1},
	Left:        {-1, 0},
	TopRight:    {1, -1},
	BottomRight: {1, 1},
	BottomLeft:  {-1, 1},
	TopLeft:     {-1, -1},
}

var opposites = [directionCount]Direction{
	Top:         Bottom,
	Right:       Left,
	Bottom:      Top,
	Left:        Right,
	TopRight:    BottomLeft,
	BottomRight: TopLeft,
	BottomLeft:  TopRight,
	TopLeft:     BottomRight,
}

// clockwise is the full compass ring used by the turn helpers.
var clockwise = [directionCount]Direction{Top, TopRight, Right, BottomRight, Bottom, BottomLeft, Left, TopLeft}

// ringIndex is the position of each Direction in clockwise.
var ringIndex = [directionCount]int{
	Top:         0,
	TopRight:    1,
	Right:       2,
	BottomRight: 3,
	Bottom:      4,
	BottomLeft:  5,
	Left:        6,
	TopLeft:     7,
}

var names = [directionCount]string{
	Top:         "Top",
	Right:       "Right",
	Bottom:      "Bottom",
	Left:        "Left",
	TopRight:    "TopRight",
	BottomRight: "BottomRight",
	BottomLeft:  "BottomLeft",
	TopLeft:     "TopLeft",
}

// Valid reports whether d is one of the eight primary directions.
func (d Direction) Valid() bool {
	return d < directionCount
}

// Delta returns the unit step (dx, dy) of d.
// It panics if d is not a valid direction.
func (d Direction) Delta() (dx, dy int) {
	d.mustBeValid()
	return deltas[d][0], deltas[d][1]
}

// Opposite returns the direction pointing the other way.
// Stepping by d and then by d.Opposite() is the identity.
func (d Direction) Opposite() Direction {
	d.mustBeValid()
	return opposites[d]
}

// IsDiagonal reports whether d moves along both axes.
func (d Direction) IsDiagonal() bool {
	dx, dy := d.Delta()
	return dx != 0 && dy != 0
}

// TurnRight rotates d by 90° clockwise (Top → Right, TopRight → BottomRight).
func (d Direction) TurnRight() Direction {
	return d.rotate(2)
}

// TurnLeft rotates d by 90° counter-clockwise (Top → Left).
func (d Direction) TurnLeft() Direction {
	return d.rotate(-2)
}

// rotate moves d by steps of 45° along the compass ring.
func (d Direction) rotate(steps int) Direction {
	d.mustBeValid()
	i := ringIndex[d] + steps
	return clockwise[(i%directionCount+directionCount)%directionCount]
}

// String returns the constant name, e.g. "TopLeft".
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return names[d]
}

// Arrow returns the ASCII arrow of an orthogonal direction (^ > v <) and
// ok=false for diagonals.
func (d Direction) Arrow() (r rune, ok bool) {
	switch d {
	case Top:
		return '^', true
	case Right:
		return '>', true
	case Bottom:
		return 'v', true
	case Left:
		return '<', true
	}
	return 0, false
}

// ParseArrow maps one of ^ > v < to its orthogonal direction.
// Any other rune yields ErrUnknownArrow.
func ParseArrow(r rune) (Direction, error) {
	switch r {
	case '^':
		return Top, nil
	case '>':
		return Right, nil
	case 'v':
		return Bottom, nil
	case '<':
		return Left, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownArrow, r)
}

func (d Direction) mustBeValid() {
	if !d.Valid() {
		panic(panicBadDirection)
	}
}
