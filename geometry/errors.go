package geometry

import "errors"

var (
	// ErrUnknownArrow indicates a rune that does not name a direction arrow.
	ErrUnknownArrow = errors.New("geometry: unknown direction arrow")
)

// Panic messages for programmer errors (no magic strings).
const (
	panicNegativeSize = "geometry: bounds width and height must be non-negative"
	panicBadDirection = "geometry: invalid direction"
	panicBadGroup     = "geometry: invalid direction group"
)
