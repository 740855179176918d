// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// EncodeFunc renders one cell value as text.
type EncodeFunc[T any] func(v T) string

var (
	errNotOneRune = errors.New("token must be exactly one character")
	errNotDigit   = errors.New("token must be a decimal digit")
)

// Rune decodes a single-character token.
func Rune(token string) (rune, error) {
	r, size := utf8.DecodeRuneInString(token)
	if size == 0 || size != len(token) || r == utf8.RuneError {
		return 0, errNotOneRune
	}
	return r, nil
}

// Digit decodes a single decimal digit token into 0..9.
func Digit(token string) (int, error) {
	if len(token) != 1 || token[0] < '0' || token[0] > '9' {
		return 0, errNotDigit
	}
	return int(token[0] - '0'), nil
}

// TileSet is a bidirectional mapping between single characters and tile
// values of a small closed enumeration. Its Decode and Encode methods plug
// into Parse and Render.
type TileSet[T comparable] struct {
	byRune map[rune]T
	byTile map[T]rune
}

// NewTileSet builds a TileSet from rune → tile pairs. It panics when two
// runes map to the same tile, since Encode would be ambiguous.
func NewTileSet[T comparable](pairs map[rune]T) *TileSet[T] {
	ts := &TileSet[T]{
		byRune: make(map[rune]T, len(pairs)),
		byTile: make(map[T]rune, len(pairs)),
	}
	for r, t := range pairs {
		if _, dup := ts.byTile[t]; dup {
			panic(panicDuplicateTile)
		}
		ts.byRune[r] = t
		ts.byTile[t] = r
	}
	return ts
}

// Decode maps a one-character token to its tile, or fails with ErrUnknownTile.
func (ts *TileSet[T]) Decode(token string) (T, error) {
	var zero T
	r, err := Rune(token)
	if err != nil {
		return zero, err
	}
	t, ok := ts.byRune[r]
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrUnknownTile, token)
	}
	return t, nil
}

// Encode returns the character of tile v, or "?" for a tile outside the set.
func (ts *TileSet[T]) Encode(v T) string {
	if r, ok := ts.byTile[v]; ok {
		return string(r)
	}
	return "?"
}
