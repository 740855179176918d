// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridkit/geometry"
)

// Render prints the grid row by row (Bounds().Y() top to bottom, Bounds().X()
// left to right), one line per row, without a trailing newline. Present cells
// are printed with encode (EncodeDefault when nil), absent ones with the
// placeholder. Only WithPlaceholder and WithSeparator affect rendering.
// The output parses back to an equal grid unless a row or the first column
// is all whitespace (see Parse).
func (g *Grid[T]) Render(encode EncodeFunc[T], opts ...Option) string {
	if encode == nil {
		encode = EncodeDefault[T]
	}
	o := gatherOptions(opts)

	var b strings.Builder
	b.Grow(g.bounds.Area() + max(g.bounds.Height, 0))
	for y := range g.bounds.Y() {
		if y != g.bounds.Top {
			b.WriteByte('\n')
		}
		for x := range g.bounds.X() {
			if x != g.bounds.Left {
				b.WriteString(o.separator)
			}
			if v, ok := g.Get(geometry.Pt(x, y)); ok {
				b.WriteString(encode(v))
			} else {
				b.WriteString(o.placeholder)
			}
		}
	}
	return b.String()
}

// String renders the grid with EncodeDefault.
func (g *Grid[T]) String() string {
	return g.Render(nil)
}

// EncodeDefault renders a cell value without a caller supplied encoder:
// fmt.Stringer values use String, runes and bytes print as characters,
// strings verbatim, booleans as '#' (true) and '.' (false), and anything
// else through fmt.Sprint. Note that int32 is rune, so a Grid[int32] prints
// characters, not numbers.
func EncodeDefault[T any](v T) string {
	switch x := any(v).(type) {
	case fmt.Stringer:
		return x.String()
	case rune:
		return string(x)
	case byte:
		return string(rune(x))
	case string:
		return x
	case bool:
		if x {
			return "#"
		}
		return "."
	default:
		return fmt.Sprint(x)
	}
}

// halfBlocks is indexed by tl<<3 | tr<<2 | bl<<1 | br.
var halfBlocks = [16]rune{
	' ', '▗', '▖', '▄',
	'▝', '▐', '▞', '▟',
	'▘', '▚', '▌', '▙',
	'▀', '▜', '▛', '█',
}

// RenderHalfBlocks compresses a boolean grid into quadrant block characters,
// one character per 2×2 cell square, halving both dimensions of the output.
// Absent cells count as false. Lines are joined with '\n' without a trailing newline.
func RenderHalfBlocks(g *Grid[bool]) string {
	b := g.Bounds()
	var sb strings.Builder
	for y := b.Top; y <= b.Bottom(); y += 2 {
		if y != b.Top {
			sb.WriteByte('\n')
		}
		for x := b.Left; x <= b.Right(); x += 2 {
			idx := 0
			if g.GetOr(geometry.Pt(x, y), false) {
				idx |= 8
			}
			if g.GetOr(geometry.Pt(x+1, y), false) {
				idx |= 4
			}
			if g.GetOr(geometry.Pt(x, y+1), false) {
				idx |= 2
			}
			if g.GetOr(geometry.Pt(x+1, y+1), false) {
				idx |= 1
			}
			sb.WriteRune(halfBlocks[idx])
		}
	}
	return sb.String()
}
