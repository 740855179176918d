// SPDX-License-Identifier: MIT

package grid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridkit/geometry"
)

// StyleFunc picks the terminal style of a present cell.
type StyleFunc[T any] func(p geometry.Point, v T) lipgloss.Style

// RenderStyled is Render for terminals: each present cell is encoded and then
// rendered through the lipgloss.Style returned by style; absent cells print
// the placeholder unstyled. Rows are stacked with lipgloss.JoinVertical, so a
// style that changes cell width still yields a rectangular block.
// With a colourless profile (e.g. output is not a TTY) the result matches Render.
func RenderStyled[T any](g *Grid[T], encode EncodeFunc[T], style StyleFunc[T], opts ...Option) string {
	if encode == nil {
		encode = EncodeDefault[T]
	}
	o := gatherOptions(opts)
	b := g.Bounds()

	rows := make([]string, 0, b.Height)
	var row strings.Builder
	for y := range b.Y() {
		row.Reset()
		for x := range b.X() {
			if x != b.Left {
				row.WriteString(o.separator)
			}
			p := geometry.Pt(x, y)
			v, ok := g.Get(p)
			switch {
			case !ok:
				row.WriteString(o.placeholder)
			case style != nil:
				row.WriteString(style(p, v).Render(encode(v)))
			default:
				row.WriteString(encode(v))
			}
		}
		rows = append(rows, row.String())
	}
	if len(rows) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
