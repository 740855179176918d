// SPDX-License-Identifier: MIT

package grid_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/gridkit/geometry"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/stretchr/testify/require"
)

// TestRender_RoundTrip verifies Parse(Render(g)) == g for character grids.
func TestRender_RoundTrip(t *testing.T) {
	fixtures := []string{
		"MMMSXXMASM\nMSAMXMSMSA\nAMXSXMAAMM",
		"########\n#..O.O.#\n##@.O..#\n########",
		".",
	}
	for _, src := range fixtures {
		g, err := grid.ParseRunes(src)
		require.NoError(t, err)
		require.Equal(t, src, g.String())

		again, err := grid.ParseRunes(g.String())
		require.NoError(t, err)
		require.True(t, grid.Equal(g, again))
	}
}

func TestRender_AfterMutation(t *testing.T) {
	g, err := grid.ParseRunes("#####\n#@..#\n#####")
	require.NoError(t, err)
	g.Set(geometry.Pt(1, 1), '.')
	g.Set(geometry.Pt(3, 1), '@')
	require.Equal(t, "#####\n#..@#\n#####", g.String())
}

func TestRender_Placeholder(t *testing.T) {
	g := grid.Empty[rune]()
	g.Set(geometry.Pt(0, 0), 'a')
	g.Set(geometry.Pt(2, 1), 'b')
	require.Equal(t, "a..\n..b", g.String())
	require.Equal(t, "a  \n  b", g.Render(nil, grid.WithPlaceholder(" ")))
	require.Equal(t, "A..\n..B", g.Render(func(r rune) string { return strings.ToUpper(string(r)) }))
}

func TestRender_BoolGrid(t *testing.T) {
	g := grid.WithSize(geometry.FromSize(3, 2), false)
	g.Set(geometry.Pt(1, 0), true)
	require.Equal(t, ".#.\n...", g.String())
}

func TestEncodeDefault(t *testing.T) {
	require.Equal(t, "x", grid.EncodeDefault('x'))
	require.Equal(t, "y", grid.EncodeDefault(byte('y')))
	require.Equal(t, "ab", grid.EncodeDefault("ab"))
	require.Equal(t, "12", grid.EncodeDefault(12))
	require.Equal(t, "(1,2)", grid.EncodeDefault(geometry.Pt(1, 2)))
}

func TestRenderHalfBlocks(t *testing.T) {
	g := grid.WithSize(geometry.FromSize(4, 4), false)
	for _, p := range []geometry.Point{
		geometry.Pt(0, 0), geometry.Pt(1, 0), geometry.Pt(0, 1), geometry.Pt(1, 1), // full block
		geometry.Pt(3, 0), // top right quadrant
		geometry.Pt(0, 3), geometry.Pt(1, 3), // lower half
	} {
		g.Set(p, true)
	}
	require.Equal(t, "█▝\n▄ ", grid.RenderHalfBlocks(g))

	// Odd sizes read the missing row/column as false.
	odd := grid.Empty[bool]()
	odd.Set(geometry.Pt(0, 0), true)
	odd.Set(geometry.Pt(2, 2), true)
	require.Equal(t, "▘ \n ▘", grid.RenderHalfBlocks(odd))
}

func TestRenderStyled(t *testing.T) {
	g, err := grid.ParseRunes("#.#\n.@.\n#.#")
	require.NoError(t, err)

	require.Equal(t, g.String(), grid.RenderStyled(g, nil, nil))

	wallStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8"))
	out := grid.RenderStyled(g, nil, func(_ geometry.Point, r rune) lipgloss.Style {
		if r == '#' {
			return wallStyle
		}
		return lipgloss.NewStyle()
	})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	for _, ln := range lines {
		require.Equal(t, 3, lipgloss.Width(ln))
	}
	require.Equal(t, "", grid.RenderStyled(grid.Empty[rune](), nil, nil))
}
