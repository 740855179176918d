// SPDX-License-Identifier: MIT

package grid_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/gridkit/geometry"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/parser"
	"github.com/stretchr/testify/require"
)

const wordSearch = `
	MMMSXXMASM
	MSAMXMSMSA
	AMXSXMAAMM
	MSAMASMSMX
	XMASAMXAMM
	XXAMMXXAMA
	SMSMSASXSS
	SAXAMASAAA
	MAMMMXMMMM
	MXMXAXMASX
`

func TestScenario_WordSearch(t *testing.T) {
	g, err := grid.ParseRunes(wordSearch)
	require.NoError(t, err)
	require.Equal(t, 10, g.Width())
	require.Equal(t, 10, g.Height())

	xmas := 0
	for _, e := range g.Entries() {
		if e.Value != 'X' {
			continue
		}
		for d := range geometry.All.Each() {
			if string(g.Ray(e.Point, d, 3)) == "MAS" {
				xmas++
			}
		}
	}
	require.Equal(t, 18, xmas)

	isMS := func(pair [2]rune) bool {
		return pair == [2]rune{'M', 'S'} || pair == [2]rune{'S', 'M'}
	}
	crosses := g.Count(func(p geometry.Point, r rune) bool {
		if r != 'A' {
			return false
		}
		a, err := g.AdjacentPair(p, geometry.TLBR)
		if err != nil {
			return false
		}
		b, err := g.AdjacentPair(p, geometry.TRBL)
		return err == nil && isMS(a) && isMS(b)
	})
	require.Equal(t, 9, crosses)
}

func TestScenario_GuardWalk(t *testing.T) {
	g, err := grid.ParseRunes(`
		....#.....
		.........#
		..........
		..#.......
		.......#..
		..........
		.#..^.....
		........#.
		#.........
		......#...
	`)
	require.NoError(t, err)

	start, ok := g.Find(func(_ geometry.Point, r rune) bool { return r == '^' })
	require.True(t, ok)
	require.Equal(t, geometry.Pt(4, 6), start.Point)

	visited := map[geometry.Point]struct{}{start.Point: {}}
	pos, dir := start.Point, geometry.Top
	for {
		next := pos.Step(dir)
		r, ok := g.Get(next)
		if !ok {
			break
		}
		if r == '#' {
			dir = dir.TurnRight()
			continue
		}
		pos = next
		visited[pos] = struct{}{}
	}
	require.Len(t, visited, 41)
}

func TestScenario_Antinodes(t *testing.T) {
	g, err := grid.ParseRunes(`
		............
		........0...
		.....0......
		.......0....
		....0.......
		......A.....
		............
		............
		........A...
		.........A..
		............
		............
	`)
	require.NoError(t, err)

	antennas := make(map[rune][]geometry.Point)
	for _, e := range g.Entries() {
		if e.Value != '.' {
			antennas[e.Value] = append(antennas[e.Value], e.Point)
		}
	}

	antinodes := make(map[geometry.Point]struct{})
	for _, pts := range antennas {
		for i, a := range pts {
			for _, b := range pts[i+1:] {
				delta := b.Sub(a)
				for _, p := range []geometry.Point{b.Add(delta), a.Sub(delta)} {
					if g.Contains(p) {
						antinodes[p] = struct{}{}
					}
				}
			}
		}
	}
	require.Len(t, antinodes, 14)
}

func TestScenario_FallingBytes(t *testing.T) {
	const input = `5,4
4,2
4,5
3,0
2,1
6,3
2,4
1,5
0,6
3,3
2,6
5,1
1,2
5,5`

	p := parser.New(input)
	var bytes []geometry.Point
	for !p.IsExhausted() {
		x, err := parser.ReadInt[int](p)
		require.NoError(t, err)
		require.NoError(t, p.Literal(","))
		y, err := parser.ReadInt[int](p)
		require.NoError(t, err)
		bytes = append(bytes, geometry.Pt(x, y))
	}
	require.NoError(t, p.EnsureExhausted())
	require.Len(t, bytes, 14)

	memory := grid.WithSize(geometry.FromSize(7, 7), false)
	for _, b := range bytes[:12] {
		memory.Set(b, true)
	}
	require.Equal(t, geometry.FromSize(7, 7), memory.Bounds())
	require.Equal(t,
		"...#...\n"+
			"..#..#.\n"+
			"....#..\n"+
			"...#..#\n"+
			"..#..#.\n"+
			".#..#..\n"+
			"#.#....",
		memory.String())

	// The exit stays reachable from the entrance.
	reach := memory.Flood(geometry.Pt(0, 0), geometry.NonDiagonal, func(_ geometry.Point, wall bool) bool { return !wall })
	require.True(t, slices.Contains(reach, geometry.Pt(6, 6)))
}
