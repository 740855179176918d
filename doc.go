// Package gridkit is a toolkit for puzzles and simulations played out on
// two-dimensional text maps: read a map, walk it, query it, print it back.
//
// Everything is organized under three subpackages:
//
//	geometry/  Point, Direction, Group and Bounds: integer coordinates,
//	           the eight compass steps and rectangular regions
//	parser/    a cursor over text that reads literals and integers and
//	           reports failures with line and column
//	grid/      Grid[T], parsed from text and queried with rays,
//	           neighbourhoods, flood fills and renderers
//
// Coordinates follow screen convention: X grows to the right and Y grows
// downward, so Top is (0,-1).
//
// Quick example:
//
//	g, _ := grid.ParseRunes("#.#\n.@.\n#.#")
//	start, _ := g.Find(func(_ geometry.Point, r rune) bool { return r == '@' })
//	walls := g.AdjacentEntries(start.Point, geometry.Diagonal) // four '#'
//
//	go get github.com/katalvlaran/gridkit
package gridkit
