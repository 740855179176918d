// SPDX-License-Identifier: MIT

package grid_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gridkit/geometry"
	"github.com/katalvlaran/gridkit/grid"
)

func benchText(w, h int) string {
	row := strings.Repeat("ab#.", w/4+1)[:w]
	return strings.TrimSuffix(strings.Repeat(row+"\n", h), "\n")
}

// BenchmarkParseRunes measures parsing a 140×140 character map.
// Complexity: O(W×H)
func BenchmarkParseRunes(b *testing.B) {
	text := benchText(140, 140)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grid.ParseRunes(text); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAppendAdjacentEntries measures the reused-buffer neighbour scan over every cell.
// Complexity: O(W×H×8)
func BenchmarkAppendAdjacentEntries(b *testing.B) {
	g, err := grid.ParseRunes(benchText(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	pts := g.Points()
	buf := make([]grid.Entry[rune], 0, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range pts {
			buf = g.AppendAdjacentEntries(buf[:0], p, geometry.All)
		}
	}
}

// BenchmarkRegions measures connected-component labelling on a 100×100 map.
// Complexity: O(W×H×4)
func BenchmarkRegions(b *testing.B) {
	g, err := grid.ParseRunes(benchText(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = grid.Regions(g)
	}
}

// BenchmarkRender measures printing a 140×140 grid.
// Complexity: O(W×H)
func BenchmarkRender(b *testing.B) {
	g, err := grid.ParseRunes(benchText(140, 140))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.String()
	}
}
