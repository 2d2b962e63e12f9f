package core_test

import (
	"testing"

	"github.com/katalvlaran/tightsim/core"
)

// BenchmarkGraph_AddEdge measures dense edge insertion on a star of size N.
func BenchmarkGraph_AddEdge(b *testing.B) {
	const N = 1000
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g := core.NewGraph()
		for v := 0; v < N; v++ {
			_ = g.AddVertex(v, v%3)
		}
		for v := 1; v < N; v++ {
			_ = g.AddEdge(0, v)
		}
	}
}

// BenchmarkInducedSubgraph measures carving half of a chain into a SmallGraph.
func BenchmarkInducedSubgraph(b *testing.B) {
	const N = 10000
	g := core.NewGraph()
	for v := 0; v < N; v++ {
		_ = g.AddVertex(v, v%3)
	}
	for v := 0; v+1 < N; v++ {
		_ = g.AddEdge(v, v+1)
	}
	keep := func(id int) bool { return id%2 == 0 || id%3 == 0 }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = core.InducedSubgraph(g, keep)
	}
}
