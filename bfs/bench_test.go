package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tightsim/bfs"
	"github.com/katalvlaran/tightsim/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph()
	for i := 0; i <= N; i++ {
		_ = g.AddVertex(i, 0)
	}
	for i := 0; i < N; i++ {
		_ = g.AddEdge(i, i+1)
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N + 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_RandomSparseBall measures a radius-2 undirected walk on a sparse random graph.
func BenchmarkBFS_RandomSparseBall(b *testing.B) {
	const V = 5000
	const E = 10000

	rnd := rand.New(rand.NewSource(42))
	g := core.NewGraph()
	for i := 0; i < V; i++ {
		_ = g.AddVertex(i, 0)
	}
	for k := 0; k < E; k++ {
		u, v := rnd.Intn(V), rnd.Intn(V)
		if u != v {
			_ = g.AddEdge(u, v)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, i%V, bfs.WithUndirected(), bfs.WithMaxDepth(2))
	}
}
