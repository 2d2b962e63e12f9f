package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/tightsim/bfs"
	"github.com/katalvlaran/tightsim/core"
)

// ExampleBFS_neighborhood collects the radius-1 undirected neighborhood of a hub
// in a small directed graph: 1→0, 0→2, 2→3.
func ExampleBFS_neighborhood() {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		_ = g.AddVertex(i, 0)
	}
	_ = g.AddEdge(1, 0)
	_ = g.AddEdge(0, 2)
	_ = g.AddEdge(2, 3)

	res, err := bfs.BFS(g, 0, bfs.WithUndirected(), bfs.WithMaxDepth(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0 2 1]
}

// ExampleBFSResult_Eccentricity measures how far the farthest vertex is.
func ExampleBFSResult_Eccentricity() {
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		_ = g.AddVertex(i, 0)
	}
	for i := 0; i+1 < 5; i++ {
		_ = g.AddEdge(i, i+1)
	}

	res, _ := bfs.BFS(g, 2, bfs.WithUndirected())
	fmt.Println(res.Eccentricity())
	// Output:
	// 2
}
