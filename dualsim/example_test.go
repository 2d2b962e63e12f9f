package dualsim_test

import (
	"fmt"

	"github.com/katalvlaran/tightsim/core"
	"github.com/katalvlaran/tightsim/dualsim"
)

// ExampleCompute matches the query A→B against the chain A→B→A→B.
func ExampleCompute() {
	data := core.NewGraph()
	for id, label := range []int{'A', 'B', 'A', 'B'} {
		_ = data.AddVertex(id, label)
	}
	_ = data.AddEdge(0, 1)
	_ = data.AddEdge(1, 2)
	_ = data.AddEdge(2, 3)

	q := core.NewGraph()
	_ = q.AddVertex(0, 'A')
	_ = q.AddVertex(1, 'B')
	_ = q.AddEdge(0, 1)

	m, _ := dualsim.Compute(data, q)
	fmt.Println(m)

	mg, _ := dualsim.MatchGraph(data, q, m)
	fmt.Println(mg.Edges())
	// Output:
	// {0:[0 2] 1:[1 3]}
	// [{0 1} {2 3}]
}
