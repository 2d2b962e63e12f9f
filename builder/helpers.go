package builder

import (
	"fmt"

	"github.com/katalvlaran/tightsim/core"
)

// addVertices appends n vertices to g starting at ID g.Order(), labeling the
// i-th with cfg.label(i). It returns the first allocated ID.
//
// Complexity: O(n) time, O(1) extra space.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) (int, error) {
	base := g.Order()
	for i := 0; i < n; i++ {
		if err := g.AddVertex(base+i, cfg.label(i)); err != nil {
			return 0, fmt.Errorf("%s: AddVertex(%d): %w", method, base+i, err)
		}
	}

	return base, nil
}

// addEdge inserts from→to with method context.
func addEdge(method string, g *core.Graph, from, to int) error {
	if err := g.AddEdge(from, to); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d): %w", method, from, to, err)
	}

	return nil
}
