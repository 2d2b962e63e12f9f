// File: methods_clone.go
// Role: Cloning dense graph instances.
// Concurrency:
//   - Read lock on the source; the clone shares no backing arrays with it.

package core

// Clone returns a deep copy of g: same policy flags, vertices, labels and edges.
//
// Complexity: O(Order + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.present)
	out := &Graph{
		cfg:         g.cfg,
		present:     append([]bool(nil), g.present...),
		labels:      append([]int(nil), g.labels...),
		out:         make([][]int, n),
		in:          make([][]int, n),
		vertexCount: g.vertexCount,
		edgeCount:   g.edgeCount,
	}
	for id := 0; id < n; id++ {
		if len(g.out[id]) > 0 {
			out.out[id] = append([]int(nil), g.out[id]...)
		}
		if len(g.in[id]) > 0 {
			out.in[id] = append([]int(nil), g.in[id]...)
		}
	}

	return out
}

// CloneEmpty returns a new Graph with identical flags, vertices and labels, but no edges.
//
// Complexity: O(Order).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.present)

	return &Graph{
		cfg:         g.cfg,
		present:     append([]bool(nil), g.present...),
		labels:      append([]int(nil), g.labels...),
		out:         make([][]int, n),
		in:          make([][]int, n),
		vertexCount: g.vertexCount,
	}
}
