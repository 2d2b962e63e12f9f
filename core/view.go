// File: view.go
// Role: Non-mutating subgraph construction over any View.
// Determinism:
//   - Vertices and edges are copied in ascending order.
// Concurrency:
//   - Only read methods of the source are called; the result is a fresh SmallGraph.
// AI-HINT (file):
//   - Views do NOT mutate the input graph.
//   - InducedSubgraph keeps only vertices accepted by keep and edges with both endpoints kept.
//   - Subgraph additionally filters edges.

package core

// InducedSubgraph returns a new SmallGraph induced by the vertices of v for
// which keep returns true: every kept vertex with its label, and every edge of
// v whose endpoints are both kept. The input is not mutated.
//
// Complexity: O(V + E).
func InducedSubgraph(v View, keep func(id int) bool) *SmallGraph {
	return Subgraph(v, keep, nil)
}

// Subgraph is InducedSubgraph with an additional edge predicate: an edge with
// both endpoints kept is copied only if keepEdge(from, to) is true.
// A nil keepEdge keeps every such edge.
//
// Complexity: O(V + E).
func Subgraph(v View, keep func(id int) bool, keepEdge func(from, to int) bool) *SmallGraph {
	out := newSmallGraph(graphConfig{allowLoops: true})

	ids := v.Vertices()
	for _, id := range ids {
		if keep(id) {
			out.labels[id] = v.Label(id)
		}
	}
	for _, from := range ids {
		if _, ok := out.labels[from]; !ok {
			continue
		}
		for _, to := range v.Successors(from) {
			if _, ok := out.labels[to]; !ok {
				continue
			}
			if keepEdge != nil && !keepEdge(from, to) {
				continue
			}
			out.link(from, to)
		}
	}
	out.recomputeOrder()

	return out
}
