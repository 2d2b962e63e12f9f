// File: methods_adjacent.go
// Role: Neighborhood APIs (Successors, Predecessors) of the dense Graph.
// Determinism:
//   - Both accessors return unique IDs sorted ascending.
// Concurrency:
//   - Read lock held while the slice header is read; the backing array is
//     shared with the graph and must not be modified by callers.
// AI-HINT (file):
//   - The matching engine calls these in its innermost loops; they never allocate.

package core

// Successors returns the targets of edges leaving id, ascending.
// Absent vertices have no successors.
//
// Complexity: O(1), no allocation.
func (g *Graph) Successors(id int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.has(id) {
		return nil
	}

	return g.out[id]
}

// Predecessors returns the sources of edges entering id, ascending.
// Absent vertices have no predecessors.
//
// Complexity: O(1), no allocation.
func (g *Graph) Predecessors(id int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.has(id) {
		return nil
	}

	return g.in[id]
}

// Degree returns the in- and out-degree of id.
//
// Errors:
//   - ErrVertexNotFound: if id is absent.
//
// Complexity: O(1).
func (g *Graph) Degree(id int) (in, out int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.has(id) {
		return 0, 0, ErrVertexNotFound
	}

	return len(g.in[id]), len(g.out[id]), nil
}
