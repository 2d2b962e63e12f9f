// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: The read-only View capability shared by Graph and SmallGraph, plus
// small helpers derived from it.
// Policy:
//   - No algorithms or hidden state here.
//   - Everything in this file works on any View; package-specific fast paths
//     live next to the concrete types.

package core

// View is the read-only graph-access capability consumed by the matching engine.
//
// Implementations must return Vertices, Successors and Predecessors sorted
// ascending without duplicates, and must be safe for concurrent readers.
type View interface {
	// VertexCount returns the number of present vertices.
	VertexCount() int

	// Order returns the size of the vertex ID space: every present ID is < Order().
	Order() int

	// Vertices returns the present vertex IDs in ascending order.
	Vertices() []int

	// HasVertex reports whether id is present.
	HasVertex(id int) bool

	// Label returns the label of id, or NoLabel if id is absent.
	Label(id int) int

	// Successors returns the targets of edges leaving id (read-only).
	Successors(id int) []int

	// Predecessors returns the sources of edges entering id (read-only).
	Predecessors(id int) []int

	// HasEdge reports whether the directed edge from→to exists.
	HasEdge(from, to int) bool
}

// Compile-time checks that both representations satisfy View.
var (
	_ View = (*Graph)(nil)
	_ View = (*SmallGraph)(nil)
)

// OutDegree returns the number of distinct successors of id in v.
// Complexity: O(1) for both core representations.
func OutDegree(v View, id int) int {
	return len(v.Successors(id))
}

// InDegree returns the number of distinct predecessors of id in v.
// Complexity: O(1) for both core representations.
func InDegree(v View, id int) int {
	return len(v.Predecessors(id))
}

// EdgesOf lists every edge of v ordered by (From, To) ascending.
//
// Complexity: O(V + E).
func EdgesOf(v View) []Edge {
	var out []Edge
	for _, from := range v.Vertices() {
		for _, to := range v.Successors(from) {
			out = append(out, Edge{From: from, To: to})
		}
	}

	return out
}

// Neighborhood returns the union of successors and predecessors of id,
// ascending, without duplicates. A self-loop contributes id itself.
//
// Complexity: O(d_out + d_in).
func Neighborhood(v View, id int) []int {
	return mergeSorted(v.Successors(id), v.Predecessors(id))
}

// mergeSorted merges two ascending, duplicate-free slices into a fresh
// ascending, duplicate-free slice.
func mergeSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}
