// File: methods_edges.go
// Role: Edge lifecycle for the dense Graph.
//
// Determinism:
//   - Adjacency slices are kept sorted ascending; insertion order never leaks.
//
// Concurrency:
//   - All state protected by g.mu.
package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts the directed edge from→to.
//
// Implementation:
//   - Stage 1: Under the write lock, validate both endpoints exist.
//   - Stage 2: Reject self-loops unless WithLoops() was given.
//   - Stage 3: Insert `to` into out[from] and `from` into in[to] at their sorted positions.
//
// Behavior highlights:
//   - Duplicate edges collapse: adding an existing edge is a no-op.
//   - Endpoints must be added first; AddEdge never creates vertices.
//
// Errors:
//   - ErrVertexNotFound: if either endpoint is absent.
//   - ErrLoopNotAllowed: if from == to and loops are disabled.
//
// Complexity:
//   - Time O(d) for the sorted insertion, Space O(1) amortized.
func (g *Graph) AddEdge(from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.has(from) {
		return fmt.Errorf("AddEdge(%d,%d): source: %w", from, to, ErrVertexNotFound)
	}
	if !g.has(to) {
		return fmt.Errorf("AddEdge(%d,%d): target: %w", from, to, ErrVertexNotFound)
	}
	if from == to && !g.cfg.allowLoops {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrLoopNotAllowed)
	}

	var added bool
	g.out[from], added = insertSorted(g.out[from], to)
	if !added {
		return nil // parallel edge collapses into the existing one
	}
	g.in[to], _ = insertSorted(g.in[to], from)
	g.edgeCount++

	return nil
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(log d).
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.has(from) {
		return false
	}

	return containsSorted(g.out[from], to)
}

// EdgeCount returns the number of distinct directed edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every edge ordered by (From, To) ascending.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	return EdgesOf(g)
}

// insertSorted inserts x into the ascending slice s if absent.
// Returns the (possibly reallocated) slice and whether x was inserted.
func insertSorted(s []int, x int) ([]int, bool) {
	i := sort.SearchInts(s, x)
	if i < len(s) && s[i] == x {
		return s, false
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = x

	return s, true
}

// removeSorted deletes x from the ascending slice s if present.
func removeSorted(s []int, x int) []int {
	i := sort.SearchInts(s, x)
	if i == len(s) || s[i] != x {
		return s
	}

	return append(s[:i], s[i+1:]...)
}

// containsSorted reports whether x occurs in the ascending slice s.
func containsSorted(s []int, x int) bool {
	i := sort.SearchInts(s, x)

	return i < len(s) && s[i] == x
}
