// File: methods_vertices.go
// Role: Vertex lifecycle & queries for the dense Graph.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending (slot order).
//
// Concurrency:
//   - All state protected by g.mu.
package core

import "fmt"

// AddVertex inserts vertex id with the given label (idempotent).
//
// Implementation:
//   - Stage 1: Validate id >= 0 (ErrNegativeVertexID).
//   - Stage 2: Under the write lock, grow the slot slices to cover id.
//   - Stage 3: Register the vertex, or verify the label if it is already present.
//
// Behavior highlights:
//   - Idempotent: re-adding an existing vertex with the same label is a no-op.
//   - IDs may arrive out of order; unfilled slots below Order() stay absent.
//
// Errors:
//   - ErrNegativeVertexID: if id < 0.
//   - ErrLabelConflict: if id exists with a different label.
//
// Complexity:
//   - Time O(1) amortized, Space O(id - Order()) when growing.
func (g *Graph) AddVertex(id, label int) error {
	if id < 0 {
		return fmt.Errorf("AddVertex(%d): %w", id, ErrNegativeVertexID)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.grow(id + 1)
	if g.present[id] {
		if g.labels[id] != label {
			return fmt.Errorf("AddVertex(%d): have label %d, got %d: %w", id, g.labels[id], label, ErrLabelConflict)
		}

		return nil // no-op for existing vertex
	}
	g.present[id] = true
	g.labels[id] = label
	g.vertexCount++

	return nil
}

// grow extends every slot slice to length n. Caller holds the write lock.
func (g *Graph) grow(n int) {
	for len(g.present) < n {
		g.present = append(g.present, false)
		g.labels = append(g.labels, NoLabel)
		g.out = append(g.out, nil)
		g.in = append(g.in, nil)
	}
}

// HasVertex reports whether the vertex ID exists (negative ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.has(id)
}

// has is HasVertex without locking.
func (g *Graph) has(id int) bool {
	return id >= 0 && id < len(g.present) && g.present[id]
}

// Label returns the label of id, or NoLabel if id is absent.
// Complexity: O(1).
func (g *Graph) Label(id int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.has(id) {
		return NoLabel
	}

	return g.labels[id]
}

// VertexCount returns the number of present vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertexCount
}

// Order returns the size of the ID space (highest slot + 1).
// Complexity: O(1).
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.present)
}

// Vertices returns all present vertex IDs in ascending order.
// Complexity: O(Order()).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, g.vertexCount)
	for id, ok := range g.present {
		if ok {
			out = append(out, id)
		}
	}

	return out
}

// Looped reports whether self-loops are permitted by policy.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cfg.allowLoops
}
