// SPDX-License-Identifier: MIT
//
// File: small_graph.go
// Role: Map-backed labeled digraph for sparse ID subsets (match graphs, balls).
// Determinism:
//   - ids, out[v] and in[v] are kept sorted ascending.
// Concurrency:
//   - All state protected by s.mu, same model as Graph.

package core

import (
	"fmt"
	"sort"
	"sync"
)

// SmallGraph is a labeled digraph whose vertex IDs are an arbitrary subset of a
// larger ID space. It keeps the IDs of the graph it was carved from, so a
// vertex of a SmallGraph can be correlated with the full data graph directly.
type SmallGraph struct {
	mu sync.RWMutex

	cfg graphConfig

	ids    []int // present IDs, ascending
	labels map[int]int
	out    map[int][]int
	in     map[int][]int

	order     int // max ID + 1
	edgeCount int
}

// NewSmallGraph creates an empty SmallGraph with the given options.
// Complexity: O(1)
func NewSmallGraph(opts ...GraphOption) *SmallGraph {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return newSmallGraph(cfg)
}

func newSmallGraph(cfg graphConfig) *SmallGraph {
	return &SmallGraph{
		cfg:    cfg,
		labels: make(map[int]int),
		out:    make(map[int][]int),
		in:     make(map[int][]int),
	}
}

// AddVertex inserts vertex id with the given label (idempotent).
//
// Errors:
//   - ErrNegativeVertexID: if id < 0.
//   - ErrLabelConflict: if id exists with a different label.
//
// Complexity: O(V) worst case for the sorted ID insertion.
func (s *SmallGraph) AddVertex(id, label int) error {
	if id < 0 {
		return fmt.Errorf("AddVertex(%d): %w", id, ErrNegativeVertexID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if have, ok := s.labels[id]; ok {
		if have != label {
			return fmt.Errorf("AddVertex(%d): have label %d, got %d: %w", id, have, label, ErrLabelConflict)
		}

		return nil
	}
	s.labels[id] = label
	s.ids, _ = insertSorted(s.ids, id)
	if id >= s.order {
		s.order = id + 1
	}

	return nil
}

// AddEdge inserts the directed edge from→to; duplicates collapse.
//
// Errors:
//   - ErrVertexNotFound: if either endpoint is absent.
//   - ErrLoopNotAllowed: if from == to and loops are disabled.
//
// Complexity: O(d).
func (s *SmallGraph) AddEdge(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.labels[from]; !ok {
		return fmt.Errorf("AddEdge(%d,%d): source: %w", from, to, ErrVertexNotFound)
	}
	if _, ok := s.labels[to]; !ok {
		return fmt.Errorf("AddEdge(%d,%d): target: %w", from, to, ErrVertexNotFound)
	}
	if from == to && !s.cfg.allowLoops {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrLoopNotAllowed)
	}
	s.link(from, to)

	return nil
}

// link records from→to without validation. Caller owns s exclusively
// (construction) or holds the write lock.
func (s *SmallGraph) link(from, to int) {
	var added bool
	s.out[from], added = insertSorted(s.out[from], to)
	if !added {
		return
	}
	s.in[to], _ = insertSorted(s.in[to], from)
	s.edgeCount++
}

// recomputeOrder refreshes ids and order from labels. Used by bulk
// constructors that fill labels directly.
func (s *SmallGraph) recomputeOrder() {
	s.ids = s.ids[:0]
	s.order = 0
	for id := range s.labels {
		s.ids = append(s.ids, id)
	}
	sort.Ints(s.ids)
	if n := len(s.ids); n > 0 {
		s.order = s.ids[n-1] + 1
	}
}

// RemoveVertex deletes id and every edge incident to it.
//
// Errors:
//   - ErrVertexNotFound: if id is absent.
//
// Complexity: O(V + d_in + d_out) including neighbor slice updates.
func (s *SmallGraph) RemoveVertex(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.labels[id]; !ok {
		return fmt.Errorf("RemoveVertex(%d): %w", id, ErrVertexNotFound)
	}
	for _, to := range s.out[id] {
		if to != id {
			s.in[to] = removeSorted(s.in[to], id)
		}
		s.edgeCount--
	}
	for _, from := range s.in[id] {
		if from != id {
			s.out[from] = removeSorted(s.out[from], id)
			s.edgeCount--
		}
	}
	delete(s.out, id)
	delete(s.in, id)
	delete(s.labels, id)
	s.ids = removeSorted(s.ids, id)
	if n := len(s.ids); n == 0 {
		s.order = 0
	} else {
		s.order = s.ids[n-1] + 1
	}

	return nil
}

// RemoveEdge deletes the directed edge from→to.
//
// Errors:
//   - ErrEdgeNotFound: if the edge is absent.
//
// Complexity: O(d_out(from) + d_in(to)).
func (s *SmallGraph) RemoveEdge(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !containsSorted(s.out[from], to) {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", from, to, ErrEdgeNotFound)
	}
	s.out[from] = removeSorted(s.out[from], to)
	s.in[to] = removeSorted(s.in[to], from)
	s.edgeCount--

	return nil
}

// VertexCount returns the number of present vertices.
func (s *SmallGraph) VertexCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.ids)
}

// Order returns max ID + 1 (0 for an empty graph).
func (s *SmallGraph) Order() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.order
}

// Vertices returns a copy of the present IDs, ascending.
func (s *SmallGraph) Vertices() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]int(nil), s.ids...)
}

// HasVertex reports whether id is present.
func (s *SmallGraph) HasVertex(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.labels[id]

	return ok
}

// Label returns the label of id, or NoLabel if absent.
func (s *SmallGraph) Label(id int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.labels[id]
	if !ok {
		return NoLabel
	}

	return l
}

// Successors returns the out-neighbors of id, ascending (read-only).
func (s *SmallGraph) Successors(id int) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.out[id]
}

// Predecessors returns the in-neighbors of id, ascending (read-only).
func (s *SmallGraph) Predecessors(id int) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.in[id]
}

// HasEdge reports whether from→to exists.
func (s *SmallGraph) HasEdge(from, to int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return containsSorted(s.out[from], to)
}

// EdgeCount returns the number of distinct directed edges.
func (s *SmallGraph) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.edgeCount
}

// Edges returns every edge ordered by (From, To) ascending.
func (s *SmallGraph) Edges() []Edge {
	return EdgesOf(s)
}
