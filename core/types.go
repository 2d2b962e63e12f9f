// Package core defines the central Graph and SmallGraph types, the Edge value,
// GraphOption, sentinel errors, and the NewGraph constructor.
//
// All mutating APIs take the graph's write lock; all queries take the read lock,
// so a graph can be built by one goroutine and then read by many.
//
// Errors:
//
//	ErrNegativeVertexID - vertex ID is negative.
//	ErrVertexNotFound   - requested vertex does not exist.
//	ErrLabelConflict    - vertex re-added with a different label.
//	ErrLoopNotAllowed   - self-loop when loops are disabled.
//	ErrEdgeNotFound     - requested edge does not exist.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexID indicates that a vertex ID below zero was supplied.
	ErrNegativeVertexID = errors.New("core: vertex ID is negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLabelConflict indicates AddVertex was called for an existing vertex with another label.
	ErrLabelConflict = errors.New("core: vertex already present with a different label")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEdgeNotFound indicates RemoveEdge referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// NoLabel is returned by Label for absent vertices.
const NoLabel = -1

// Edge is a directed ordered pair of vertex IDs.
type Edge struct {
	// From is the source vertex ID.
	From int

	// To is the destination vertex ID.
	To int
}

// GraphOption configures behavior of a Graph or SmallGraph before creation.
type GraphOption func(c *graphConfig)

// graphConfig holds construction-time policy flags shared by both representations.
type graphConfig struct {
	allowLoops bool // allow self-loops
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(c *graphConfig) { c.allowLoops = true }
}

// Graph is the dense, slice-backed labeled digraph.
//
// Vertex IDs index directly into labels/out/in. present marks which slots hold
// a vertex; IDs may be added out of order, leaving absent gaps until filled.
// out[v] and in[v] are kept sorted ascending and free of duplicates.
type Graph struct {
	mu sync.RWMutex // guards every field below

	cfg graphConfig

	present []bool
	labels  []int
	out     [][]int
	in      [][]int

	vertexCount int
	edgeCount   int
}

// NewGraph creates an empty Graph with the given options.
// By default, self-loops are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(&g.cfg)
	}

	return g
}
