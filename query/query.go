package query

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tightsim/bfs"
	"github.com/katalvlaran/tightsim/converters"
	"github.com/katalvlaran/tightsim/core"
)

// Sentinel errors for query validation.
var (
	// ErrGraphNil is returned when New receives a nil graph.
	ErrGraphNil = errors.New("query: graph is nil")

	// ErrEmptyQuery is returned for a query without vertices.
	ErrEmptyQuery = errors.New("query: graph has no vertices")

	// ErrSparseIDs is returned when query vertex IDs are not exactly 0..n-1.
	ErrSparseIDs = errors.New("query: vertex IDs must be dense (0..n-1)")

	// ErrDisconnected is returned when the query has more than one weakly
	// connected component, so no radius or center exists.
	ErrDisconnected = errors.New("query: graph is not connected")
)

// Query is an immutable query graph with its precomputed radius and center.
type Query struct {
	g      core.View
	edges  []core.Edge
	ecc    []int
	radius int
	center int
}

// New validates g and computes its radius and selected center.
//
// Implementation:
//   - Stage 1: reject nil, empty and sparse-ID graphs.
//   - Stage 2: check weak connectivity (gonum topo via converters).
//   - Stage 3: one undirected BFS per vertex gives every eccentricity; keep
//     the first (smallest ID) vertex of minimum eccentricity.
//
// The caller must not mutate g after New returns.
func New(g core.View) (*Query, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, ErrEmptyQuery
	}
	if g.Order() != n {
		return nil, fmt.Errorf("%w: %d vertices over ID space %d", ErrSparseIDs, n, g.Order())
	}
	if comps := converters.Components(g); len(comps) != 1 {
		return nil, fmt.Errorf("%w: %d components", ErrDisconnected, len(comps))
	}

	q := &Query{
		g:      g,
		edges:  core.EdgesOf(g),
		ecc:    make([]int, n),
		center: -1,
	}
	for u := 0; u < n; u++ {
		res, err := bfs.BFS(g, u, bfs.WithUndirected())
		if err != nil {
			return nil, fmt.Errorf("query: eccentricity of %d: %w", u, err)
		}
		q.ecc[u] = res.Eccentricity()
		if q.center < 0 || q.ecc[u] < q.radius {
			q.center, q.radius = u, q.ecc[u]
		}
	}

	return q, nil
}

// MustNew is New that panics on error. Intended for fixtures and examples.
func MustNew(g core.View) *Query {
	q, err := New(g)
	if err != nil {
		panic(err)
	}

	return q
}

// Graph returns the underlying query graph (read-only).
func (q *Query) Graph() core.View { return q.g }

// Radius returns the minimum eccentricity over the query's undirected connectivity.
func (q *Query) Radius() int { return q.radius }

// Center returns the selected center: the smallest-ID vertex of minimum eccentricity.
func (q *Query) Center() int { return q.center }

// Size returns the number of query vertices.
func (q *Query) Size() int { return len(q.ecc) }

// Eccentricity returns the eccentricity of query vertex u.
func (q *Query) Eccentricity(u int) int { return q.ecc[u] }

// Edges returns all query edges ordered by (From, To). The slice is shared; do not modify.
func (q *Query) Edges() []core.Edge { return q.edges }
