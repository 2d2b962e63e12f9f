// SPDX-License-Identifier: MIT
//
// File: ball.go
// Role: Ball value type, extraction and the dual filter.
// Determinism:
//   - Vertices and edges are always reported in ascending order.
// Concurrency:
//   - Extract only reads the match graph and may run concurrently.
//   - DualFilter mutates its receiver; call it from the owning goroutine only.
// AI-HINT (file):
//   - A ball's vertex set is the identity used by redundancy filtering;
//     see Contains and SameVertices.

package ball

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tightsim/bfs"
	"github.com/katalvlaran/tightsim/core"
	"github.com/katalvlaran/tightsim/dualsim"
	"github.com/katalvlaran/tightsim/query"
)

// Ball is a bounded neighborhood of the match graph around a center.
type Ball struct {
	center int
	radius int
	g      *core.SmallGraph
}

// Extract returns the ball of the given radius around center in mg.
//
// Implementation:
//   - Stage 1: undirected BFS from center bounded by radius.
//   - Stage 2: induced subgraph of mg on the reached vertices; edges keep
//     their direction.
func Extract(mg core.View, center, radius int, opts ...Option) (*Ball, error) {
	if mg == nil {
		return nil, ErrGraphNil
	}
	if radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeRadius, radius)
	}
	o := resolve(opts)

	res, err := bfs.BFS(mg, center,
		bfs.WithContext(o.Ctx),
		bfs.WithUndirected(),
		bfs.WithMaxDepth(radius),
	)
	if errors.Is(err, bfs.ErrStartVertexNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrCenterNotFound, center)
	}
	if err != nil {
		return nil, err
	}

	return &Ball{
		center: center,
		radius: radius,
		g:      core.InducedSubgraph(mg, res.Reached),
	}, nil
}

// DualFilter validates the ball against q, starting from the global candidate
// map m. It reports whether the ball is accepted; an accepted ball has been
// pruned in place (see package documentation). Errors are returned only for
// invalid input or cancellation.
func (b *Ball) DualFilter(q *query.Query, m *dualsim.CandidateMap, opts ...Option) (bool, error) {
	if q == nil {
		return false, ErrQueryNil
	}
	if m.Empty() {
		return false, nil
	}
	o := resolve(opts)
	qc := q.Center()

	seed := m.Restrict(b.g.HasVertex)
	if !seed.Contains(qc, b.center) {
		return false, nil
	}
	refined, err := dualsim.Refine(b.g, q.Graph(), seed, dualsim.WithContext(o.Ctx))
	if err != nil {
		return false, err
	}
	if !refined.Contains(qc, b.center) {
		return false, nil
	}

	edges := q.Edges()
	supported := func(from, to int) bool {
		return b.g.HasEdge(from, to) && dualsim.Supports(edges, refined, from, to)
	}
	reach, err := bfs.BFS(b.g, b.center,
		bfs.WithContext(o.Ctx),
		bfs.WithUndirected(),
		bfs.WithFilterNeighbor(func(curr, nbr int) bool {
			return refined.InAny(nbr) && (supported(curr, nbr) || supported(nbr, curr))
		}),
	)
	if err != nil {
		return false, err
	}
	b.prune(reach.Reached, supported)

	return true, nil
}

// prune removes, in place, every vertex outside keep and every remaining
// edge that fails keepEdge.
func (b *Ball) prune(keep func(id int) bool, keepEdge func(from, to int) bool) {
	for _, id := range b.g.Vertices() {
		if !keep(id) {
			_ = b.g.RemoveVertex(id)
		}
	}
	for _, e := range b.g.Edges() {
		if !keepEdge(e.From, e.To) {
			_ = b.g.RemoveEdge(e.From, e.To)
		}
	}
}

// Center returns the data vertex the ball was extracted around.
func (b *Ball) Center() int { return b.center }

// Radius returns the extraction radius.
func (b *Ball) Radius() int { return b.radius }

// Graph returns the ball's subgraph (read-only).
func (b *Ball) Graph() core.View { return b.g }

// Vertices returns the ball's vertex IDs ascending.
func (b *Ball) Vertices() []int { return b.g.Vertices() }

// Edges returns the ball's edges ordered by (From, To).
func (b *Ball) Edges() []core.Edge { return b.g.Edges() }

// VertexCount returns the number of vertices in the ball.
func (b *Ball) VertexCount() int { return b.g.VertexCount() }

// Has reports whether data vertex id belongs to the ball.
func (b *Ball) Has(id int) bool { return b.g.HasVertex(id) }

// Contains reports whether b's vertex set is a superset of other's.
// A ball contains itself.
func (b *Ball) Contains(other *Ball) bool {
	if other.VertexCount() > b.VertexCount() {
		return false
	}
	for _, id := range other.Vertices() {
		if !b.g.HasVertex(id) {
			return false
		}
	}

	return true
}

// SameVertices reports whether b and other have identical vertex sets.
func (b *Ball) SameVertices(other *Ball) bool {
	return b.VertexCount() == other.VertexCount() && b.Contains(other)
}

// String renders the ball as "ball(center=c radius=r vertices=[...])".
func (b *Ball) String() string {
	return fmt.Sprintf("ball(center=%d radius=%d vertices=%v)", b.center, b.radius, b.Vertices())
}
