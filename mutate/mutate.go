// Package mutate derives larger query graphs from an existing one by
// repeatedly attaching new vertices, for benchmarking matchers on families of
// related queries.
//
// Every increment appends vertex n (n = current vertex count) whose label is
// copied from a uniformly chosen existing vertex, and links it by one edge to
// another uniformly chosen existing vertex. The edge points new→old or
// old→new with equal probability (WithForwardOnly fixes new→old). A connected
// base therefore yields connected variants.
//
// All randomness comes from the configured *rand.Rand; the same seed, base
// and counts always produce the same variants.
package mutate

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tightsim/core"
)

// Sentinel errors for mutation.
var (
	// ErrGraphNil is returned when the base graph is nil.
	ErrGraphNil = errors.New("mutate: base graph is nil")

	// ErrEmptyBase is returned when the base graph has no vertices.
	ErrEmptyBase = errors.New("mutate: base graph has no vertices")

	// ErrSparseIDs is returned when base IDs are not exactly 0..n-1.
	ErrSparseIDs = errors.New("mutate: base vertex IDs must be dense")

	// ErrNegativeCount is returned for negative perSize or perInc.
	ErrNegativeCount = errors.New("mutate: counts cannot be negative")
)

// DefaultSeed seeds the generator when neither WithSeed nor WithRand is given.
const DefaultSeed int64 = 1

// Direction of the edge linking a new vertex.
const (
	Forward  = 0 // new → old
	Backward = 1 // old → new
)

// Option configures Variants.
type Option func(*config)

type config struct {
	rng         *rand.Rand
	forwardOnly bool
}

// WithSeed uses a fresh generator seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("mutate: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithForwardOnly links every new vertex new → old.
func WithForwardOnly() Option {
	return func(c *config) { c.forwardOnly = true }
}

// Variant is one derived query.
type Variant struct {
	// Version numbers variants 0, 1, 2, ... in generation order.
	Version int
	// Round is the clone of the base this variant grew from (0..perSize-1).
	Round int
	// Graph is the grown query; it shares nothing with the base.
	Graph *core.Graph
}

// Variants runs perSize rounds; each round clones base and applies perInc
// increments, emitting a snapshot after every increment. The result has
// perSize·perInc variants whose sizes within a round are base+1 .. base+perInc.
func Variants(base *core.Graph, perSize, perInc int, opts ...Option) ([]Variant, error) {
	if base == nil {
		return nil, ErrGraphNil
	}
	n := base.VertexCount()
	if n == 0 {
		return nil, ErrEmptyBase
	}
	if base.Order() != n {
		return nil, fmt.Errorf("%w: %d vertices over ID space %d", ErrSparseIDs, n, base.Order())
	}
	if perSize < 0 || perInc < 0 {
		return nil, fmt.Errorf("%w: perSize=%d perInc=%d", ErrNegativeCount, perSize, perInc)
	}
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	out := make([]Variant, 0, perSize*perInc)
	for round := 0; round < perSize; round++ {
		g := base.Clone()
		for inc := 0; inc < perInc; inc++ {
			if err := grow(g, cfg); err != nil {
				return nil, fmt.Errorf("mutate: round %d increment %d: %w", round, inc, err)
			}
			out = append(out, Variant{Version: len(out), Round: round, Graph: g.Clone()})
		}
	}

	return out, nil
}

// grow attaches one new vertex to g.
func grow(g *core.Graph, cfg config) error {
	n := g.VertexCount()
	label := g.Label(cfg.rng.Intn(n))
	anchor := cfg.rng.Intn(n)
	dir := Forward
	if !cfg.forwardOnly {
		dir = cfg.rng.Intn(2)
	}

	if err := g.AddVertex(n, label); err != nil {
		return err
	}
	if dir == Forward {
		return g.AddEdge(n, anchor)
	}

	return g.AddEdge(anchor, n)
}
