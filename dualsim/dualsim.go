package dualsim

import (
	"fmt"

	"github.com/katalvlaran/tightsim/core"
)

// Compute returns the dual simulation of query q over data, or the empty
// CandidateMap when none exists.
//
// Implementation:
//   - Stage 1: validate inputs (nil graphs, dense query IDs, options).
//   - Stage 2: Seed by label and degree.
//   - Stage 3: Refine to the greatest fixpoint.
//
// Complexity: see package documentation.
func Compute(data, q core.View, opts ...Option) (*CandidateMap, error) {
	if err := validate(data, q); err != nil {
		return nil, err
	}
	seed := Seed(data, q)

	return Refine(data, q, seed, opts...)
}

// Seed returns the initial candidate sets: S(u) holds every data vertex v with
// label(v) == label(u), out-degree(v) >= out-degree(u) and in-degree(v) >= in-degree(u).
// The result is the empty map if some query vertex has no such v.
// q must have dense IDs; violations yield the empty map.
func Seed(data, q core.View) *CandidateMap {
	if data == nil || q == nil || q.VertexCount() == 0 || q.Order() != q.VertexCount() {
		return emptyMap(orderOf(data))
	}
	n := q.VertexCount()
	m := newCandidateMap(n, data.Order())

	// group query vertices by label so each data vertex is tested only against
	// query vertices it could possibly match
	byLabel := make(map[int][]int, n)
	for u := range n {
		l := q.Label(u)
		byLabel[l] = append(byLabel[l], u)
	}
	for _, v := range data.Vertices() {
		us, ok := byLabel[data.Label(v)]
		if !ok {
			continue
		}
		out, in := core.OutDegree(data, v), core.InDegree(data, v)
		for _, u := range us {
			if out >= core.OutDegree(q, u) && in >= core.InDegree(q, u) {
				m.add(u, v)
			}
		}
	}
	if m.anyEmpty() {
		return emptyMap(data.Order())
	}

	return m
}

// Refine shrinks seed to the greatest dual simulation of q over g contained in it.
// The seed is not modified. Every set of seed must be defined over at least
// g.Order() IDs (ErrOrderMismatch otherwise).
//
// Each pass visits every query edge u→u' once (in (From, To) order) and
//   - removes v from S(u) if no successor of v is in S(u');
//   - removes v' from S(u') if no predecessor of v' is in S(u).
//
// Removals take effect immediately, so later edges in the same pass already
// see them. The loop ends after the first pass without removals. As soon as
// any set becomes empty, the empty map is returned.
//
// Cancellation (WithContext) is checked before every pass; OnPass is invoked
// after every completed pass.
func Refine(g, q core.View, seed *CandidateMap, opts ...Option) (*CandidateMap, error) {
	if err := validate(g, q); err != nil {
		return nil, err
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if seed.Empty() {
		return emptyMap(g.Order()), nil
	}
	if seed.Len() != q.VertexCount() {
		return nil, fmt.Errorf("%w: seed covers %d query vertices, query has %d",
			ErrOrderMismatch, seed.Len(), q.VertexCount())
	}
	if seed.Order() < g.Order() {
		return nil, fmt.Errorf("%w: seed order %d < graph order %d",
			ErrOrderMismatch, seed.Order(), g.Order())
	}

	m := seed.Clone()
	edges := core.EdgesOf(q)
	for pass := 1; ; pass++ {
		if err = o.Ctx.Err(); err != nil {
			return nil, err
		}
		if o.MaxPasses > 0 && pass > o.MaxPasses {
			return nil, fmt.Errorf("%w: no fixpoint after %d passes", ErrPassLimit, o.MaxPasses)
		}

		changed := false
		for _, e := range edges {
			if m.pruneForward(g, e.From, e.To) {
				changed = true
			}
			if m.sizes[e.From] == 0 {
				return emptyMap(seed.Order()), nil
			}
			if m.pruneBackward(g, e.From, e.To) {
				changed = true
			}
			if m.sizes[e.To] == 0 {
				return emptyMap(seed.Order()), nil
			}
		}
		o.OnPass(pass, m.sizes)
		if !changed {
			return m, nil
		}
	}
}

// pruneForward drops every v ∈ S(u) without a successor in S(w).
func (m *CandidateMap) pruneForward(g core.View, u, w int) bool {
	return m.prune(u, w, g.Successors)
}

// pruneBackward drops every v ∈ S(w) without a predecessor in S(u).
func (m *CandidateMap) pruneBackward(g core.View, u, w int) bool {
	return m.prune(w, u, g.Predecessors)
}

// prune drops every v ∈ S(u) none of whose neighbors(v) is in S(w).
func (m *CandidateMap) prune(u, w int, neighbors func(int) []int) bool {
	changed := false
	s := m.sets[u]
	for v := s.OneFrom(0); v >= 0; v = s.OneFrom(v + 1) {
		if !m.hitsAny(w, neighbors(v)) {
			m.remove(u, v)
			changed = true
		}
	}

	return changed
}

func (m *CandidateMap) hitsAny(w int, ids []int) bool {
	for _, d := range ids {
		if m.Contains(w, d) {
			return true
		}
	}

	return false
}

func validate(data, q core.View) error {
	if data == nil {
		return ErrGraphNil
	}
	if q == nil {
		return ErrQueryNil
	}
	if q.VertexCount() != q.Order() {
		return fmt.Errorf("%w: %d vertices over ID space %d", ErrQueryNotDense, q.VertexCount(), q.Order())
	}

	return nil
}

func orderOf(v core.View) int {
	if v == nil {
		return 0
	}

	return v.Order()
}
