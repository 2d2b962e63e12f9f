package dualsim

import (
	"github.com/katalvlaran/tightsim/core"
)

// MatchGraph returns the subgraph of data supported by m: every data vertex in
// some candidate set, and every data edge v→v' for which a query edge u→u'
// has v ∈ S(u) and v' ∈ S(u'). Labels are carried over.
//
// An empty m yields an empty graph. data is not mutated.
//
// Complexity: O(V + E·m_q) where m_q is the number of query edges.
func MatchGraph(data, q core.View, m *CandidateMap) (*core.SmallGraph, error) {
	if err := validate(data, q); err != nil {
		return nil, err
	}
	if m.Empty() {
		return core.NewSmallGraph(core.WithLoops()), nil
	}
	edges := core.EdgesOf(q)

	return core.Subgraph(data, m.InAny, func(from, to int) bool {
		return Supports(edges, m, from, to)
	}), nil
}

// Supports reports whether some query edge u→u' in edges has from ∈ S(u) and to ∈ S(u').
func Supports(edges []core.Edge, m *CandidateMap, from, to int) bool {
	for _, e := range edges {
		if m.Contains(e.From, from) && m.Contains(e.To, to) {
			return true
		}
	}

	return false
}
