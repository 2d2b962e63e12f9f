package dualsim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tightsim/builder"
	"github.com/katalvlaran/tightsim/core"
	"github.com/katalvlaran/tightsim/dualsim"
)

// naive computes the greatest dual simulation inside the label/degree seed by
// recomputing every pair from scratch each round.
func naive(data, q core.View) [][]int {
	n := q.VertexCount()
	rel := make([]map[int]bool, n)
	for u := range n {
		rel[u] = map[int]bool{}
		for _, v := range data.Vertices() {
			if data.Label(v) == q.Label(u) &&
				core.OutDegree(data, v) >= core.OutDegree(q, u) &&
				core.InDegree(data, v) >= core.InDegree(q, u) {
				rel[u][v] = true
			}
		}
	}
	hit := func(w int, ids []int) bool {
		for _, d := range ids {
			if rel[w][d] {
				return true
			}
		}
		return false
	}
	for changed := true; changed; {
		changed = false
		next := make([]map[int]bool, n)
		for u := range n {
			next[u] = map[int]bool{}
			for v := range rel[u] {
				ok := true
				for _, w := range q.Successors(u) {
					ok = ok && hit(w, data.Successors(v))
				}
				for _, w := range q.Predecessors(u) {
					ok = ok && hit(w, data.Predecessors(v))
				}
				if ok {
					next[u][v] = true
				} else {
					changed = true
				}
			}
		}
		rel = next
	}

	out := make([][]int, n)
	for u := range n {
		if len(rel[u]) == 0 {
			return nil
		}
		for _, v := range data.Vertices() {
			if rel[u][v] {
				out[u] = append(out[u], v)
			}
		}
	}

	return out
}

func randomGraph(t testing.TB, seed int64, n int, p float64, labels int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]core.GraphOption{core.WithLoops()},
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithLabels(labels)},
		builder.RandomSparse(n, p))
	require.NoError(t, err)

	return g
}

// TestCompute_MatchesNaive checks maximality and soundness against the
// reference fixpoint on many random instances.
func TestCompute_MatchesNaive(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		data := randomGraph(t, seed, 40, 0.08, 3)
		q := randomGraph(t, seed*7919, 4, 0.4, 3)

		m, err := dualsim.Compute(data, q)
		require.NoError(t, err)
		want := naive(data, q)
		if want == nil {
			assert.True(t, m.Empty(), "seed %d: expected no match, got %v", seed, m)
			continue
		}
		require.False(t, m.Empty(), "seed %d", seed)
		for u := range want {
			assert.Equal(t, want[u], m.Candidates(u), "seed %d, query vertex %d", seed, u)
		}
	}
}

// TestCompute_Sound verifies every retained pair satisfies the dual conditions.
func TestCompute_Sound(t *testing.T) {
	for seed := int64(100); seed < 130; seed++ {
		data := randomGraph(t, seed, 60, 0.06, 2)
		q := randomGraph(t, seed+1, 3, 0.5, 2)

		m, err := dualsim.Compute(data, q)
		require.NoError(t, err)
		for u := range m.Len() {
			for _, v := range m.Candidates(u) {
				assert.Equal(t, q.Label(u), data.Label(v))
				for _, w := range q.Successors(u) {
					assert.True(t, anyIn(m, w, data.Successors(v)), "forward %d→%d at %d", u, w, v)
				}
				for _, w := range q.Predecessors(u) {
					assert.True(t, anyIn(m, w, data.Predecessors(v)), "backward %d→%d at %d", w, u, v)
				}
			}
		}
	}
}

// TestRefine_Fixpoint verifies refining a result is the identity.
func TestRefine_Fixpoint(t *testing.T) {
	data := randomGraph(t, 5, 80, 0.05, 2)
	q := graphOf(t, []int{0, 1, 0}, e(0, 1), e(1, 2))

	m, err := dualsim.Compute(data, q)
	require.NoError(t, err)
	again, err := dualsim.Refine(data, q, m)
	require.NoError(t, err)
	assert.True(t, m.Equal(again))
}

func anyIn(m *dualsim.CandidateMap, w int, ids []int) bool {
	for _, d := range ids {
		if m.Contains(w, d) {
			return true
		}
	}

	return false
}
