package mutate_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tightsim/builder"
	"github.com/katalvlaran/tightsim/converters"
	"github.com/katalvlaran/tightsim/core"
	"github.com/katalvlaran/tightsim/mutate"
	"github.com/katalvlaran/tightsim/query"
)

func baseQuery(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithLabelFn(func(i int) int { return 10 + i })},
		builder.Path(3))
	require.NoError(t, err)

	return g
}

func TestVariants_Shape(t *testing.T) {
	base := baseQuery(t)
	vs, err := mutate.Variants(base, 2, 3, mutate.WithSeed(5))
	require.NoError(t, err)
	require.Len(t, vs, 6)

	for i, v := range vs {
		assert.Equal(t, i, v.Version)
		assert.Equal(t, i/3, v.Round)
		size := 3 + i%3 + 1
		assert.Equal(t, size, v.Graph.VertexCount())
		assert.Equal(t, size-1, v.Graph.EdgeCount())
		assert.True(t, converters.Connected(v.Graph))

		newest := size - 1
		assert.Contains(t, []int{10, 11, 12}, v.Graph.Label(newest), "label copied from an existing vertex")
		assert.Equal(t, 1, core.OutDegree(v.Graph, newest)+core.InDegree(v.Graph, newest))

		_, err := query.New(v.Graph)
		assert.NoError(t, err)
	}
	assert.Equal(t, 3, base.VertexCount(), "base must not be mutated")
}

func TestVariants_RoundsStartFromBase(t *testing.T) {
	vs, err := mutate.Variants(baseQuery(t), 3, 2, mutate.WithSeed(1))
	require.NoError(t, err)
	for _, v := range vs {
		// the first increment of every round grows a fresh clone
		if v.Version%2 == 0 {
			assert.Equal(t, 4, v.Graph.VertexCount())
		}
	}
	// snapshots are independent graphs
	require.NoError(t, vs[0].Graph.AddVertex(10, 0))
	assert.Equal(t, 5, vs[1].Graph.VertexCount())
}

func TestVariants_Deterministic(t *testing.T) {
	a, err := mutate.Variants(baseQuery(t), 2, 4, mutate.WithSeed(99))
	require.NoError(t, err)
	b, err := mutate.Variants(baseQuery(t), 2, 4, mutate.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	for i := range a {
		assert.Equal(t, a[i].Graph.Edges(), b[i].Graph.Edges())
	}

	def1, err := mutate.Variants(baseQuery(t), 1, 4)
	require.NoError(t, err)
	def2, err := mutate.Variants(baseQuery(t), 1, 4, mutate.WithSeed(mutate.DefaultSeed))
	require.NoError(t, err)
	assert.Equal(t, def1[3].Graph.Edges(), def2[3].Graph.Edges())
}

func TestVariants_ForwardOnly(t *testing.T) {
	vs, err := mutate.Variants(baseQuery(t), 1, 5, mutate.WithSeed(3), mutate.WithForwardOnly())
	require.NoError(t, err)
	g := vs[len(vs)-1].Graph
	for id := 3; id < g.VertexCount(); id++ {
		assert.Len(t, g.Successors(id), 1, "new vertex %d points at its anchor", id)
		assert.Less(t, g.Successors(id)[0], id)
	}
}

func TestVariants_Errors(t *testing.T) {
	_, err := mutate.Variants(nil, 1, 1)
	assert.ErrorIs(t, err, mutate.ErrGraphNil)

	_, err = mutate.Variants(core.NewGraph(), 1, 1)
	assert.ErrorIs(t, err, mutate.ErrEmptyBase)

	sparse := core.NewGraph()
	require.NoError(t, sparse.AddVertex(2, 0))
	_, err = mutate.Variants(sparse, 1, 1)
	assert.ErrorIs(t, err, mutate.ErrSparseIDs)

	_, err = mutate.Variants(baseQuery(t), -1, 1)
	assert.ErrorIs(t, err, mutate.ErrNegativeCount)

	vs, err := mutate.Variants(baseQuery(t), 3, 0)
	require.NoError(t, err)
	assert.Empty(t, vs)

	assert.Panics(t, func() { mutate.WithRand(nil) })
}
