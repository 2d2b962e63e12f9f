package ball_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tightsim/ball"
	"github.com/katalvlaran/tightsim/bfs"
	"github.com/katalvlaran/tightsim/builder"
	"github.com/katalvlaran/tightsim/core"
	"github.com/katalvlaran/tightsim/dualsim"
	"github.com/katalvlaran/tightsim/query"
)

const (
	labelA = iota + 1
	labelB
	labelC
	labelD
)

func graphOf(t testing.TB, labels []int, edges ...core.Edge) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithLoops())
	for id, l := range labels {
		require.NoError(t, g.AddVertex(id, l))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.From, e.To))
	}

	return g
}

func e(from, to int) core.Edge { return core.Edge{From: from, To: to} }

// prepare runs dual simulation and returns the match graph with its inputs.
func prepare(t *testing.T, data *core.Graph, qg *core.Graph) (*query.Query, *dualsim.CandidateMap, *core.SmallGraph) {
	t.Helper()
	q, err := query.New(qg)
	require.NoError(t, err)
	m, err := dualsim.Compute(data, q.Graph())
	require.NoError(t, err)
	mg, err := dualsim.MatchGraph(data, q.Graph(), m)
	require.NoError(t, err)

	return q, m, mg
}

func TestExtract_Errors(t *testing.T) {
	g := graphOf(t, []int{labelA, labelB}, e(0, 1))

	_, err := ball.Extract(nil, 0, 1)
	assert.ErrorIs(t, err, ball.ErrGraphNil)
	_, err = ball.Extract(g, 0, -1)
	assert.ErrorIs(t, err, ball.ErrNegativeRadius)
	_, err = ball.Extract(g, 5, 1)
	assert.ErrorIs(t, err, ball.ErrCenterNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ball.Extract(g, 0, 1, ball.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtract_KeepsDirectionAndRadius(t *testing.T) {
	// 0→1←2→3←4 : undirected path, alternating directions
	g := graphOf(t, []int{1, 1, 1, 1, 1}, e(0, 1), e(2, 1), e(2, 3), e(4, 3))

	b, err := ball.Extract(g, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Center())
	assert.Equal(t, 1, b.Radius())
	assert.Equal(t, []int{1, 2, 3}, b.Vertices())
	assert.Equal(t, []core.Edge{{From: 2, To: 1}, {From: 2, To: 3}}, b.Edges())

	zero, err := ball.Extract(g, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, zero.Vertices())
	assert.Equal(t, "ball(center=2 radius=0 vertices=[2])", zero.String())
}

// TestExtract_Bounded checks that every ball vertex lies within the radius
// and every in-radius vertex is present.
func TestExtract_Bounded(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(3)},
		builder.RandomSparse(120, 0.02))
	require.NoError(t, err)

	for _, center := range []int{0, 17, 64, 119} {
		for r := 0; r <= 3; r++ {
			b, err := ball.Extract(g, center, r)
			require.NoError(t, err)
			dist, err := bfs.BFS(g, center, bfs.WithUndirected())
			require.NoError(t, err)
			for _, v := range g.Vertices() {
				d, ok := dist.Depth[v]
				assert.Equal(t, ok && d <= r, b.Has(v), "center %d r %d vertex %d", center, r, v)
			}
			for _, edge := range b.Edges() {
				assert.True(t, g.HasEdge(edge.From, edge.To))
			}
		}
	}
}

func TestDualFilter_AlternatingAccepts(t *testing.T) {
	data := graphOf(t, []int{labelA, labelB, labelA, labelB}, e(0, 1), e(1, 2), e(2, 3))
	q, m, mg := prepare(t, data, graphOf(t, []int{labelA, labelB}, e(0, 1)))

	for center, want := range map[int][]int{0: {0, 1}, 2: {2, 3}} {
		b, err := ball.Extract(mg, center, q.Radius())
		require.NoError(t, err)
		ok, err := b.DualFilter(q, m)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, want, b.Vertices())
	}

	// a B vertex is not a candidate of the query center
	b, err := ball.Extract(mg, 1, q.Radius())
	require.NoError(t, err)
	ok, err := b.DualFilter(q, m)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDualFilter_RejectsWhenBallCutsWitnesses(t *testing.T) {
	// data 6-cycle A→B→C→A→B→C dual-simulates the query 3-cycle globally,
	// but no radius-1 ball is closed under it
	data := graphOf(t, []int{labelA, labelB, labelC, labelA, labelB, labelC},
		e(0, 1), e(1, 2), e(2, 3), e(3, 4), e(4, 5), e(5, 0))
	q, m, mg := prepare(t, data, graphOf(t, []int{labelA, labelB, labelC}, e(0, 1), e(1, 2), e(2, 0)))
	require.False(t, m.Empty())
	require.Equal(t, 1, q.Radius())

	for _, center := range m.Candidates(q.Center()) {
		b, err := ball.Extract(mg, center, q.Radius())
		require.NoError(t, err)
		before := b.Vertices()
		ok, err := b.DualFilter(q, m)
		require.NoError(t, err)
		assert.False(t, ok, "center %d", center)
		assert.Equal(t, before, b.Vertices(), "rejected ball must be untouched")
	}
}

func TestDualFilter_PrunesUnsupportedVertices(t *testing.T) {
	// query A→B→C→D (center 1, radius 2). 5B is in the ball around 1 but its
	// A predecessor 4 is three hops away.
	data := graphOf(t, []int{labelA, labelB, labelC, labelD, labelA, labelB},
		e(0, 1), e(1, 2), e(2, 3), e(4, 5), e(5, 2))
	q, m, mg := prepare(t, data, graphOf(t, []int{labelA, labelB, labelC, labelD},
		e(0, 1), e(1, 2), e(2, 3)))
	require.Equal(t, 1, q.Center())
	require.Equal(t, 2, q.Radius())

	b, err := ball.Extract(mg, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 5}, b.Vertices())
	sub := b.Graph()

	ok, err := b.DualFilter(q, m)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, sub, b.Graph(), "pruned in place")
	assert.Equal(t, []int{0, 1, 2, 3}, b.Vertices())
	assert.Equal(t, 3, len(b.Edges()))
	assert.False(t, b.Graph().HasEdge(5, 2))
	assert.Empty(t, b.Graph().Predecessors(0))
}

func TestDualFilter_DropsUnsupportedEdgeBetweenKeptVertices(t *testing.T) {
	// 1→0 (B→A) matches no query edge; both endpoints stay. The ball is
	// taken from the data graph, which still carries that edge.
	data := graphOf(t, []int{labelA, labelB}, e(0, 1), e(1, 0))
	q, m, _ := prepare(t, data, graphOf(t, []int{labelA, labelB}, e(0, 1)))
	b, err := ball.Extract(data, 0, q.Radius())
	require.NoError(t, err)
	require.Equal(t, 2, len(b.Edges()))

	ok, err := b.DualFilter(q, m)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, b.Vertices())
	assert.Equal(t, []core.Edge{{From: 0, To: 1}}, b.Edges())
}

func TestDualFilter_KeepsCenterComponent(t *testing.T) {
	// two copies of A→B→C→D, the second (4..7) reachable from the first only
	// through the unsupported edges 1→5 (B→B) and 7→2 (D→C)
	data := graphOf(t, []int{labelA, labelB, labelC, labelD, labelA, labelB, labelC, labelD},
		e(0, 1), e(1, 2), e(2, 3), e(4, 5), e(5, 6), e(6, 7), e(1, 5), e(7, 2))
	q, err := query.New(graphOf(t, []int{labelA, labelB, labelC, labelD}, e(0, 1), e(1, 2), e(2, 3)))
	require.NoError(t, err)
	m, err := dualsim.Compute(data, q.Graph())
	require.NoError(t, err)

	b, err := ball.Extract(data, 1, q.Radius())
	require.NoError(t, err)
	require.Equal(t, 8, b.VertexCount())

	ok, err := b.DualFilter(q, m)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3}, b.Vertices())
	assert.Equal(t, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}}, b.Edges())
}

func TestDualFilter_Inputs(t *testing.T) {
	data := graphOf(t, []int{labelA, labelB}, e(0, 1))
	q, m, mg := prepare(t, data, graphOf(t, []int{labelA, labelB}, e(0, 1)))
	b, err := ball.Extract(mg, 0, 1)
	require.NoError(t, err)

	_, err = b.DualFilter(nil, m)
	assert.ErrorIs(t, err, ball.ErrQueryNil)

	ok, err := b.DualFilter(q, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = b.DualFilter(q, m, ball.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBall_Containment(t *testing.T) {
	g := graphOf(t, []int{1, 1, 1, 1}, e(0, 1), e(1, 2), e(2, 3))
	big, err := ball.Extract(g, 1, 2)
	require.NoError(t, err)
	small, err := ball.Extract(g, 0, 1)
	require.NoError(t, err)
	other, err := ball.Extract(g, 3, 1)
	require.NoError(t, err)
	twin, err := ball.Extract(g, 2, 2)
	require.NoError(t, err)

	assert.True(t, big.Contains(small))
	assert.True(t, big.Contains(big))
	assert.False(t, small.Contains(big))
	assert.False(t, small.Contains(other))
	assert.True(t, big.SameVertices(twin))
	assert.False(t, big.SameVertices(small))
}
