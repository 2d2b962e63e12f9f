package tightsim_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tightsim"
	"github.com/katalvlaran/tightsim/ball"
)

func centers(balls []*ball.Ball) []int {
	out := make([]int, len(balls))
	for i, b := range balls {
		out[i] = b.Center()
	}

	return out
}

// fixtureBalls extracts overlapping balls from the chain 0→1→2→3→4 and the
// 2-cycle 5⇄6.
func fixtureBalls(t *testing.T) []*ball.Ball {
	t.Helper()
	g := graphOf(t, []int{1, 1, 1, 1, 1, 1, 1},
		e(0, 1), e(1, 2), e(2, 3), e(3, 4), e(5, 6), e(6, 5))
	extract := func(center, radius int) *ball.Ball {
		b, err := ball.Extract(g, center, radius)
		require.NoError(t, err)
		return b
	}

	return []*ball.Ball{
		extract(1, 1), // {0,1,2}   ⊇ {0,1}
		extract(0, 1), // {0,1}
		extract(3, 1), // {2,3,4}   ⊇ {3,4}
		extract(4, 1), // {3,4}
		extract(2, 4), // {0..4}
		extract(6, 1), // {5,6}     twin of the next one
		extract(5, 1), // {5,6}
	}
}

func TestFilter_DropsSupersetsAndTwins(t *testing.T) {
	balls := fixtureBalls(t)
	before := slices.Clone(balls)

	got := tightsim.Filter(balls)
	assert.Equal(t, []int{0, 4, 5}, centers(got))
	assert.Equal(t, before, balls, "input must not be reordered")
}

func TestFilter_OrderIndependent(t *testing.T) {
	balls := fixtureBalls(t)
	want := centers(tightsim.Filter(balls))

	reversed := slices.Clone(balls)
	slices.Reverse(reversed)
	if diff := cmp.Diff(want, centers(tightsim.Filter(reversed))); diff != "" {
		t.Fatalf("order dependence (-forward +reversed):\n%s", diff)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	once := tightsim.Filter(fixtureBalls(t))
	twice := tightsim.Filter(once)
	assert.Equal(t, centers(once), centers(twice))
}

func TestFilter_NoRedundancyLeft(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		data := randomData(t, seed, 150)
		q := queryOf(t, []int{0, 1}, e(0, 1))
		balls, err := tightsim.Match(data, q)
		require.NoError(t, err)

		out := tightsim.Filter(balls)
		for i, a := range out {
			for j, b := range out {
				if i != j {
					assert.False(t, a.Contains(b), "seed %d: %v ⊇ %v", seed, a, b)
				}
			}
		}
	}
}

func TestFilter_DuplicatePointer(t *testing.T) {
	b := fixtureBalls(t)[1]
	got := tightsim.Filter([]*ball.Ball{b, b})
	require.Len(t, got, 1)
	assert.Same(t, b, got[0])
	assert.Empty(t, tightsim.Filter(nil))
}
