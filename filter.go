package tightsim

import (
	"slices"

	"github.com/katalvlaran/tightsim/ball"
)

// Filter removes redundant balls: a ball is dropped if another ball's vertex
// set is contained in its own. Of several balls with equal vertex sets only
// the one with the smallest center (then the earliest position) survives.
//
// Containment is always tested against the complete input, never against a
// partially filtered result, so the output does not depend on input order
// beyond the tie-break. The input slice and its balls are not modified; the
// result is sorted by center.
//
// Complexity: O(k²·V_b) for k balls of at most V_b vertices.
func Filter(balls []*ball.Ball) []*ball.Ball {
	snapshot := slices.Clone(balls)
	out := make([]*ball.Ball, 0, len(snapshot))
	for i, a := range snapshot {
		if !redundant(snapshot, i, a) {
			out = append(out, a)
		}
	}
	slices.SortStableFunc(out, func(a, b *ball.Ball) int { return a.Center() - b.Center() })

	return out
}

// redundant reports whether snapshot holds another ball contained in a.
func redundant(snapshot []*ball.Ball, i int, a *ball.Ball) bool {
	for j, b := range snapshot {
		if i == j || !a.Contains(b) {
			continue
		}
		if !b.SameVertices(a) {
			return true
		}
		// equal sets: only the representative survives
		if b.Center() < a.Center() || (b.Center() == a.Center() && j < i) {
			return true
		}
	}

	return false
}
