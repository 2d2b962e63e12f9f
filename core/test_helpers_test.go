// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for tightsim/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the core tests.
//   - Keep label and ID constants named (no magic numbers in test bodies).

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tightsim/core"
)

// Common labels used across core tests.
const (
	LabelA = 10
	LabelB = 20
	LabelC = 30
)

// Common concurrency sizes used across core tests.
const (
	NReaders = 50
	NChain   = 100
)

// newChain builds 0→1→…→n-1 with alternating labels A, B.
func newChain(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		label := LabelA
		if i%2 == 1 {
			label = LabelB
		}
		require.NoError(t, g.AddVertex(i, label))
	}
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1))
	}

	return g
}
