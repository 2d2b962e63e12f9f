// SPDX-License-Identifier: MIT
// Package: tightsim/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Appends n vertices b..b+n-1 where b = g.Order().
//   • Emits edges in stable order (b+i) → (b+(i+1)%n) for i=0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tightsim/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex directed cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		base, err := addVertices(methodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		// i == n-1 closes the ring back to base
		for i := 0; i < n; i++ {
			if err = addEdge(methodCycle, g, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
