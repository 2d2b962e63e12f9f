// SPDX-License-Identifier: MIT
// Package: tightsim/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Appends n vertices b..b+n-1 where b = g.Order().
//   • Emits every ordered pair (i,j), i≠j, lexicographically by (i,j).
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges emission.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tightsim/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete directed graph on n
// vertices (both directions of every pair, no self-loops).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		base, err := addVertices(methodComplete, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err = addEdge(methodComplete, g, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
