// SPDX-License-Identifier: MIT
// Package: tightsim/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • labelFn = constant defaultLabel
//   • rng     = nil (pure/deterministic unless seeded)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// labelFn maps the index of a new vertex within its constructor to a label.
	// It receives the (possibly nil) RNG.
	labelFn func(i int, rng *rand.Rand) int
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
}

// defaultLabel is assigned when no label option is given.
const defaultLabel = 0

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		labelFn: func(int, *rand.Rand) int { return defaultLabel },
		rng:     nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// label returns the label for the i-th vertex of a constructor.
func (c builderConfig) label(i int) int {
	return c.labelFn(i, c.rng)
}
