// SPDX-License-Identifier: MIT
// Package: tightsim/builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//
// AI-Hints:
//   • Prefer WithSeed for reproducible stochastic builders (RandomSparse, WithLabels).
//   • WithLabelFn is for fixed, hand-designed labelings (alternating, by position).

package builder

import (
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLabelFn labels the i-th vertex of every constructor with fn(i).
// Panics on nil.
func WithLabelFn(fn func(i int) int) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelFn(nil)")
	}
	return func(c *builderConfig) {
		c.labelFn = func(i int, _ *rand.Rand) int { return fn(i) }
	}
}

// WithLabels draws every label uniformly from [0, k) using the configured RNG.
// Without an RNG the labels cycle deterministically: i mod k.
// Panics if k < 1.
func WithLabels(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithLabels(k < 1)")
	}
	return func(c *builderConfig) {
		c.labelFn = func(i int, rng *rand.Rand) int {
			if rng == nil {
				return i % k
			}
			return rng.Intn(k)
		}
	}
}
