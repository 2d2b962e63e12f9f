// Package builder provides deterministic, functional-options-style generators
// of labeled directed graphs over core.Graph. They back the test fixtures,
// benchmarks and the `tightsim gen` command.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:   create a graph and apply constructors in order.
//     – Apply:        apply constructors to an existing graph.
//   - Topologies (Constructor factories):
//     – Path(n), Cycle(n), Star(n), Complete(n), RandomSparse(n, p).
//   - Configuration primitives:
//     – WithSeed / WithRand:     explicit RNG (no process-wide randomness).
//     – WithLabels(k):           labels drawn from [0,k).
//     – WithLabelFn(fn):         labels from a pure function of the index.
//
// Guarantees:
//
//   - Constructors append vertices from g.Order() upwards, so composition
//     yields disjoint unions with predictable IDs.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Structured runtime errors wrapping sentinels for invalid build parameters.
//   - Same options, seed and constructor order ⇒ identical graphs.
package builder
