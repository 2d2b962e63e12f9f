// Package tightsim finds approximate occurrences of a small labeled query
// graph inside a large labeled data graph using tight simulation.
//
// 🚀 What is tight simulation?
//
//	A precision-improving refinement of dual simulation:
//		• Dual simulation: every query vertex gets the set of data vertices that
//		  agree with it on label, successors and predecessors (greatest fixpoint).
//		• Match graph: the part of the data graph supported by those sets.
//		• Balls: for each candidate of the query's center, the neighborhood of
//		  the query's radius in the match graph.
//		• Dual filter: dual simulation re-run inside each ball; balls that only
//		  matched by borrowing structure from outside are rejected.
//		• Redundancy filter: balls containing another ball are dropped.
//
// ✨ Entry points
//
//   - Match(data, q, opts...) runs the pipeline and returns the accepted balls.
//   - Filter(balls) removes redundant balls.
//   - Options: WithContext, WithWorkers, WithLogger (logrus), WithMetrics
//     (Prometheus). Spans are emitted through the global OpenTelemetry tracer.
//
// Under the hood, everything is organized under these subpackages:
//
//	core/       dense Graph, map-backed SmallGraph and the read-only View
//	bfs/        bounded, optionally undirected breadth-first walker
//	converters/ gonum adapters and weak connectivity
//	query/      query validation, radius and center
//	dualsim/    candidate maps, dual simulation fixpoint, match graph
//	ball/       ball extraction and the dual filter
//	metrics/    Prometheus recorder
//	builder/    deterministic labeled graph generators
//	mutate/     seeded query mutation for experiments
//	graphio/    YAML graph files
//	cmd/tightsim the command-line front end
//
// Quick example:
//
//	data A→B→A→B, query A→B (radius 1, center 0)
//	=> balls {0,1} and {2,3}
package tightsim
