// Package dualsim computes dual simulation between a labeled query graph and a
// labeled data graph, and materializes the match graph induced by the result.
//
// What
//
//	For query vertices u and data vertices v, the dual simulation relation is
//	the greatest relation S such that (u, v) ∈ S implies:
//	  - label(u) == label(v);
//	  - for every query edge u→u' there is a data edge v→v' with (u', v') ∈ S;
//	  - for every query edge u'→u there is a data edge v'→v with (u', v') ∈ S.
//
//	Compute seeds every candidate set with the label- and degree-compatible
//	data vertices (out-degree and in-degree at least those of u), then Refine
//	deletes violating candidates until a full pass changes nothing. Sets only
//	ever shrink, so the fixpoint is reached after at most Σ|S(u)| removals.
//
//	If any set becomes empty the result is the empty CandidateMap, which is
//	the normal "no match" outcome and not an error.
//
// Match graph
//
//	MatchGraph keeps every data vertex that occurs in some candidate set, and
//	every data edge v→v' for which some query edge u→u' has v ∈ S(u) and
//	v' ∈ S(u'). All later stages of tight simulation work on this graph only.
//
// Candidate sets
//
//	Each set is a bitset over the data graph's ID space (soniakeys/bits), so
//	membership is O(1) and iteration is ascending.
//
// Determinism
//
//	Query edges are processed in (From, To) order and candidates in ascending
//	ID order; the fixpoint is unique regardless, and so is every pass.
//
// Complexity (n, m: query vertices/edges; N, E: data vertices/edges)
//
//   - Seed:   O(N · n)
//   - Refine: O(passes · m · E) worst case; each pass is linear in the sum of
//     out- and in-degrees of the current candidates.
//   - Memory: O(n · N / 64) words for the bitsets.
//
// Errors
//
//   - ErrGraphNil / ErrQueryNil     nil inputs.
//   - ErrQueryNotDense              query IDs are not 0..n-1.
//   - ErrOrderMismatch              seed sized for a smaller ID space than the graph.
//   - ErrPassLimit                  WithMaxPasses exceeded.
//   - ErrOptionViolation            invalid option value.
//   - ctx.Err()                     cancellation, checked between passes.
package dualsim
