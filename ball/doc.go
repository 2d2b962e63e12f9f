// Package ball extracts bounded-radius neighborhoods ("balls") of the match
// graph and validates them with the dual filter.
//
// What
//
//   - Extract(mg, center, r) keeps every vertex of mg within undirected hop
//     distance r of center, and every mg edge between two kept vertices in its
//     original direction. Unreachable vertices never enter a ball.
//   - (*Ball).DualFilter(q, m) re-runs dual simulation of q inside the ball,
//     seeded with m restricted to the ball. The ball is accepted iff the
//     result is non-empty and the center is still a candidate of the query's
//     selected center. On acceptance the ball is pruned in place to the
//     vertices that remain candidates, the edges supported by a query edge
//     under the refined sets, and finally the undirected component of the
//     center under those edges.
//   - On rejection the ball is left untouched and should be discarded.
//
// Ownership
//
//	A Ball is owned by the goroutine that extracted it until DualFilter
//	returns; afterwards it is treated as immutable and may be shared.
//
// Complexity
//
//	Extract is O(V_b + E_b) for a ball with V_b vertices and E_b edges.
//	DualFilter is one Refine over the ball plus O(V_b + E_b·m) pruning.
package ball
