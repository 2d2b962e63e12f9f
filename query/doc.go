// Package query wraps a small labeled query graph with the two structural
// facts tight simulation needs: its radius and its selected center.
//
// What
//
//   - The eccentricity of a query vertex u is the largest undirected hop
//     distance from u to any other query vertex.
//   - Radius is the minimum eccentricity; the selected center is the vertex
//     attaining it, ties broken by the smallest ID.
//   - Both are computed once by New and never change afterwards.
//
// Preconditions (checked by New, failing fast):
//
//   - at least one vertex (ErrEmptyQuery);
//   - dense IDs 0..n-1 (ErrSparseIDs);
//   - weakly connected (ErrDisconnected), otherwise no vertex has a finite
//     eccentricity and no ball radius exists.
//
// Complexity
//
//	New runs one undirected BFS per query vertex: O(n·(n + m)) for a query
//	with n vertices and m edges. Queries are small, so this is negligible.
package query
