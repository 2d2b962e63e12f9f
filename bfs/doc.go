// Package bfs provides a breadth-first search over a core.View,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at two stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor pairs via WithFilterNeighbor.
//   - Honors a MaxDepth limit (d ≥ 0, inclusive) or NoDepthLimit.
//   - Walks successors only (default) or the underlying undirected graph
//     (WithUndirected), which is what ball extraction and query eccentricity need.
//
// Determinism
//
//	core.View returns successors and predecessors sorted ascending and the
//	walker scans successors before predecessors, so the visit sequence is
//	fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map)
//
// Usage
//
//	// The radius-r neighborhood of c, ignoring edge direction:
//	res, err := bfs.BFS(g, c, bfs.WithUndirected(), bfs.WithMaxDepth(r))
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. MaxDepth < NoDepthLimit).
//   - ctx.Err()               if the context is cancelled mid-walk.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
