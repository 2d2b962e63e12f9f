// Package core provides the in-memory labeled directed graphs that the
// matching engine reads from, together with the View interface the engine is
// written against.
//
// Two representations share one read surface:
//
//   - Graph: dense, slice-backed storage indexed by small non-negative integer
//     vertex IDs. This is the natural shape of a loaded data graph or query.
//   - SmallGraph: map-backed storage for subgraphs whose IDs are a sparse
//     subset of a larger ID space (match graphs, balls).
//
// Both implement View:
//
//	VertexCount() int            // number of present vertices
//	Order() int                  // size of the ID space (max ID + 1)
//	Vertices() []int             // present IDs, ascending
//	HasVertex(id int) bool
//	Label(id int) int            // label of id (NoLabel if absent)
//	Successors(id int) []int     // out-neighbors, ascending, unique
//	Predecessors(id int) []int   // in-neighbors, ascending, unique
//	HasEdge(from, to int) bool
//
// Every vertex carries exactly one integer label; labels need not be unique.
// Edges are directed ordered pairs. Duplicate AddEdge calls collapse into one
// edge, so adjacency slices never contain repeats. Self-loops are rejected
// with ErrLoopNotAllowed unless the graph was created with WithLoops().
//
// Determinism:
//
//	Vertices(), Successors(), Predecessors() and Edges() are always sorted
//	ascending, so every algorithm built on View iterates in a reproducible
//	order regardless of insertion order.
//
// Concurrency:
//
//	Each graph guards its state with a sync.RWMutex. Reads take the read
//	lock; AddVertex/AddEdge/RemoveVertex take the write lock. Adjacency
//	slices returned by Successors/Predecessors alias internal storage and
//	must be treated as read-only.
//
// Errors:
//
//	ErrNegativeVertexID - vertex ID < 0.
//	ErrVertexNotFound   - edge endpoint or lookup target is absent.
//	ErrLabelConflict    - AddVertex on an existing ID with a different label.
//	ErrLoopNotAllowed   - self-loop on a graph without WithLoops().
package core
