package converters

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/tightsim/core"
)

// ErrNodeIDRange is returned when a gonum node ID cannot be used as a core vertex ID.
var ErrNodeIDRange = errors.New("converters: gonum node ID out of range")

// ToGonum copies v into a fresh gonum simple.DirectedGraph.
// Node IDs equal vertex IDs; self-loops are skipped.
//
// Complexity: O(V + E).
func ToGonum(v core.View) *simple.DirectedGraph {
	dg := simple.NewDirectedGraph()
	ids := v.Vertices()
	for _, id := range ids {
		dg.AddNode(simple.Node(int64(id)))
	}
	for _, from := range ids {
		for _, to := range v.Successors(from) {
			if from == to {
				continue // simple graphs panic on self edges
			}
			dg.SetEdge(simple.Edge{F: simple.Node(int64(from)), T: simple.Node(int64(to))})
		}
	}

	return dg
}

// FromGonum builds a core.Graph from a gonum directed graph. label maps each
// gonum node ID to its vertex label. Self-loops are accepted (the result is
// created WithLoops).
//
// Errors:
//   - ErrNodeIDRange: a node ID is negative or exceeds the int range.
//   - core errors from AddVertex/AddEdge, wrapped.
//
// Complexity: O(V log V + E).
func FromGonum(g graph.Directed, label func(id int64) int) (*core.Graph, error) {
	nodes := graph.NodesOf(g.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	out := core.NewGraph(core.WithLoops())
	for _, n := range nodes {
		id := n.ID()
		if id < 0 || id > math.MaxInt {
			return nil, fmt.Errorf("converters: node %d: %w", id, ErrNodeIDRange)
		}
		if err := out.AddVertex(int(id), label(id)); err != nil {
			return nil, fmt.Errorf("converters: %w", err)
		}
	}
	for _, n := range nodes {
		succ := g.From(n.ID())
		for succ.Next() {
			to := succ.Node().ID()
			if err := out.AddEdge(int(n.ID()), int(to)); err != nil {
				return nil, fmt.Errorf("converters: %w", err)
			}
		}
	}

	return out, nil
}

// Components returns the weakly connected components of v (edge direction
// ignored), each sorted ascending, ordered by their smallest vertex.
//
// Complexity: O(V + E) plus sorting.
func Components(v core.View) [][]int {
	comps := topo.ConnectedComponents(graph.Undirect{G: ToGonum(v)})
	out := make([][]int, 0, len(comps))
	for _, c := range comps {
		ids := make([]int, len(c))
		for i, n := range c {
			ids[i] = int(n.ID())
		}
		sort.Ints(ids)
		out = append(out, ids)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

// Connected reports whether v is weakly connected. An empty graph is not.
func Connected(v core.View) bool {
	return v.VertexCount() > 0 && len(Components(v)) == 1
}
