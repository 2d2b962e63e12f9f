// Package converters provides two-way adapters between core graphs and
// gonum/graph.
//
// Use converters to hand a data or query graph to gonum's algorithm packages
// (topo, path, network, ...) and to import graphs built with gonum into the
// matching engine. Vertex IDs are carried over unchanged as gonum node IDs;
// labels travel through a caller-supplied function in the import direction.
//
// gonum's simple graphs cannot hold self-loops, so ToGonum drops them. None of
// the connectivity questions answered here depend on loops.
package converters
