// Package core provides the graph vocabulary used across spanmaze.
//
// The algorithms in prim_kruskal and dijkstra never depend on a concrete
// graph type. They consume three small contracts:
//
//   - WeightedEdge[V]: From() V, To() V, Weight() float64.
//   - Graph[V, E]:     Vertices() []V, Edges() []E.
//   - Digraph[V, E]:   Graph plus OutgoingEdgesFrom(v) []E.
//
// Any comparable type can serve as a vertex: strings, ints, or small
// structs such as the maze package's Room.
//
// Concrete types:
//
//	- Edge[V]           immutable weighted edge, Reversed() swaps endpoints.
//	- EdgeWithData[V,D] Edge carrying an opaque payload (Data()).
//	- AdjacencyGraph    insertion-ordered adjacency lists implementing Digraph.
//
// Configuration Options (GraphOption):
//
//	- WithDirected(bool)  one-way edges; default is undirected (mirrored).
//	- WithLoops()         permit self-loops; otherwise AddEdge → ErrLoopNotAllowed.
//
// Determinism:
//
//	Vertices(), Edges() and OutgoingEdgesFrom() return insertion order, so a
//	stable sort over Edges() (as Kruskal does) is fully reproducible.
//
// Concurrency:
//
//	None of the types here are synchronized. Build a graph, then hand it to an
//	algorithm; do not mutate it from several goroutines.
//
// Example:
//
//	g := core.NewAdjacencyGraph[string, core.Edge[string]]()
//	_ = g.AddEdge(core.NewEdge("A", "B", 1))
//	_ = g.AddEdge(core.NewEdge("B", "C", 2))
//	fmt.Println(g.OutgoingEdgesFrom("B")) // [B->A:1 B->C:2]
package core
