// Package prim_kruskal provides two strategies for computing the Minimum
// Spanning Tree (MST) of an undirected, weighted graph: Kruskal's algorithm
// and Prim's algorithm, both behind the same Finder contract.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, weighted graph G = (V, E), an MST is a subset T ⊆ E
//     that connects all vertices in V, contains no cycle, and has minimal
//     total weight among all such subsets.
//
//   - Why it matters here:
//     The maze package assigns a random weight to every wall and asks for an
//     MST of the room graph. A spanning tree is connected and acyclic, so the
//     walls it picks for removal leave exactly one path between any two rooms.
//
// Algorithms Provided
//
//   - Kruskal[V, E](opts...) Finder[V, E]
//     Sorts all edges by weight (stable), then accepts each edge whose
//     endpoints lie in different disjoint sets. Union-find comes from
//     Options.DisjointSets (default disjointset.UnionBySize).
//     Complexity: O(E log E + α(V)·E).
//
//   - Prim[V, E](opts...) Finder[V, E]
//     Grows the tree from the first vertex, keeping the frontier in an
//     extrinsic min-priority queue (Options.Queue, default minpq.HeapMinPQ)
//     keyed by the cheapest edge reaching each vertex. Requires core.Digraph.
//     Complexity: O(E log V).
//
//   - New[V, E](method, opts...) selects a strategy by name
//     (MethodKruskal or MethodPrim).
//
// Results
//
// FindMinimumSpanningTree returns a MinimumSpanningTree[E]:
//
//   - *Success[E] - Exists() == true, Edges() lists the tree edges in the
//     order they were accepted. Graphs with 0 or 1 vertices succeed with no edges.
//   - *Failure[E] - Exists() == false; the graph is disconnected.
//
// Disconnection is an answer, not an error. Errors are reserved for
// precondition violations: ErrNilGraph, ErrOutgoingEdgesRequired, and
// wrapped disjointset errors when vertices repeat or edges reference
// vertices the graph does not list.
//
// Determinism
//
// Both strategies are deterministic for a given graph: Kruskal relies on a
// stable sort over g.Edges(), Prim on the queue's insertion-order tie-break.
//
// Example
//
//	g := core.NewAdjacencyGraph[string, core.Edge[string]]()
//	_ = g.AddEdge(core.NewEdge("A", "B", 1))
//	_ = g.AddEdge(core.NewEdge("B", "C", 2))
//	_ = g.AddEdge(core.NewEdge("A", "C", 4))
//
//	mst, err := prim_kruskal.Kruskal[string, core.Edge[string]]().FindMinimumSpanningTree(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(mst.Edges(), prim_kruskal.TotalWeight(mst.Edges()))
package prim_kruskal
