// Package dijkstra provides Dijkstra's shortest-path search between two
// vertices of a weighted graph with non-negative edge weights.
//
// Overview:
//
//   - Finder[V, E] is a single-method strategy contract, so alternative
//     searches (A*, Bellman-Ford) can be substituted without touching callers.
//   - Dijkstra[V, E](opts...) is the provided strategy.
//   - Graphs are consumed through core.Digraph: Vertices, Edges and
//     OutgoingEdgesFrom. Undirected core.AdjacencyGraph values qualify.
//
// Algorithm:
//
//  1. Seed the frontier (an extrinsic min-priority queue) with start at 0.
//  2. Remove the closest frontier vertex curr. If curr is end, stop: its
//     distance is final. Otherwise mark curr known.
//  3. For each edge curr→v with v not known: candidate = dist(curr) + w.
//     Undiscovered v joins the frontier; a discovered v whose recorded
//     distance is strictly greater is relaxed via ChangePriority.
//  4. Rebuild the path by following best incoming edges back from end.
//
// Results (ShortestPath[V, E]):
//
//   - *SingleVertex - start == end; zero edges, weight 0.
//   - *Success      - Edges() from start to end, TotalWeight() minimal.
//   - *Failure      - end is unreachable from start.
//
// Unreachability is a result, not an error.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:
//     Returned if you pass a nil graph.
//   - ErrVertexNotFound:
//     Returned if start is not among g.Vertices().
//   - ErrNegativeWeight:
//     Returned if any edge in the graph has a negative weight (detected by
//     an O(E) pre-scan). Dijkstra's greedy finalization is unsound with
//     negative weights, so such graphs are rejected rather than searched.
//
// Options:
//
//   - WithQueue(factory): frontier priority queue (default minpq.HeapMinPQ).
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) with a binary heap.
//   - Space: O(V) for distance, edge and known maps plus the frontier.
//
// Example:
//
//	g := core.NewAdjacencyGraph[string, core.Edge[string]]()
//	_ = g.AddEdge(core.NewEdge("A", "B", 1))
//	_ = g.AddEdge(core.NewEdge("B", "C", 2))
//	_ = g.AddEdge(core.NewEdge("A", "C", 5))
//
//	sp, err := dijkstra.Dijkstra[string, core.Edge[string]]().FindShortestPath(g, "A", "C")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sp.Vertices(), sp.TotalWeight()) // [A B C] 3
package dijkstra
