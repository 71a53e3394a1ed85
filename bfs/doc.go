// Package bfs provides breadth-first search over a core.Digraph,
// returning unweighted distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - OnVisit hook may abort the walk with an error.
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors a MaxDepth limit (d>0).
//
// Determinism
//
//	Neighbors are enqueued in OutgoingEdgesFrom order, which core.AdjacencyGraph
//	keeps in insertion order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS[string, core.Edge[string]](g, "start",
//	    bfs.WithMaxDepth[string](3),
//	    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return nbr != "skip" }),
//	)
//	path, err := res.PathTo("goal")
//
// The maze package uses BFS to check that carving left every room reachable
// and to find the two rooms farthest apart.
package bfs
