// Package spanmaze is a small toolkit for spanning trees, shortest paths
// and the mazes you can build with them.
//
// What is in the box?
//
//	A generic, dependency-light library that brings together:
//		• Disjoint sets: union by size with path compression, quick-find
//		• Min-priority queue keyed by item with decrease-key
//		• Minimum spanning trees: Kruskal, Prim
//		• Shortest paths: Dijkstra with early exit
//		• Breadth-first search for reachability and depths
//		• Maze carving: randomized Kruskal on a grid, solving, rendering
//
// Everything is organized under these subpackages:
//
//	core/         - Graph, Digraph and WeightedEdge contracts, Edge, AdjacencyGraph
//	disjointset/  - DisjointSets contract, UnionBySize, QuickFind
//	minpq/        - ExtrinsicMinPQ contract, HeapMinPQ
//	prim_kruskal/ - minimum spanning tree Finder, tagged Success/Failure result
//	dijkstra/     - shortest path Finder, tagged Success/Failure/SingleVertex result
//	bfs/          - breadth-first search with depth limit and hooks
//	maze/         - grid mazes, KruskalCarver, Solve, text/DOT/SVG output
//
// Algorithms never depend on a concrete graph: any type with Vertices()
// and Edges() (plus OutgoingEdgesFrom for Prim, Dijkstra and BFS) will do.
//
// Quick ASCII example:
//
//	+---+---+---+
//	| *   *   * |
//	+---+   +   +
//	|       | * |
//	+---+---+---+
//
//	a 3x2 maze with the route from the top-left to the bottom-right room.
//
// The mazegen command (cmd/mazegen) exposes carving, spanning trees and
// shortest paths from the shell.
package spanmaze
