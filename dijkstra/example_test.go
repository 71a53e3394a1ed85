// Package dijkstra_test provides examples demonstrating how to use the Dijkstra finder.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/spanmaze/core"
	"github.com/katalvlaran/spanmaze/dijkstra"
)

// ExampleDijkstra computes a shortest path on a square with a heavy chord.
// The direct edge A-D (5) loses to A→B→C→D (1+2+1).
func ExampleDijkstra() {
	// 1) Create an undirected graph.
	g := core.NewAdjacencyGraph[string, core.Edge[string]]()
	// 2) Add edges.
	_ = g.AddEdge(core.NewEdge("A", "B", 1))
	_ = g.AddEdge(core.NewEdge("B", "C", 2))
	_ = g.AddEdge(core.NewEdge("C", "D", 1))
	_ = g.AddEdge(core.NewEdge("A", "D", 5))

	// 3) Search from A to D.
	sp, err := dijkstra.Dijkstra[string, core.Edge[string]]().FindShortestPath(g, "A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4) Print the path and its weight.
	fmt.Println(sp.Edges(), sp.TotalWeight())
	// Output: [A->B:1 B->C:2 C->D:1] 4
}

// ExampleShortestPath shows handling every result variant with a type switch.
func ExampleShortestPath() {
	g := core.NewAdjacencyGraph[string, core.Edge[string]](core.WithDirected(true))
	_ = g.AddEdge(core.NewEdge("A", "B", 2))
	_ = g.AddEdge(core.NewEdge("B", "C", 3))

	f := dijkstra.Dijkstra[string, core.Edge[string]]()
	for _, q := range [][2]string{{"A", "C"}, {"C", "A"}, {"B", "B"}} {
		sp, _ := f.FindShortestPath(g, q[0], q[1])
		switch res := sp.(type) {
		case *dijkstra.Success[string, core.Edge[string]]:
			fmt.Println(q, "path", res.Vertices(), res.TotalWeight())
		case *dijkstra.Failure[string, core.Edge[string]]:
			fmt.Println(q, "unreachable")
		case *dijkstra.SingleVertex[string, core.Edge[string]]:
			fmt.Println(q, "already there:", res.Vertex())
		}
	}
	// Output:
	// [A C] path [A B C] 5
	// [C A] unreachable
	// [B B] already there: B
}
