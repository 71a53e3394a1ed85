package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/spanmaze/core"
	"github.com/katalvlaran/spanmaze/prim_kruskal"
)

// ExampleKruskal demonstrates Kruskal's algorithm on a triangle graph.
// The MST is {A-B, B-C} with total weight 3.
func ExampleKruskal() {
	// 1. Construct an undirected graph.
	g := core.NewAdjacencyGraph[string, core.Edge[string]]()
	// 2. Add edges to form the triangle.
	_ = g.AddEdge(core.NewEdge("A", "B", 1))
	_ = g.AddEdge(core.NewEdge("B", "C", 2))
	_ = g.AddEdge(core.NewEdge("A", "C", 4))

	// 3. Run Kruskal's algorithm.
	mst, err := prim_kruskal.Kruskal[string, core.Edge[string]]().FindMinimumSpanningTree(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 4. Inspect the tagged result.
	switch res := mst.(type) {
	case *prim_kruskal.Success[core.Edge[string]]:
		fmt.Println("Total:", prim_kruskal.TotalWeight(res.Edges()), "Edges:", res.Edges())
	case *prim_kruskal.Failure[core.Edge[string]]:
		fmt.Println("graph is disconnected")
	}
	// Output: Total: 3 Edges: [A->B:1 B->C:2]
}

// ExamplePrim demonstrates Prim's algorithm on a pentagon graph.
// Vertices: A, B, C, D, E. Edges: A-B (1), A-E (12), B-C (2), C-D (3), D-E (5).
// The MST is {A-B, B-C, C-D, D-E} with total weight 11.
func ExamplePrim() {
	g := core.NewAdjacencyGraph[string, core.Edge[string]]()
	_ = g.AddEdge(core.NewEdge("A", "B", 1))
	_ = g.AddEdge(core.NewEdge("A", "E", 12))
	_ = g.AddEdge(core.NewEdge("B", "C", 2))
	_ = g.AddEdge(core.NewEdge("C", "D", 3))
	_ = g.AddEdge(core.NewEdge("D", "E", 5))

	mst, _ := prim_kruskal.Prim[string, core.Edge[string]]().FindMinimumSpanningTree(g)
	fmt.Println(mst.Exists(), prim_kruskal.TotalWeight(mst.Edges()))
	// Output: true 11
}

// ExampleFailure shows the result for a graph with two components.
func ExampleFailure() {
	g := core.NewAdjacencyGraph[string, core.Edge[string]]()
	_ = g.AddEdge(core.NewEdge("A", "B", 1))
	_ = g.AddEdge(core.NewEdge("C", "D", 1))

	mst, _ := prim_kruskal.Kruskal[string, core.Edge[string]]().FindMinimumSpanningTree(g)
	fmt.Println(mst.Exists(), len(mst.Edges()))
	// Output: false 0
}
