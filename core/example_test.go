package core_test

import (
	"fmt"

	"github.com/katalvlaran/spanmaze/core"
)

// ExampleAdjacencyGraph shows how an undirected edge is reported from both endpoints.
func ExampleAdjacencyGraph() {
	g := core.NewAdjacencyGraph[string, core.Edge[string]]()
	_ = g.AddEdge(core.NewEdge("A", "B", 1))
	_ = g.AddEdge(core.NewEdge("B", "C", 2))

	fmt.Println(g.Vertices())
	fmt.Println(g.OutgoingEdgesFrom("B"))
	// Output:
	// [A B C]
	// [B->A:1 B->C:2]
}
