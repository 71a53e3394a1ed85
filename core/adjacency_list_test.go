package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanmaze/core"
)

type plainEdge struct {
	from, to string
	w        float64
}

func (e plainEdge) From() string { return e.from }
func (e plainEdge) To() string { return e.to }
func (e plainEdge) Weight() float64 { return e.w }

// TestAdjacencyGraph_Undirected verifies that undirected edges are catalogued once
// and reachable from both endpoints with the queried vertex as From().
func TestAdjacencyGraph_Undirected(t *testing.T) {
	g := core.NewAdjacencyGraph[string, core.Edge[string]]()
	require.NoError(t, g.AddEdge(core.NewEdge("A", "B", 1)))
	require.NoError(t, g.AddEdge(core.NewEdge("B", "C", 2)))

	assert.False(t, g.Directed())
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 3, g.VertexCount())

	out := g.OutgoingEdgesFrom("B")
	require.Len(t, out, 2)
	for _, e := range out {
		assert.Equal(t, "B", e.From())
	}
	assert.Equal(t, "A", out[0].To())
	assert.Equal(t, "C", out[1].To())
	assert.Empty(t, g.OutgoingEdgesFrom("Z"))
}

func TestAdjacencyGraph_Directed(t *testing.T) {
	g := core.NewAdjacencyGraph[int, core.Edge[int]](core.WithDirected(true))
	require.NoError(t, g.AddEdge(core.NewEdge(1, 2, 3.5)))

	assert.True(t, g.Directed())
	assert.Len(t, g.OutgoingEdgesFrom(1), 1)
	assert.Empty(t, g.OutgoingEdgesFrom(2))
	assert.True(t, g.HasVertex(2))
}

func TestAdjacencyGraph_Loops(t *testing.T) {
	g := core.NewAdjacencyGraph[string, core.Edge[string]]()
	err := g.AddEdge(core.NewEdge("A", "A", 1))
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	assert.False(t, g.HasVertex("A"))

	lg := core.NewAdjacencyGraph[string, core.Edge[string]](core.WithLoops())
	require.NoError(t, lg.AddEdge(core.NewEdge("A", "A", 1)))
	assert.Len(t, lg.OutgoingEdgesFrom("A"), 1)
}

func TestAdjacencyGraph_NotReversible(t *testing.T) {
	g := core.NewAdjacencyGraph[string, plainEdge]()
	err := g.AddEdge(plainEdge{from: "A", to: "B", w: 1})
	assert.ErrorIs(t, err, core.ErrNotReversible)

	dg := core.NewAdjacencyGraph[string, plainEdge](core.WithDirected(true))
	assert.NoError(t, dg.AddEdge(plainEdge{from: "A", to: "B", w: 1}))
}

// TestAdjacencyGraph_CopiesAreIndependent checks that returned slices do not alias internal state.
func TestAdjacencyGraph_CopiesAreIndependent(t *testing.T) {
	g := core.NewAdjacencyGraph[string, core.Edge[string]]()
	require.NoError(t, g.AddEdge(core.NewEdge("A", "B", 1)))

	vs := g.Vertices()
	vs[0] = "mutated"
	es := g.Edges()
	es[0] = core.NewEdge("X", "Y", 9)

	assert.Equal(t, []string{"A", "B"}, g.Vertices())
	assert.Equal(t, "A", g.Edges()[0].From())
}

func TestEdgeWithData_Reversed(t *testing.T) {
	e := core.NewEdgeWithData("A", "B", 2.5, "wall-7")
	r := e.Reversed()

	assert.Equal(t, "B", r.From())
	assert.Equal(t, "A", r.To())
	assert.Equal(t, 2.5, r.Weight())
	assert.Equal(t, "wall-7", r.Data())
	assert.Equal(t, "A->B:2.5", e.String())
}
