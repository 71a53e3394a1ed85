package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanmaze/bfs"
	"github.com/katalvlaran/spanmaze/core"
)

type graph = core.AdjacencyGraph[string, core.Edge[string]]

func walk(g *graph, start string, opts ...bfs.Option[string]) (*bfs.Result[string], error) {
	return bfs.BFS[string, core.Edge[string]](g, start, opts...)
}

// cycle builds the undirected square A-B-C-D-A.
func cycle() *graph {
	g := core.NewAdjacencyGraph[string, core.Edge[string]]()
	_ = g.AddEdge(core.NewEdge("A", "B", 1))
	_ = g.AddEdge(core.NewEdge("B", "C", 1))
	_ = g.AddEdge(core.NewEdge("C", "D", 1))
	_ = g.AddEdge(core.NewEdge("D", "A", 1))
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[string, core.Edge[string]](nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = walk(cycle(), "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = walk(cycle(), "A", bfs.WithMaxDepth[string](-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	g := core.NewAdjacencyGraph[string, core.Edge[string]]()
	g.AddVertex("A")

	res, err := walk(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	assert.Empty(t, res.Parent)
}

// TestCycleAndDepths checks layering on a square: B and D at depth 1, C at 2.
func TestCycleAndDepths(t *testing.T) {
	res, err := walk(cycle(), "A")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
	assert.Equal(t, "B", res.Parent["C"])

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)

	far, depth := res.Farthest()
	assert.Equal(t, "C", far)
	assert.Equal(t, 2, depth)
}

func TestDirectedReachability(t *testing.T) {
	g := core.NewAdjacencyGraph[string, core.Edge[string]](core.WithDirected(true))
	_ = g.AddEdge(core.NewEdge("A", "B", 1))
	_ = g.AddEdge(core.NewEdge("C", "B", 1))

	res, err := walk(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)

	_, err = res.PathTo("C")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestMaxDepthAndFilter(t *testing.T) {
	res, err := walk(cycle(), "A", bfs.WithMaxDepth[string](1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "D"}, res.Order)

	res, err = walk(cycle(), "A", bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "B" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D", "C"}, res.Order)
	assert.Equal(t, 2, res.Depth["C"])
}

func TestOnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	var seen []string
	_, err := walk(cycle(), "A", bfs.WithOnVisit(func(v string, _ int) error {
		seen = append(seen, v)
		if v == "B" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A", "B"}, seen)
}

func TestContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := walk(cycle(), "A", bfs.WithContext[string](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
