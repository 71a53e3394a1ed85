package maze

import (
	"fmt"
	"math/rand/v2"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/spanmaze/core"
	"github.com/katalvlaran/spanmaze/prim_kruskal"
)

// NewRand returns a PCG-backed generator seeded from a single value.
// Equal seeds produce equal streams, and therefore equal mazes.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// CarverOption configures a KruskalCarver.
type CarverOption func(c *KruskalCarver)

// WithFinder replaces the spanning-tree algorithm (Kruskal by default).
// A nil finder is ignored.
func WithFinder(f prim_kruskal.Finder[Room, Passage]) CarverOption {
	return func(c *KruskalCarver) {
		if f != nil {
			c.finder = f
		}
	}
}

// KruskalCarver removes the walls that form a minimum spanning tree of the
// room graph under random weights, which yields a perfect maze: exactly one
// route between any two rooms.
type KruskalCarver struct {
	rng    *rand.Rand
	finder prim_kruskal.Finder[Room, Passage]
}

// NewKruskalCarver builds a carver drawing wall weights from rng.
// The carver advances rng; share a generator only if that is intended.
func NewKruskalCarver(rng *rand.Rand, opts ...CarverOption) *KruskalCarver {
	c := &KruskalCarver{
		rng:    rng,
		finder: prim_kruskal.Kruskal[Room, Passage](),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ChooseWallsToRemove returns the walls whose removal connects every room
// touched by walls.
//
// Steps:
//  1. Turn each wall into a Passage between its rooms, weighted by rng.Float64().
//  2. Find a minimum spanning tree of that room graph.
//  3. Collect the walls carried by the tree's edges.
//
// One random number is drawn per wall, in slice order, so the result only
// depends on the seed and the wall order.
// Complexity: O(W log W) for W walls with the default finder.
func (c *KruskalCarver) ChooseWallsToRemove(walls []Wall) (mapset.Set[Wall], error) {
	g := core.NewAdjacencyGraph[Room, Passage]()
	for _, w := range walls {
		if err := g.AddEdge(core.NewEdgeWithData(w.Room1, w.Room2, c.rng.Float64(), w)); err != nil {
			return nil, fmt.Errorf("maze: %w", err)
		}
	}

	mst, err := c.finder.FindMinimumSpanningTree(g)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	if !mst.Exists() {
		return nil, ErrDisconnected
	}

	edges := mst.Edges()
	chosen := mapset.NewThreadUnsafeSetWithSize[Wall](len(edges))
	for _, e := range edges {
		chosen.Add(e.Data())
	}

	return chosen, nil
}
