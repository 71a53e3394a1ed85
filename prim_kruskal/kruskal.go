package prim_kruskal

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/spanmaze/core"
)

type kruskal[V comparable, E core.WeightedEdge[V]] struct {
	opts Options[V]
}

// Kruskal returns a Finder running Kruskal's algorithm.
//
// The disjoint-set structure comes from Options.DisjointSets, so a
// different union-find strategy can be plugged in with WithDisjointSets.
func Kruskal[V comparable, E core.WeightedEdge[V]](opts ...Option[V]) Finder[V, E] {
	return &kruskal[V, E]{opts: buildOptions(opts)}
}

// FindMinimumSpanningTree computes the Minimum Spanning Tree (MST) of g.
//
// Error Conditions:
//   - ErrNilGraph                  : g is nil.
//   - disjointset.ErrDuplicateItem : g.Vertices() lists a vertex twice.
//   - disjointset.ErrUnknownItem   : an edge endpoint is not in g.Vertices().
//
// Steps:
//  1. Retrieve vertices; with 0 or 1 vertices the MST is trivially empty.
//  2. Copy all edges and sort them by ascending weight. sort.SliceStable
//     keeps g.Edges() order for equal weights, so output is deterministic.
//  3. Create one singleton set per vertex.
//  4. Walk the sorted edges: Union succeeds only when the endpoints lie in
//     different sets, in which case the edge is accepted; otherwise it would
//     close a cycle and is discarded.
//  5. Stop once |V|-1 edges are accepted. Fewer after the loop means the
//     graph is disconnected → Failure.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func (k *kruskal[V, E]) FindMinimumSpanningTree(g core.Graph[V, E]) (MinimumSpanningTree[E], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// 1. Trivial graphs.
	vertices := g.Vertices()
	n := len(vertices)
	if n <= 1 {
		return NewSuccess[E](nil), nil
	}

	// 2. Sorted private copy of the edge set.
	edges := slices.Clone(g.Edges())
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight() < edges[j].Weight()
	})

	// 3. One singleton per vertex.
	sets := k.opts.DisjointSets()
	for _, v := range vertices {
		if err := sets.MakeSet(v); err != nil {
			return nil, fmt.Errorf("prim_kruskal: %w", err)
		}
	}

	// 4. Greedy acceptance.
	mst := make([]E, 0, n-1)
	for _, e := range edges {
		if len(mst) == n-1 {
			break
		}
		merged, err := sets.Union(e.From(), e.To())
		if err != nil {
			return nil, fmt.Errorf("prim_kruskal: edge %v->%v: %w", e.From(), e.To(), err)
		}
		if merged {
			mst = append(mst, e)
		}
	}

	// 5. Disconnected?
	if len(mst) < n-1 {
		return &Failure[E]{}, nil
	}

	return NewSuccess(mst), nil
}
