package prim_kruskal

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/spanmaze/core"
)

type prim[V comparable, E core.WeightedEdge[V]] struct {
	opts Options[V]
}

// Prim returns a Finder running Prim's algorithm, rooted at the first vertex
// reported by the graph. The graph must also implement core.Digraph so the
// frontier can be grown through OutgoingEdgesFrom.
func Prim[V comparable, E core.WeightedEdge[V]](opts ...Option[V]) Finder[V, E] {
	return &prim[V, E]{opts: buildOptions(opts)}
}

// FindMinimumSpanningTree grows a spanning tree from a root vertex.
//
// Error Conditions:
//   - ErrNilGraph              : g is nil.
//   - ErrOutgoingEdgesRequired : g does not implement core.Digraph.
//
// Steps:
//  1. With 0 or 1 vertices the MST is trivially empty.
//  2. Seed the frontier queue with the root at priority 0.
//  3. Repeatedly remove the cheapest frontier vertex v, move it into the
//     tree and accept the edge that reached it (none for the root).
//  4. For each edge v→w with w outside the tree: queue w if unseen, or lower
//     its priority when this edge is strictly cheaper than its current best.
//  5. A tree with fewer than |V|-1 edges means g is disconnected → Failure.
//
// The result is a set of edges oriented away from the root, listed in the
// order their far endpoint joined the tree.
//
// Complexity: O(E log V) time, O(V) memory.
func (p *prim[V, E]) FindMinimumSpanningTree(g core.Graph[V, E]) (MinimumSpanningTree[E], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	dg, ok := g.(core.Digraph[V, E])
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrOutgoingEdgesRequired, g)
	}

	vertices := dg.Vertices()
	n := len(vertices)
	if n <= 1 {
		return NewSuccess[E](nil), nil
	}

	inTree := mapset.NewThreadUnsafeSetWithSize[V](n)
	best := make(map[V]E, n) // cheapest known edge into each frontier vertex
	frontier := p.opts.Queue()
	mst := make([]E, 0, n-1)

	root := vertices[0]
	if err := frontier.Add(root, 0); err != nil {
		return nil, fmt.Errorf("prim_kruskal: %w", err)
	}

	for !frontier.IsEmpty() && len(mst) < n-1 {
		v, err := frontier.RemoveMin()
		if err != nil {
			return nil, fmt.Errorf("prim_kruskal: %w", err)
		}
		inTree.Add(v)
		if e, reached := best[v]; reached {
			mst = append(mst, e)
		}

		for _, e := range dg.OutgoingEdgesFrom(v) {
			w := e.To()
			if inTree.Contains(w) {
				continue
			}
			if !frontier.Contains(w) {
				if err := frontier.Add(w, e.Weight()); err != nil {
					return nil, fmt.Errorf("prim_kruskal: %w", err)
				}
				best[w] = e
			} else if e.Weight() < best[w].Weight() {
				if err := frontier.ChangePriority(w, e.Weight()); err != nil {
					return nil, fmt.Errorf("prim_kruskal: %w", err)
				}
				best[w] = e
			}
		}
	}

	if len(mst) < n-1 {
		return &Failure[E]{}, nil
	}

	return NewSuccess(mst), nil
}
