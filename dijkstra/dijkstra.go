// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// graphs with non-negative edge weights.
//
// The search is single-source and target-pruned: it stops as soon as the end
// vertex is removed from the frontier, since its distance is final from then on.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - The frontier is an extrinsic priority queue: a vertex appears at most once,
//     and relaxation lowers its priority in place (true decrease-key) instead of
//     pushing duplicates.
package dijkstra

import (
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/spanmaze/core"
	"github.com/katalvlaran/spanmaze/minpq"
)

type finder[V comparable, E core.WeightedEdge[V]] struct {
	opts Options[V]
}

// Dijkstra returns a Finder running Dijkstra's algorithm.
func Dijkstra[V comparable, E core.WeightedEdge[V]](opts ...Option[V]) Finder[V, E] {
	cfg := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &finder[V, E]{opts: cfg}
}

// FindShortestPath computes a minimum-weight path from start to end.
//
// Returns:
//
//   - *SingleVertex when start == end.
//   - *Success with the ordered path edges when end is reachable.
//   - *Failure when end is unreachable (including when end is not in g).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain start (ErrVertexNotFound).
//  3. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func (f *finder[V, E]) FindShortestPath(g core.Digraph[V, E], start, end V) (ShortestPath[V, E], error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Validate start exists in the graph
	if !slices.Contains(g.Vertices(), start) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, start)
	}

	// 3) Pre-scan all edges to detect negative weights.
	for _, e := range g.Edges() {
		if e.Weight() < 0 {
			return nil, fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, e.From(), e.To(), e.Weight())
		}
	}

	// 4) A zero-edge path needs no search.
	if start == end {
		return &SingleVertex[V, E]{vertex: start}, nil
	}

	// 5) Build the shortest-paths tree, then walk it back from end.
	r := &runner[V, E]{
		g:        g,
		end:      end,
		known:    mapset.NewThreadUnsafeSet[V](),
		distTo:   make(map[V]float64),
		edgeTo:   make(map[V]E),
		frontier: f.opts.Queue(),
	}
	if err := r.init(start); err != nil {
		return nil, err
	}
	if err := r.process(); err != nil {
		return nil, err
	}

	return extractShortestPath(r.edgeTo, start, end), nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable, E core.WeightedEdge[V]] struct {
	g        core.Digraph[V, E]      // The input graph; read-only within Dijkstra.
	end      V                       // Target vertex; reaching it stops the search.
	known    mapset.Set[V]           // Vertices whose distance is finalized.
	distTo   map[V]float64           // Best known distance from start.
	edgeTo   map[V]E                 // Best known incoming edge.
	frontier minpq.ExtrinsicMinPQ[V] // Discovered, not yet finalized vertices.
}

// init seeds the frontier with start at distance 0.
func (r *runner[V, E]) init(start V) error {
	r.distTo[start] = 0
	if err := r.frontier.Add(start, 0); err != nil {
		return fmt.Errorf("dijkstra: seed frontier: %w", err)
	}

	return nil
}

// process is the core loop. It repeatedly removes the closest frontier
// vertex, stops if it is the target, otherwise finalizes it and relaxes
// its outgoing edges.
//
// Loop termination conditions:
//
//   - The target is removed from the frontier (its distance is final).
//   - The frontier empties: the target is unreachable and edgeTo lacks it.
func (r *runner[V, E]) process() error {
	for !r.frontier.IsEmpty() {
		curr, err := r.frontier.RemoveMin()
		if err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}
		if curr == r.end {
			return nil
		}
		r.known.Add(curr)

		if err := r.relax(curr); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving curr. An undiscovered neighbor joins the
// frontier; a discovered one whose recorded distance is strictly worse gets
// its priority lowered and its incoming edge replaced.
//
// Assumes r.distTo[curr] is final.
func (r *runner[V, E]) relax(curr V) error {
	base := r.distTo[curr]
	for _, e := range r.g.OutgoingEdgesFrom(curr) {
		v := e.To()
		if r.known.Contains(v) {
			continue
		}
		w := e.Weight()
		if w < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, curr, v, w)
		}
		newDist := base + w

		old, seen := r.distTo[v]
		switch {
		case !seen:
			if err := r.frontier.Add(v, newDist); err != nil {
				return fmt.Errorf("dijkstra: %w", err)
			}
		case old > newDist:
			if err := r.frontier.ChangePriority(v, newDist); err != nil {
				return fmt.Errorf("dijkstra: %w", err)
			}
		default:
			continue
		}
		r.distTo[v] = newDist
		r.edgeTo[v] = e
	}

	return nil
}

// extractShortestPath walks edgeTo back from end until an edge leaving start
// is reached, then reverses the collected edges.
func extractShortestPath[V comparable, E core.WeightedEdge[V]](edgeTo map[V]E, start, end V) ShortestPath[V, E] {
	curr, ok := edgeTo[end]
	if !ok {
		return &Failure[V, E]{}
	}

	edges := []E{curr}
	for curr.From() != start {
		curr = edgeTo[curr.From()]
		edges = append(edges, curr)
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return &Success[V, E]{edges: edges}
}
