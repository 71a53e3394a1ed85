package core

import "fmt"

// AdjacencyGraph is an in-memory Graph/Digraph backed by adjacency lists.
//
// Vertices and edges are kept in insertion order, so Vertices(), Edges()
// and OutgoingEdgesFrom() are deterministic. In undirected mode the edge
// catalog holds every edge once while the adjacency lists hold it from
// both endpoints (the mirror built via the edge's Reversed method).
//
// AdjacencyGraph is not safe for concurrent mutation.
type AdjacencyGraph[V comparable, E WeightedEdge[V]] struct {
	cfg graphConfig

	order    []V       // vertices in insertion order
	index    map[V]int // vertex -> position in order
	edges    []E       // edge catalog in insertion order
	outgoing map[V][]E // vertex -> edges leaving it
}

// NewAdjacencyGraph creates an empty graph. By default it is undirected
// and rejects self-loops.
// Complexity: O(1).
func NewAdjacencyGraph[V comparable, E WeightedEdge[V]](opts ...GraphOption) *AdjacencyGraph[V, E] {
	g := &AdjacencyGraph[V, E]{
		index:    make(map[V]int),
		outgoing: make(map[V][]E),
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}

	return g
}

// Directed reports whether edges are stored one-way only.
func (g *AdjacencyGraph[V, E]) Directed() bool { return g.cfg.directed }

// AddVertex inserts v if absent. Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *AdjacencyGraph[V, E]) AddVertex(v V) {
	if _, ok := g.index[v]; ok {
		return
	}
	g.index[v] = len(g.order)
	g.order = append(g.order, v)
}

// HasVertex reports whether v was added, explicitly or as an edge endpoint.
func (g *AdjacencyGraph[V, E]) HasVertex(v V) bool {
	_, ok := g.index[v]
	return ok
}

// AddEdge appends e, auto-adding both endpoints.
//
// Steps:
//  1. Reject self-loops unless WithLoops was given (ErrLoopNotAllowed).
//  2. In undirected mode build the mirror edge; edges without a
//     Reversed() E method are rejected with ErrNotReversible.
//  3. Register endpoints, record e in the catalog and adjacency lists.
//
// Complexity: O(1) amortized.
func (g *AdjacencyGraph[V, E]) AddEdge(e E) error {
	from, to := e.From(), e.To()
	if from == to && !g.cfg.allowLoops {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, from)
	}

	var mirror E
	mirrored := !g.cfg.directed && from != to
	if mirrored {
		r, ok := any(e).(interface{ Reversed() E })
		if !ok {
			return fmt.Errorf("%w: %T", ErrNotReversible, e)
		}
		mirror = r.Reversed()
	}

	g.AddVertex(from)
	g.AddVertex(to)
	g.edges = append(g.edges, e)
	g.outgoing[from] = append(g.outgoing[from], e)
	if mirrored {
		g.outgoing[to] = append(g.outgoing[to], mirror)
	}

	return nil
}

// Vertices returns a copy of the vertex list in insertion order.
// Complexity: O(V).
func (g *AdjacencyGraph[V, E]) Vertices() []V {
	out := make([]V, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns a copy of the edge catalog in insertion order.
// Undirected edges appear once, oriented as they were added.
// Complexity: O(E).
func (g *AdjacencyGraph[V, E]) Edges() []E {
	out := make([]E, len(g.edges))
	copy(out, g.edges)

	return out
}

// OutgoingEdgesFrom returns the edges whose From() is v.
// An unknown vertex yields an empty slice.
// Complexity: O(deg(v)).
func (g *AdjacencyGraph[V, E]) OutgoingEdgesFrom(v V) []E {
	adj := g.outgoing[v]
	out := make([]E, len(adj))
	copy(out, adj)

	return out
}

// VertexCount returns |V|.
func (g *AdjacencyGraph[V, E]) VertexCount() int { return len(g.order) }

// EdgeCount returns the number of catalogued edges.
func (g *AdjacencyGraph[V, E]) EdgeCount() int { return len(g.edges) }
