// Package prim_kruskal defines the minimum-spanning-tree Finder contract,
// its tagged result, configuration options and sentinel errors.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/spanmaze/core"
	"github.com/katalvlaran/spanmaze/disjointset"
	"github.com/katalvlaran/spanmaze/minpq"
)

// ErrNilGraph indicates a nil graph was passed to a Finder.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrOutgoingEdgesRequired indicates Prim was given a graph that cannot
// enumerate outgoing edges (it does not implement core.Digraph).
var ErrOutgoingEdgesRequired = errors.New("prim_kruskal: Prim requires a graph with outgoing-edge lookup")

// ErrUnknownMethod indicates New was called with an unsupported method name.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-priority queue).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Finder computes a minimum spanning tree of an undirected weighted graph.
//
// A graph whose vertices cannot all be connected yields a Failure result,
// not an error. Errors are reserved for precondition violations such as a
// nil graph or an edge whose endpoint is not a vertex of the graph.
type Finder[V comparable, E core.WeightedEdge[V]] interface {
	FindMinimumSpanningTree(g core.Graph[V, E]) (MinimumSpanningTree[E], error)
}

// MinimumSpanningTree is the tagged result of a Finder: *Success or *Failure.
//
// Use a type switch, or Exists() followed by Edges().
type MinimumSpanningTree[E any] interface {
	// Exists reports whether a spanning tree was found.
	Exists() bool
	// Edges returns the tree's edges in acceptance order; nil on Failure.
	Edges() []E

	isMinimumSpanningTree()
}

// Success carries the edges of a minimum spanning tree.
type Success[E any] struct {
	edges []E
}

// NewSuccess wraps edges as a Success result.
func NewSuccess[E any](edges []E) *Success[E] {
	if edges == nil {
		edges = []E{}
	}

	return &Success[E]{edges: edges}
}

func (s *Success[E]) Exists() bool { return true }

// Edges returns a copy of the tree's edges.
func (s *Success[E]) Edges() []E {
	out := make([]E, len(s.edges))
	copy(out, s.edges)

	return out
}

func (*Success[E]) isMinimumSpanningTree() {}

// Failure reports that the graph is disconnected: no spanning tree exists.
type Failure[E any] struct{}

func (*Failure[E]) Exists() bool { return false }
func (*Failure[E]) Edges() []E { return nil }

func (*Failure[E]) isMinimumSpanningTree() {}

// TotalWeight sums the weights of edges. Complexity: O(len(edges)).
func TotalWeight[E interface{ Weight() float64 }](edges []E) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight()
	}

	return total
}

// Options configures the MST finders.
//
// Fields:
//
//	DisjointSets - partition structure used by Kruskal. Default: disjointset.UnionBySize.
//	Queue        - frontier priority queue used by Prim. Default: minpq.HeapMinPQ.
type Options[V comparable] struct {
	DisjointSets disjointset.Factory[V]
	Queue        minpq.Factory[V]
}

// Option configures Options.
type Option[V comparable] func(*Options[V])

// WithDisjointSets replaces the union-find factory used by Kruskal.
// A nil factory is ignored.
func WithDisjointSets[V comparable](f disjointset.Factory[V]) Option[V] {
	return func(o *Options[V]) {
		if f != nil {
			o.DisjointSets = f
		}
	}
}

// WithQueue replaces the priority-queue factory used by Prim.
// A nil factory is ignored.
func WithQueue[V comparable](f minpq.Factory[V]) Option[V] {
	return func(o *Options[V]) {
		if f != nil {
			o.Queue = f
		}
	}
}

// DefaultOptions returns union-by-size disjoint sets and a binary-heap queue.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		DisjointSets: disjointset.UnionBySizeFactory[V](),
		Queue:        minpq.HeapFactory[V](),
	}
}

func buildOptions[V comparable](opts []Option[V]) Options[V] {
	cfg := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// New returns the Finder registered under method (MethodKruskal or MethodPrim).
// Any other name yields ErrUnknownMethod.
func New[V comparable, E core.WeightedEdge[V]](method string, opts ...Option[V]) (Finder[V, E], error) {
	switch method {
	case MethodKruskal:
		return Kruskal[V, E](opts...), nil
	case MethodPrim:
		return Prim[V, E](opts...), nil
	default:
		return nil, ErrUnknownMethod
	}
}
