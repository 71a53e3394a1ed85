// Package dijkstra defines the shortest-path Finder contract, its tagged
// result, configuration options and sentinel errors.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/spanmaze/core"
	"github.com/katalvlaran/spanmaze/minpq"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to FindShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the start vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: start vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Finder computes a minimum-weight path between two vertices.
type Finder[V comparable, E core.WeightedEdge[V]] interface {
	FindShortestPath(g core.Digraph[V, E], start, end V) (ShortestPath[V, E], error)
}

// ShortestPath is the tagged result of a Finder: *Success, *Failure or *SingleVertex.
type ShortestPath[V comparable, E core.WeightedEdge[V]] interface {
	// Exists reports whether end is reachable from start.
	Exists() bool
	// Edges returns the path's edges from start to end; empty for SingleVertex, nil on Failure.
	Edges() []E
	// Vertices returns the vertices visited along the path, start and end included.
	Vertices() []V
	// TotalWeight sums the weights of Edges().
	TotalWeight() float64

	isShortestPath()
}

// Success carries the ordered edges of a shortest path. The first edge
// leaves start, the last reaches end, and consecutive edges share endpoints.
type Success[V comparable, E core.WeightedEdge[V]] struct {
	edges []E
}

func (s *Success[V, E]) Exists() bool { return true }

func (s *Success[V, E]) Edges() []E {
	out := make([]E, len(s.edges))
	copy(out, s.edges)

	return out
}

func (s *Success[V, E]) Vertices() []V {
	out := make([]V, 0, len(s.edges)+1)
	out = append(out, s.edges[0].From())
	for _, e := range s.edges {
		out = append(out, e.To())
	}

	return out
}

func (s *Success[V, E]) TotalWeight() float64 {
	var total float64
	for _, e := range s.edges {
		total += e.Weight()
	}

	return total
}

func (*Success[V, E]) isShortestPath() {}

// Failure reports that end is unreachable from start.
type Failure[V comparable, E core.WeightedEdge[V]] struct{}

func (*Failure[V, E]) Exists() bool { return false }
func (*Failure[V, E]) Edges() []E { return nil }
func (*Failure[V, E]) Vertices() []V { return nil }
func (*Failure[V, E]) TotalWeight() float64 { return 0 }
func (*Failure[V, E]) isShortestPath() {}

// SingleVertex is the zero-edge path produced when start equals end.
type SingleVertex[V comparable, E core.WeightedEdge[V]] struct {
	vertex V
}

// Vertex returns the lone vertex of the path.
func (s *SingleVertex[V, E]) Vertex() V { return s.vertex }

func (*SingleVertex[V, E]) Exists() bool { return true }
func (*SingleVertex[V, E]) Edges() []E { return []E{} }
func (s *SingleVertex[V, E]) Vertices() []V { return []V{s.vertex} }
func (*SingleVertex[V, E]) TotalWeight() float64 { return 0 }
func (*SingleVertex[V, E]) isShortestPath() {}

// Options configures the behavior of the Dijkstra finder.
//
// Queue - factory for the frontier priority structure. It must support
// in-place priority changes (minpq.ExtrinsicMinPQ). Default: minpq.HeapMinPQ.
type Options[V comparable] struct {
	Queue minpq.Factory[V]
}

// Option represents a functional option for configuring Dijkstra.
type Option[V comparable] func(*Options[V])

// WithQueue replaces the frontier queue factory. A nil factory is ignored.
func WithQueue[V comparable](f minpq.Factory[V]) Option[V] {
	return func(o *Options[V]) {
		if f != nil {
			o.Queue = f
		}
	}
}

// DefaultOptions returns Options using minpq.HeapMinPQ for the frontier.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{Queue: minpq.HeapFactory[V]()}
}
