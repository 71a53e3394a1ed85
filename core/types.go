// Package core defines the Graph and Edge contracts shared by every algorithm
// in spanmaze, together with small concrete implementations of both.
//
// This file declares the contracts (WeightedEdge, Graph, Digraph), the
// immutable Edge and EdgeWithData value types, GraphOption and the
// sentinel errors.
//
// Errors:
//
//	ErrLoopNotAllowed - self-loop when loops are disabled.
//	ErrNotReversible  - undirected graph received an edge type without Reversed().
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNotReversible indicates an undirected graph was given an edge that
	// cannot produce its mirror (the edge type lacks a Reversed method).
	ErrNotReversible = errors.New("core: edge type is not reversible")
)

// WeightedEdge is the edge contract consumed by every algorithm.
//
// From and To are the ordered endpoints; Weight is the traversal cost and
// is assumed to be non-negative by shortest-path search.
type WeightedEdge[V comparable] interface {
	From() V
	To() V
	Weight() float64
}

// Graph exposes the full vertex set and full edge set.
// Vertices must not contain duplicates. Implementations should return
// both slices in a deterministic order so that algorithm output is
// reproducible.
type Graph[V comparable, E any] interface {
	Vertices() []V
	Edges() []E
}

// Digraph is a Graph that can also enumerate the edges leaving a vertex.
// For undirected graphs every edge is reported from both endpoints, each
// time oriented so that From() equals the queried vertex.
type Digraph[V comparable, E any] interface {
	Graph[V, E]
	OutgoingEdgesFrom(v V) []E
}

// Edge is an immutable weighted edge between two vertices.
type Edge[V comparable] struct {
	from, to V
	weight   float64
}

// NewEdge builds an Edge from → to with the given weight.
func NewEdge[V comparable](from, to V, weight float64) Edge[V] {
	return Edge[V]{from: from, to: to, weight: weight}
}

func (e Edge[V]) From() V { return e.from }
func (e Edge[V]) To() V { return e.to }
func (e Edge[V]) Weight() float64 { return e.weight }

// Reversed returns the same edge with its endpoints swapped.
func (e Edge[V]) Reversed() Edge[V] {
	return Edge[V]{from: e.to, to: e.from, weight: e.weight}
}

// String renders the edge as "from->to:weight".
func (e Edge[V]) String() string {
	return fmt.Sprintf("%v->%v:%g", e.from, e.to, e.weight)
}

// EdgeWithData is an Edge carrying an opaque payload.
// The maze package stores the Wall an edge stands for in Data.
type EdgeWithData[V comparable, D any] struct {
	Edge[V]
	data D
}

// NewEdgeWithData builds an EdgeWithData from → to carrying data.
func NewEdgeWithData[V comparable, D any](from, to V, weight float64, data D) EdgeWithData[V, D] {
	return EdgeWithData[V, D]{Edge: NewEdge(from, to, weight), data: data}
}

// Data returns the payload attached at construction.
func (e EdgeWithData[V, D]) Data() D { return e.data }

// Reversed returns the mirrored edge; the payload is shared.
func (e EdgeWithData[V, D]) Reversed() EdgeWithData[V, D] {
	return EdgeWithData[V, D]{Edge: e.Edge.Reversed(), data: e.data}
}

// GraphOption configures an AdjacencyGraph before creation.
type GraphOption func(c *graphConfig)

type graphConfig struct {
	directed   bool
	allowLoops bool
}

// WithDirected sets whether edges are one-way (true) or mirrored (false).
// Graphs are undirected by default.
func WithDirected(directed bool) GraphOption {
	return func(c *graphConfig) { c.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(c *graphConfig) { c.allowLoops = true }
}
