// Package disjointset defines the DisjointSets contract, its options and
// sentinel errors.
package disjointset

import "errors"

var (
	// ErrUnknownItem indicates FindSet/Union/SetSize was called with an item
	// that was never registered via MakeSet.
	ErrUnknownItem = errors.New("disjointset: unknown item")

	// ErrDuplicateItem indicates MakeSet was called twice for the same item.
	ErrDuplicateItem = errors.New("disjointset: item already registered")
)

// DisjointSets partitions registered items into disjoint sets.
//
// Handles returned by FindSet identify a set only until the next successful
// Union touching it; compare handles, never store them long-term.
type DisjointSets[T comparable] interface {
	// MakeSet registers item as a brand-new singleton set.
	MakeSet(item T) error

	// FindSet returns the representative handle of item's current set.
	FindSet(item T) (int, error)

	// Union merges the sets of item1 and item2. It reports false, without
	// mutation, when both already share a set.
	Union(item1, item2 T) (bool, error)
}

// Factory builds an empty DisjointSets. Minimum-spanning-tree finders take a
// Factory so the partition strategy can be swapped without touching them.
type Factory[T comparable] func() DisjointSets[T]

// Options configures constructors in this package.
//
// Capacity - expected number of items; storage is pre-sized. Must be ≥ 0.
type Options struct {
	Capacity int
}

// Option is a functional option for Options.
type Option func(*Options)

// WithCapacity pre-sizes internal storage for n items.
// Negative values are treated as 0.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.Capacity = n
	}
}

// DefaultOptions returns Options with Capacity 0.
func DefaultOptions() Options {
	return Options{Capacity: 0}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
