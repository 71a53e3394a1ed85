// Package minpq defines the ExtrinsicMinPQ contract and its sentinel errors.
package minpq

import "errors"

var (
	// ErrEmptyQueue indicates RemoveMin/PeekMin on an empty queue.
	ErrEmptyQueue = errors.New("minpq: queue is empty")

	// ErrDuplicateItem indicates Add of an item that is already queued.
	ErrDuplicateItem = errors.New("minpq: item already present")

	// ErrItemNotFound indicates ChangePriority of an item that is not queued.
	ErrItemNotFound = errors.New("minpq: item not present")
)

// ExtrinsicMinPQ is a min-priority queue whose priorities are supplied and
// changed by the caller rather than derived from the items themselves.
//
// Every item may appear at most once, which is what lets shortest-path
// search tighten a vertex's distance in place instead of pushing duplicates.
type ExtrinsicMinPQ[T comparable] interface {
	Add(item T, priority float64) error
	Contains(item T) bool
	PeekMin() (T, error)
	RemoveMin() (T, error)
	ChangePriority(item T, priority float64) error
	IsEmpty() bool
	Len() int
}

// Factory builds an empty queue.
type Factory[T comparable] func() ExtrinsicMinPQ[T]
