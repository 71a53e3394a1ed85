// Package minpq provides an indexed binary-heap priority queue with
// caller-controlled priorities.
//
// HeapMinPQ keeps a map item → heap slot alongside the heap slice, so
// Contains is O(1) and ChangePriority is a single heap.Fix instead of the
// “lazy decrease-key” duplicate pushes a plain container/heap needs.
//
// Complexity:
//
//   - Add, RemoveMin, ChangePriority: O(log n)
//   - PeekMin, Contains, Len, IsEmpty: O(1)
//
// Ties: items with equal priority leave in insertion order.
package minpq

import (
	"container/heap"
	"fmt"
)

// entry is one queued item with its current priority and slot.
type entry[T comparable] struct {
	item     T
	priority float64
	seq      uint64 // insertion counter, breaks priority ties
	index    int    // position in heapSlice; maintained by Swap/Push
}

// heapSlice implements heap.Interface over *entry and keeps the index map in sync.
type heapSlice[T comparable] struct {
	entries []*entry[T]
	slots   map[T]*entry[T]
}

func (h *heapSlice[T]) Len() int { return len(h.entries) }

func (h *heapSlice[T]) Less(i, j int) bool {
	a, b := h.entries[i], h.entries[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}

	return a.seq < b.seq
}

func (h *heapSlice[T]) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.entries[i].index = i
	h.entries[j].index = j
}

func (h *heapSlice[T]) Push(x any) {
	e := x.(*entry[T])
	e.index = len(h.entries)
	h.entries = append(h.entries, e)
	h.slots[e.item] = e
}

func (h *heapSlice[T]) Pop() any {
	old := h.entries
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	h.entries = old[:n-1]
	delete(h.slots, e.item)
	e.index = -1

	return e
}

// HeapMinPQ is an ExtrinsicMinPQ backed by container/heap.
// It is not safe for concurrent use.
type HeapMinPQ[T comparable] struct {
	h   heapSlice[T]
	seq uint64
}

var _ ExtrinsicMinPQ[string] = (*HeapMinPQ[string])(nil)

// NewHeapMinPQ returns an empty queue.
func NewHeapMinPQ[T comparable]() *HeapMinPQ[T] {
	return &HeapMinPQ[T]{h: heapSlice[T]{slots: make(map[T]*entry[T])}}
}

// HeapFactory adapts NewHeapMinPQ to the Factory signature.
func HeapFactory[T comparable]() Factory[T] {
	return func() ExtrinsicMinPQ[T] { return NewHeapMinPQ[T]() }
}

// Add queues item with the given priority.
// Returns ErrDuplicateItem if item is already queued.
func (q *HeapMinPQ[T]) Add(item T, priority float64) error {
	if _, ok := q.h.slots[item]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateItem, item)
	}
	q.seq++
	heap.Push(&q.h, &entry[T]{item: item, priority: priority, seq: q.seq})

	return nil
}

// Contains reports whether item is currently queued.
func (q *HeapMinPQ[T]) Contains(item T) bool {
	_, ok := q.h.slots[item]
	return ok
}

// PeekMin returns the minimum-priority item without removing it.
func (q *HeapMinPQ[T]) PeekMin() (T, error) {
	if len(q.h.entries) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	return q.h.entries[0].item, nil
}

// RemoveMin removes and returns the minimum-priority item.
func (q *HeapMinPQ[T]) RemoveMin() (T, error) {
	if len(q.h.entries) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	e := heap.Pop(&q.h).(*entry[T])

	return e.item, nil
}

// ChangePriority sets a new priority for a queued item, moving it up or
// down as needed. Returns ErrItemNotFound if item is not queued.
func (q *HeapMinPQ[T]) ChangePriority(item T, priority float64) error {
	e, ok := q.h.slots[item]
	if !ok {
		return fmt.Errorf("%w: %v", ErrItemNotFound, item)
	}
	e.priority = priority
	heap.Fix(&q.h, e.index)

	return nil
}

// Priority returns the current priority of a queued item.
func (q *HeapMinPQ[T]) Priority(item T) (float64, bool) {
	e, ok := q.h.slots[item]
	if !ok {
		return 0, false
	}

	return e.priority, true
}

// IsEmpty reports whether the queue holds no items.
func (q *HeapMinPQ[T]) IsEmpty() bool { return len(q.h.entries) == 0 }

// Len returns the number of queued items.
func (q *HeapMinPQ[T]) Len() int { return len(q.h.entries) }
