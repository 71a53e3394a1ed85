package disjointset

import "fmt"

// QuickFind stores, for every handle, the handle of its set's
// representative directly. FindSet is a single lookup; Union relabels every
// member of the smaller set.
//
// It is kept as a reference strategy: simple enough to be obviously right,
// which makes it a good oracle and benchmark baseline for UnionBySize.
type QuickFind[T comparable] struct {
	handles map[T]int
	label   []int         // handle → representative handle
	members map[int][]int // representative → member handles
}

var _ DisjointSets[string] = (*QuickFind[string])(nil)

// NewQuickFind returns an empty QuickFind.
func NewQuickFind[T comparable](opts ...Option) *QuickFind[T] {
	cfg := buildOptions(opts)

	return &QuickFind[T]{
		handles: make(map[T]int, cfg.Capacity),
		label:   make([]int, 0, cfg.Capacity),
		members: make(map[int][]int, cfg.Capacity),
	}
}

// QuickFindFactory adapts NewQuickFind to the Factory signature.
func QuickFindFactory[T comparable](opts ...Option) Factory[T] {
	return func() DisjointSets[T] { return NewQuickFind[T](opts...) }
}

// MakeSet registers item as a singleton. Complexity: O(1) amortized.
func (q *QuickFind[T]) MakeSet(item T) error {
	if _, ok := q.handles[item]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateItem, item)
	}
	h := len(q.label)
	q.handles[item] = h
	q.label = append(q.label, h)
	q.members[h] = []int{h}

	return nil
}

// FindSet returns item's representative handle. Complexity: O(1).
func (q *QuickFind[T]) FindSet(item T) (int, error) {
	h, ok := q.handles[item]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownItem, item)
	}

	return q.label[h], nil
}

// Union relabels the smaller set into the larger one (ties keep item1's).
// Complexity: O(min(|S1|, |S2|)).
func (q *QuickFind[T]) Union(item1, item2 T) (bool, error) {
	r1, err := q.FindSet(item1)
	if err != nil {
		return false, err
	}
	r2, err := q.FindSet(item2)
	if err != nil {
		return false, err
	}
	if r1 == r2 {
		return false, nil
	}

	if len(q.members[r1]) < len(q.members[r2]) {
		r1, r2 = r2, r1
	}
	for _, h := range q.members[r2] {
		q.label[h] = r1
	}
	q.members[r1] = append(q.members[r1], q.members[r2]...)
	delete(q.members, r2)

	return true, nil
}

// SetSize returns the number of items in item's set.
func (q *QuickFind[T]) SetSize(item T) (int, error) {
	r, err := q.FindSet(item)
	if err != nil {
		return 0, err
	}

	return len(q.members[r]), nil
}

// Connected reports whether item1 and item2 share a set.
func (q *QuickFind[T]) Connected(item1, item2 T) (bool, error) {
	r1, err := q.FindSet(item1)
	if err != nil {
		return false, err
	}
	r2, err := q.FindSet(item2)
	if err != nil {
		return false, err
	}

	return r1 == r2, nil
}

// Len returns the number of registered items.
func (q *QuickFind[T]) Len() int { return len(q.label) }

// Count returns the number of disjoint sets.
func (q *QuickFind[T]) Count() int { return len(q.members) }
