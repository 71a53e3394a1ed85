package disjointset

import "fmt"

// UnionBySize is a disjoint-set forest stored in two dense slices indexed by
// a handle assigned at registration time.
//
//	parent[h] == h  → h is a representative
//	size[h]         → item count of the set rooted at h (valid at roots only)
//
// Union attaches the smaller tree under the larger one and FindSet applies
// full path compression, giving inverse-Ackermann amortized cost per call.
//
// UnionBySize is not safe for concurrent use.
type UnionBySize[T comparable] struct {
	handles map[T]int // item → handle
	parent  []int
	size    []int
	sets    int // number of disjoint sets
}

var _ DisjointSets[string] = (*UnionBySize[string])(nil)

// NewUnionBySize returns an empty forest.
// Complexity: O(Capacity).
func NewUnionBySize[T comparable](opts ...Option) *UnionBySize[T] {
	cfg := buildOptions(opts)

	return &UnionBySize[T]{
		handles: make(map[T]int, cfg.Capacity),
		parent:  make([]int, 0, cfg.Capacity),
		size:    make([]int, 0, cfg.Capacity),
	}
}

// UnionBySizeFactory adapts NewUnionBySize to the Factory signature.
func UnionBySizeFactory[T comparable](opts ...Option) Factory[T] {
	return func() DisjointSets[T] { return NewUnionBySize[T](opts...) }
}

// MakeSet registers item as a singleton of size 1.
// Returns ErrDuplicateItem if item is already registered.
// Complexity: O(1) amortized.
func (u *UnionBySize[T]) MakeSet(item T) error {
	if _, ok := u.handles[item]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateItem, item)
	}
	h := len(u.parent)
	u.handles[item] = h
	u.parent = append(u.parent, h)
	u.size = append(u.size, 1)
	u.sets++

	return nil
}

// FindSet returns the representative handle of item's set.
//
// Two passes over the parent chain: the first finds the root, the second
// repoints every visited handle directly at it.
//
// Complexity: O(α(n)) amortized.
func (u *UnionBySize[T]) FindSet(item T) (int, error) {
	h, ok := u.handles[item]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownItem, item)
	}

	return u.root(h), nil
}

func (u *UnionBySize[T]) root(h int) int {
	r := h
	for u.parent[r] != r {
		r = u.parent[r]
	}
	for u.parent[h] != r {
		next := u.parent[h]
		u.parent[h] = r
		h = next
	}

	return r
}

// Union merges the sets of item1 and item2.
//
// Ties in size keep item1's representative, so repeated unions over equal
// input produce identical forests.
//
// Complexity: O(α(n)) amortized.
func (u *UnionBySize[T]) Union(item1, item2 T) (bool, error) {
	r1, err := u.FindSet(item1)
	if err != nil {
		return false, err
	}
	r2, err := u.FindSet(item2)
	if err != nil {
		return false, err
	}
	if r1 == r2 {
		return false, nil
	}

	if u.size[r1] < u.size[r2] {
		r1, r2 = r2, r1
	}
	u.parent[r2] = r1
	u.size[r1] += u.size[r2]
	u.sets--

	return true, nil
}

// Connected reports whether item1 and item2 share a set.
func (u *UnionBySize[T]) Connected(item1, item2 T) (bool, error) {
	r1, err := u.FindSet(item1)
	if err != nil {
		return false, err
	}
	r2, err := u.FindSet(item2)
	if err != nil {
		return false, err
	}

	return r1 == r2, nil
}

// SetSize returns the number of items in item's set.
func (u *UnionBySize[T]) SetSize(item T) (int, error) {
	r, err := u.FindSet(item)
	if err != nil {
		return 0, err
	}

	return u.size[r], nil
}

// Len returns the number of registered items.
func (u *UnionBySize[T]) Len() int { return len(u.parent) }

// Count returns the number of disjoint sets.
func (u *UnionBySize[T]) Count() int { return u.sets }
