// Package disjointset implements the disjoint-set (union-find) abstract data
// type used by Kruskal's minimum-spanning-tree algorithm.
//
// Contract (DisjointSets[T]):
//
//   - MakeSet(item)       registers item as its own singleton set.
//   - FindSet(item)       returns the representative handle of item's set.
//   - Union(item1, item2) merges two sets; false when already joined.
//
// Implementations:
//
//   - UnionBySize: dense parent/size slices indexed by a registration-order
//     handle, union by size and full path compression. Amortized cost per
//     operation is O(α(n)), effectively constant.
//   - QuickFind: direct representative labels; O(1) FindSet, O(n) Union.
//     Useful as a baseline and as a test oracle.
//
// Errors:
//
//   - ErrUnknownItem   FindSet/Union on an item never passed to MakeSet.
//   - ErrDuplicateItem MakeSet on an item that is already registered.
//
// Both are precondition violations and are reported immediately; nothing
// is registered or merged when they occur.
package disjointset
