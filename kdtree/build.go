// SPDX-License-Identifier: MIT
// Package: kdspace/kdtree
//
// build.go: bulk construction by recursive median partition.
//
// Contract:
//   • Input order matters only for duplicates: the last occurrence of a key wins.
//   • Each partition is stable-sorted by (axis component, full key) and split
//     at the lower median; the split moves left over equal axis components so
//     the left partition stays strictly less on the axis.
//   • Resulting Len equals the number of distinct keys.
//
// Complexity:
//   • Time: O(k·n log² n) (one sort per level). Space: O(n) for the working copy.

package kdtree

import (
	"fmt"
	"slices"
)

// Build creates a tree of arity dims from pairs. Duplicate keys are
// silently collapsed, keeping the value of the last occurrence.
func Build[K, V any](dims int, cmp AxisCompare[K], pairs []Pair[K, V], opts ...Option[K]) (*Tree[K, V], error) {
	t, err := New[K, V](dims, cmp, opts...)
	if err != nil {
		return nil, err
	}
	for i := range pairs {
		if err = t.checkKey(pairs[i].Key); err != nil {
			return nil, fmt.Errorf("Build: pair %d: %w", i, err)
		}
	}
	items := t.dedupe(pairs)
	t.root = t.buildLevel(items, nil, 0)
	t.size = len(items)

	return t, nil
}

// dedupe returns a fully ordered copy of pairs with one entry per key.
// SortStableFunc keeps equal keys in input order, so the last of each run wins.
func (t *Tree[K, V]) dedupe(pairs []Pair[K, V]) []Pair[K, V] {
	items := slices.Clone(pairs)
	slices.SortStableFunc(items, func(a, b Pair[K, V]) int {
		return t.compareKeys(a.Key, b.Key)
	})
	out := items[:0]
	for i := range items {
		if i+1 < len(items) && t.compareKeys(items[i].Key, items[i+1].Key) == 0 {
			continue
		}
		out = append(out, items[i])
	}
	return out
}

// buildLevel materializes items as a subtree whose root discriminates on axis.
// items is reordered in place.
func (t *Tree[K, V]) buildLevel(items []Pair[K, V], parent *node[K, V], axis int) *node[K, V] {
	if len(items) == 0 {
		return nil
	}
	slices.SortStableFunc(items, func(a, b Pair[K, V]) int {
		return t.compareOnAxis(a.Key, b.Key, axis)
	})

	// Lower median: size/2-1 when even, size/2 when odd.
	mid := (len(items) - 1) / 2
	for mid > 0 && t.cmp(items[mid-1].Key, items[mid].Key, axis) == 0 {
		mid--
	}

	n := newNode(items[mid].Key, items[mid].Value, parent)
	next := t.next(axis)
	n.left = t.buildLevel(items[:mid], n, next)
	n.right = t.buildLevel(items[mid+1:], n, next)

	return n
}
