// SPDX-License-Identifier: MIT
// Package: kdspace/kdtree
//
// find.go: point lookup and single-key insertion.
//
// Both walk the same path: at depth d compare component d mod dims, go left
// when the query is strictly smaller, right otherwise. Insert therefore finds
// an existing key on the way down and never needs a separate lookup pass.

package kdtree

import "fmt"

func (t *Tree[K, V]) findNode(key K) *node[K, V] {
	n, axis := t.root, 0
	for n != nil {
		if t.compareKeys(key, n.key) == 0 {
			return n
		}
		if t.cmp(key, n.key, axis) < 0 {
			n = n.left
		} else {
			n = n.right
		}
		axis = t.next(axis)
	}
	return nil
}

// Find returns a cursor on key, or End when key is absent.
// Complexity: O(k·h).
func (t *Tree[K, V]) Find(key K) Cursor[K, V] {
	if t.checkKey(key) != nil {
		return t.End()
	}
	return t.cursor(t.findNode(key))
}

// Contains reports whether key is stored in the tree.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.checkKey(key) == nil && t.findNode(key) != nil
}

// Insert stores value under key. When key already exists only its value is
// overwritten and Insert reports false; otherwise a new leaf is attached and
// Insert reports true. Existing nodes are never moved, so live cursors stay
// valid.
//
// Errors:
//   - ErrDimensionMismatch if key reports an arity different from Dims().
//
// Complexity: O(k·h).
func (t *Tree[K, V]) Insert(key K, value V) (bool, error) {
	if err := t.checkKey(key); err != nil {
		return false, fmt.Errorf("Insert: %w", err)
	}
	if t.root == nil {
		t.root = newNode(key, value, nil)
		t.size++
		return true, nil
	}

	n, axis := t.root, 0
	for {
		if t.compareKeys(key, n.key) == 0 {
			n.value = value
			return false, nil
		}
		slot := &n.right
		if t.cmp(key, n.key, axis) < 0 {
			slot = &n.left
		}
		if *slot == nil {
			*slot = newNode(key, value, n)
			t.size++
			return true, nil
		}
		n = *slot
		axis = t.next(axis)
	}
}
