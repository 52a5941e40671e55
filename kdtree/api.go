// SPDX-License-Identifier: MIT
// Package: kdspace/kdtree
//
// api.go: constructors, lifecycle (copy / assign / clear) and read-only getters.
//
// Lifecycle:
//   • Clone deep-copies every node; the copy shares nothing with the source.
//   • Assign and Clear release the destination's nodes post-order, exactly once.
//   • Released nodes are retired, so cursors into them report ErrCursorInvalid.

package kdtree

import (
	"cmp"
	"iter"
)

// New returns an empty tree of arity dims ordered by cmp.
//
// Errors:
//   - ErrInvalidDims if dims < 1.
//   - ErrNilCompare if cmp is nil.
func New[K, V any](dims int, cmp AxisCompare[K], opts ...Option[K]) (*Tree[K, V], error) {
	if dims < 1 {
		return nil, ErrInvalidDims
	}
	if cmp == nil {
		return nil, ErrNilCompare
	}
	o := defaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	return &Tree[K, V]{dims: dims, cmp: cmp, opts: o}, nil
}

// NewPointTree returns an empty tree keyed by Point[T] of arity dims.
func NewPointTree[T cmp.Ordered, V any](dims int, opts ...Option[Point[T]]) (*Tree[Point[T], V], error) {
	return New[Point[T], V](dims, ComparePoints[T], opts...)
}

// BuildPoints is Build for Point[T] keys.
func BuildPoints[T cmp.Ordered, V any](dims int, pairs []Pair[Point[T], V], opts ...Option[Point[T]]) (*Tree[Point[T], V], error) {
	return Build(dims, ComparePoints[T], pairs, opts...)
}

// Len returns the number of stored keys.
func (t *Tree[K, V]) Len() int { return t.size }

// Dims returns the key arity fixed at construction.
func (t *Tree[K, V]) Dims() int { return t.dims }

// Height returns the number of levels; 0 for an empty tree.
// Complexity: O(n).
func (t *Tree[K, V]) Height() int { return height(t.root) }

// Clone returns an independent deep copy of t.
// Complexity: O(n).
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	return &Tree[K, V]{
		root: cloneSubtree(t.root, nil),
		size: t.size,
		dims: t.dims,
		cmp:  t.cmp,
		opts: t.opts,
	}
}

// Assign replaces the contents of t with a deep copy of src, releasing t's
// existing nodes first. Assigning a tree to itself is a no-op; a nil src
// leaves t empty.
// Complexity: O(len(t) + len(src)).
func (t *Tree[K, V]) Assign(src *Tree[K, V]) {
	if src == t {
		return
	}
	t.Clear()
	if src == nil {
		return
	}
	t.dims, t.cmp, t.opts = src.dims, src.cmp, src.opts
	t.root = cloneSubtree(src.root, nil)
	t.size = src.size
}

// Clear releases every node, children before parents, and leaves t empty.
// Arity and comparator are kept.
func (t *Tree[K, V]) Clear() {
	releaseSubtree(t.root)
	t.root = nil
	t.size = 0
}

// All yields every (key, value) in cursor order, Begin to End.
// The tree must not be mutated structurally during the iteration.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for c := t.Begin(); c.Valid(); _ = c.Next() {
			if !yield(c.node.key, c.node.value) {
				return
			}
		}
	}
}

// Backward yields every (key, value) in reverse cursor order, End to Begin.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		c := t.End()
		for c.Prev() == nil {
			if !yield(c.node.key, c.node.value) {
				return
			}
		}
	}
}

// Keys returns the keys in cursor order.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}
