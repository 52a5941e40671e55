// SPDX-License-Identifier: MIT
// Package: kdspace/kdtree
//
// types.go: key model, comparator contract, options and the Tree handle.
//
// Contract:
//   • AxisCompare returns <0, 0, >0 for a<b, a==b, a>b on one axis.
//   • Full-key order is lexicographic over axes 0..dims-1.
//   • Option constructors panic on nil inputs; tree operations do not.

package kdtree

import (
	"cmp"
	"fmt"
	"strings"
)

// AxisCompare compares component axis of a and b.
// Implementations must be a total order per axis for every axis in [0, dims).
type AxisCompare[K any] func(a, b K, axis int) int

// Pair is one (key, value) element of a bulk construction input.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Point is a homogeneous key whose components share one ordered type.
type Point[T cmp.Ordered] []T

// Dims reports the number of components in p.
func (p Point[T]) Dims() int { return len(p) }

// String renders p as "(x,y,...)".
func (p Point[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range p {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprint(&sb, c)
	}
	sb.WriteByte(')')
	return sb.String()
}

// ComparePoints is the AxisCompare for Point keys.
func ComparePoints[T cmp.Ordered](a, b Point[T], axis int) int {
	return cmp.Compare(a[axis], b[axis])
}

// dimensioned is implemented by keys that can report their own arity.
// Such keys are checked against the tree arity before use.
type dimensioned interface {
	Dims() int
}

// Option customizes a Tree at construction time.
type Option[K any] func(*options[K])

type options[K any] struct {
	formatKey func(K) string
}

func defaultOptions[K any]() options[K] {
	return options[K]{
		formatKey: func(k K) string { return fmt.Sprint(k) },
	}
}

// WithKeyFormatter sets how keys are rendered by Render.
// Panics on nil.
func WithKeyFormatter[K any](fn func(K) string) Option[K] {
	if fn == nil {
		panic("kdtree: WithKeyFormatter(nil)")
	}
	return func(o *options[K]) {
		o.formatKey = fn
	}
}

// Tree is a k-d tree mapping keys of arity dims to values.
// The zero Tree is not usable; create one with New or Build.
type Tree[K, V any] struct {
	root *node[K, V]
	size int
	dims int
	cmp  AxisCompare[K]
	opts options[K]
}

// compareKeys orders a and b lexicographically over all axes.
func (t *Tree[K, V]) compareKeys(a, b K) int {
	for axis := 0; axis < t.dims; axis++ {
		if c := t.cmp(a, b, axis); c != 0 {
			return c
		}
	}
	return 0
}

// compareOnAxis orders a and b by one axis, breaking ties by full key.
func (t *Tree[K, V]) compareOnAxis(a, b K, axis int) int {
	if c := t.cmp(a, b, axis); c != 0 {
		return c
	}
	return t.compareKeys(a, b)
}

// next returns the discriminating axis one level below axis.
func (t *Tree[K, V]) next(axis int) int {
	return (axis + 1) % t.dims
}

// checkKey rejects keys that report an arity different from the tree's.
func (t *Tree[K, V]) checkKey(key K) error {
	if d, ok := any(key).(dimensioned); ok && d.Dims() != t.dims {
		return fmt.Errorf("%w: key has %d components, tree has %d", ErrDimensionMismatch, d.Dims(), t.dims)
	}
	return nil
}
