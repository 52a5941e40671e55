// SPDX-License-Identifier: MIT
// Package: kdspace/kdtree
//
// extremal.go: per-axis minimum and maximum queries.
//
// Pruning rule (required for correctness of erase repair, not an optimization):
//   • min: always search left; search right only when the query axis differs
//     from the node's discriminating axis.
//   • max: always search right; search left only when the axes differ.
// The axis value of the result is always the true extreme. Among keys tied on
// the query axis, ties are broken by full-key order over the candidates the
// pruned search visits; an equal key in a pruned subtree is not considered, so
// the result is deterministic for a given tree shape but need not be the
// full-key minimum (or maximum) of the tie group.

package kdtree

import "fmt"

// minNode returns the node of the subtree rooted at n (discriminating on
// axis) with the smallest component target.
func (t *Tree[K, V]) minNode(n *node[K, V], target, axis int) *node[K, V] {
	if n == nil {
		return nil
	}
	next := t.next(axis)
	best := t.minNode(n.left, target, next)
	if target != axis {
		best = t.lesser(best, t.minNode(n.right, target, next), target)
	}
	return t.lesser(best, n, target)
}

// maxNode mirrors minNode.
func (t *Tree[K, V]) maxNode(n *node[K, V], target, axis int) *node[K, V] {
	if n == nil {
		return nil
	}
	next := t.next(axis)
	best := t.maxNode(n.right, target, next)
	if target != axis {
		best = t.greater(best, t.maxNode(n.left, target, next), target)
	}
	return t.greater(best, n, target)
}

func (t *Tree[K, V]) lesser(a, b *node[K, V], axis int) *node[K, V] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if t.compareOnAxis(a.key, b.key, axis) < 0 {
		return a
	}
	return b
}

func (t *Tree[K, V]) greater(a, b *node[K, V], axis int) *node[K, V] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if t.compareOnAxis(a.key, b.key, axis) > 0 {
		return a
	}
	return b
}

func (t *Tree[K, V]) checkAxis(axis int) error {
	if axis < 0 || axis >= t.dims {
		return fmt.Errorf("%w: axis=%d dims=%d", ErrAxisOutOfRange, axis, t.dims)
	}
	return nil
}

// FindMin returns a cursor on the key with the smallest component axis.
// An empty tree yields End.
//
// Errors:
//   - ErrAxisOutOfRange if axis is outside [0, Dims()).
func (t *Tree[K, V]) FindMin(axis int) (Cursor[K, V], error) {
	if err := t.checkAxis(axis); err != nil {
		return t.End(), fmt.Errorf("FindMin: %w", err)
	}
	return t.cursor(t.minNode(t.root, axis, 0)), nil
}

// FindMax returns a cursor on the key with the largest component axis.
// An empty tree yields End.
//
// Errors:
//   - ErrAxisOutOfRange if axis is outside [0, Dims()).
func (t *Tree[K, V]) FindMax(axis int) (Cursor[K, V], error) {
	if err := t.checkAxis(axis); err != nil {
		return t.End(), fmt.Errorf("FindMax: %w", err)
	}
	return t.cursor(t.maxNode(t.root, axis, 0)), nil
}

// FindMinDim is the runtime-axis form of FindMin for callers that only learn
// the axis at run time. dim is reduced modulo Dims() (negative values wrap).
func (t *Tree[K, V]) FindMinDim(dim int) Cursor[K, V] {
	return t.cursor(t.dispatchAxis(dim, func(axis int) *node[K, V] {
		return t.minNode(t.root, axis, 0)
	}))
}

// FindMaxDim is the runtime-axis form of FindMax.
func (t *Tree[K, V]) FindMaxDim(dim int) Cursor[K, V] {
	return t.cursor(t.dispatchAxis(dim, func(axis int) *node[K, V] {
		return t.maxNode(t.root, axis, 0)
	}))
}

// dispatchAxis normalizes dim and walks the axis candidates until one
// matches, then runs query on that axis.
func (t *Tree[K, V]) dispatchAxis(dim int, query func(axis int) *node[K, V]) *node[K, V] {
	dim = ((dim % t.dims) + t.dims) % t.dims
	for axis := 0; axis < t.dims; axis++ {
		if axis == dim {
			return query(axis)
		}
	}
	return nil
}
