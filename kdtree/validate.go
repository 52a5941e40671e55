// SPDX-License-Identifier: MIT
// Package: kdspace/kdtree
//
// validate.go: structural self-check used by tests and tooling.

package kdtree

import "fmt"

// Validate checks that every node satisfies the axis invariant (left subtree
// strictly less, right subtree greater or equal on the node's axis), that
// parent links mirror child links, that no retired node is reachable, and
// that Len matches the number of reachable nodes.
//
// The bounds are taken with a full subtree scan rather than the pruned
// extremal queries, since those assume the invariant being checked.
//
// Complexity: O(n·h) - each node is scanned once per ancestor.
func (t *Tree[K, V]) Validate() error {
	if t.root != nil && t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvariantViolated)
	}
	count, err := t.validate(t.root, 0)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size=%d but %d nodes reachable", ErrInvariantViolated, t.size, count)
	}
	return nil
}

func (t *Tree[K, V]) validate(n *node[K, V], axis int) (int, error) {
	if n == nil {
		return 0, nil
	}
	if n.dead {
		return 0, fmt.Errorf("%w: retired node %s reachable", ErrInvariantViolated, t.opts.formatKey(n.key))
	}
	next := t.next(axis)
	if n.left != nil {
		if n.left.parent != n {
			return 0, fmt.Errorf("%w: broken parent link under %s", ErrInvariantViolated, t.opts.formatKey(n.key))
		}
		if m := t.scanMax(n.left, axis); t.cmp(m.key, n.key, axis) >= 0 {
			return 0, fmt.Errorf("%w: left key %s not below %s on axis %d",
				ErrInvariantViolated, t.opts.formatKey(m.key), t.opts.formatKey(n.key), axis)
		}
	}
	if n.right != nil {
		if n.right.parent != n {
			return 0, fmt.Errorf("%w: broken parent link under %s", ErrInvariantViolated, t.opts.formatKey(n.key))
		}
		if m := t.scanMin(n.right, axis); t.cmp(m.key, n.key, axis) < 0 {
			return 0, fmt.Errorf("%w: right key %s below %s on axis %d",
				ErrInvariantViolated, t.opts.formatKey(m.key), t.opts.formatKey(n.key), axis)
		}
	}
	left, err := t.validate(n.left, next)
	if err != nil {
		return 0, err
	}
	right, err := t.validate(n.right, next)
	if err != nil {
		return 0, err
	}
	return left + right + 1, nil
}

// scanMin visits every node under n and returns the one with the smallest
// component axis.
func (t *Tree[K, V]) scanMin(n *node[K, V], axis int) *node[K, V] {
	if n == nil {
		return nil
	}
	best := t.lesser(t.scanMin(n.left, axis), t.scanMin(n.right, axis), axis)
	return t.lesser(best, n, axis)
}

// scanMax mirrors scanMin.
func (t *Tree[K, V]) scanMax(n *node[K, V], axis int) *node[K, V] {
	if n == nil {
		return nil
	}
	best := t.greater(t.scanMax(n.left, axis), t.scanMax(n.right, axis), axis)
	return t.greater(best, n, axis)
}
