// SPDX-License-Identifier: MIT
// Package: kdspace/kdtree
//
// erase.go: deletion with structural repair.
//
// Strategy (structural copy, not pointer splice):
//   1) Leaf: unlink and release.
//   2) Right subtree present: R = min of the right subtree on THIS node's axis.
//      A fresh node carrying R's key/value takes the erased node's place and
//      adopts its children; R's key is then erased from the right subtree one
//      axis further down.
//   3) Only a left subtree: L = max of the left subtree on this node's axis,
//      same replacement, recursion into the left subtree. When another key of
//      the left subtree shares L's axis component, keeping it on the left would
//      break the strict-left invariant, so the min of the left subtree is used
//      instead and the subtree moves to the right.
//
// The erased node is retired (dead, unlinked) so cursors on it fail loudly.

package kdtree

import "fmt"

// eraseKey removes key from the subtree rooted at n (discriminating on axis)
// and returns the node now at the subtree root.
func (t *Tree[K, V]) eraseKey(n *node[K, V], key K, axis int) *node[K, V] {
	if n == nil {
		return nil
	}
	if t.compareKeys(key, n.key) == 0 {
		return t.eraseNode(n, axis)
	}
	next := t.next(axis)
	if t.cmp(key, n.key, axis) < 0 {
		n.left = t.eraseKey(n.left, key, next)
	} else {
		n.right = t.eraseKey(n.right, key, next)
	}
	return n
}

// eraseNode removes n, which discriminates on axis, and returns the node now
// occupying its position (nil when n was a leaf).
func (t *Tree[K, V]) eraseNode(n *node[K, V], axis int) *node[K, V] {
	if n.isLeaf() {
		t.relink(n, nil)
		n.retire()
		t.size--
		return nil
	}

	next := t.next(axis)
	if n.right != nil {
		succ := t.minNode(n.right, axis, next)
		repl := t.replace(n, succ)
		repl.right = t.eraseKey(repl.right, succ.key, next)
		return repl
	}

	pred := t.maxNode(n.left, axis, next)
	if !t.sharesAxis(n.left, pred.key, axis, next) {
		repl := t.replace(n, pred)
		repl.left = t.eraseKey(repl.left, pred.key, next)
		return repl
	}

	succ := t.minNode(n.left, axis, next)
	repl := t.replace(n, succ)
	repl.left, repl.right = nil, repl.left
	repl.right = t.eraseKey(repl.right, succ.key, next)
	return repl
}

// replace installs a fresh node carrying src's key and value at n's position,
// hands n's children to it, and retires n.
func (t *Tree[K, V]) replace(n, src *node[K, V]) *node[K, V] {
	repl := newNode(src.key, src.value, n.parent)
	repl.left, repl.right = n.left, n.right
	if repl.left != nil {
		repl.left.parent = repl
	}
	if repl.right != nil {
		repl.right.parent = repl
	}
	t.relink(n, repl)
	n.retire()
	return repl
}

// sharesAxis reports whether the subtree rooted at n (discriminating on axis)
// holds a key other than key with the same component target.
func (t *Tree[K, V]) sharesAxis(n *node[K, V], key K, target, axis int) bool {
	if n == nil {
		return false
	}
	c := t.cmp(key, n.key, target)
	if c == 0 && t.compareKeys(key, n.key) != 0 {
		return true
	}
	next := t.next(axis)
	switch {
	case target != axis:
		return t.sharesAxis(n.left, key, target, next) || t.sharesAxis(n.right, key, target, next)
	case c < 0:
		return t.sharesAxis(n.left, key, target, next)
	default:
		return t.sharesAxis(n.right, key, target, next)
	}
}

// Erase removes key and reports whether it was present.
// Cursors on the erased node, and on the replacement nodes moved during
// repair, become invalid.
func (t *Tree[K, V]) Erase(key K) bool {
	if t.checkKey(key) != nil {
		return false
	}
	before := t.size
	t.root = t.eraseKey(t.root, key, 0)
	return t.size < before
}

// EraseAt removes the element under c. The node's axis is recovered by
// walking parent links to the root, O(depth).
//
// The returned cursor points at the erased node's parent when a leaf was
// removed (End when that leaf was the root), and otherwise at the
// replacement node now occupying the erased position. Neither is necessarily
// the in-order successor of the erased key: a replacement taken from the left
// subtree precedes it.
//
// Errors:
//   - ErrForeignCursor if c was obtained from another tree.
//   - ErrCursorInvalid if c is the zero Cursor or its node was already removed.
//   - ErrCursorEnd if c is End.
func (t *Tree[K, V]) EraseAt(c Cursor[K, V]) (Cursor[K, V], error) {
	if c.tree != nil && c.tree != t {
		return t.End(), fmt.Errorf("EraseAt: %w", ErrForeignCursor)
	}
	if err := c.check(); err != nil {
		return t.End(), fmt.Errorf("EraseAt: %w", err)
	}
	if c.node == nil {
		return t.End(), fmt.Errorf("EraseAt: %w", ErrCursorEnd)
	}

	n := c.node
	axis := n.depth() % t.dims
	if n.isLeaf() {
		parent := n.parent
		t.eraseNode(n, axis)
		return t.cursor(parent), nil
	}
	return t.cursor(t.eraseNode(n, axis)), nil
}
