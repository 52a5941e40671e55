// SPDX-License-Identifier: MIT
// Package: kdspace/kdtree
//
// node.go: the node store: allocation, deep copy, post-order release.
//
// Ownership:
//   • left/right are owning links; parent is a back-reference used only by
//     cursor walks and depth computation.
//   • A released node is marked dead and unlinked so stale cursors fail
//     instead of wandering through detached structure.

package kdtree

type node[K, V any] struct {
	key    K
	value  V
	parent *node[K, V]
	left   *node[K, V]
	right  *node[K, V]
	dead   bool
}

func newNode[K, V any](key K, value V, parent *node[K, V]) *node[K, V] {
	return &node[K, V]{key: key, value: value, parent: parent}
}

func (n *node[K, V]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (n *node[K, V]) leftmost() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[K, V]) rightmost() *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// depth counts parent links up to the root. O(depth).
func (n *node[K, V]) depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// retire marks n dead and drops all of its links.
func (n *node[K, V]) retire() {
	n.dead = true
	n.parent, n.left, n.right = nil, nil, nil
}

// cloneSubtree deep-copies the subtree rooted at n, attaching it to parent.
// Complexity: O(size of subtree).
func cloneSubtree[K, V any](n, parent *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	cp := newNode(n.key, n.value, parent)
	cp.left = cloneSubtree(n.left, cp)
	cp.right = cloneSubtree(n.right, cp)
	return cp
}

// releaseSubtree retires every node of the subtree rooted at n exactly once,
// children before parent, and returns how many nodes were released.
func releaseSubtree[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	released := releaseSubtree(n.left) + releaseSubtree(n.right)
	n.retire()
	return released + 1
}

// height returns the number of levels in the subtree rooted at n.
func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// relink puts repl into the slot that old occupies (parent child link or root).
// repl may be nil.
func (t *Tree[K, V]) relink(old, repl *node[K, V]) {
	p := old.parent
	switch {
	case p == nil:
		t.root = repl
	case p.left == old:
		p.left = repl
	default:
		p.right = repl
	}
	if repl != nil {
		repl.parent = p
	}
}
