// SPDX-License-Identifier: MIT
// Package: kdspace/kdtree
//
// cursor.go: bidirectional in-order traversal driven only by node links.
//
// Order: left subtree, node, right subtree, over the physical tree shape.
// No stack is kept; successor and predecessor are recovered through parent
// links, O(h) worst case per step.

package kdtree

import "fmt"

// Cursor is a position in a Tree: a live node or the End sentinel.
// Cursors are small values; copy them freely. A cursor stays usable across
// Insert, and fails with ErrCursorInvalid once its node is erased.
type Cursor[K, V any] struct {
	tree *Tree[K, V]
	node *node[K, V]
}

func (t *Tree[K, V]) cursor(n *node[K, V]) Cursor[K, V] {
	return Cursor[K, V]{tree: t, node: n}
}

// Begin returns a cursor on the leftmost node, or End for an empty tree.
func (t *Tree[K, V]) Begin() Cursor[K, V] {
	if t.root == nil {
		return t.End()
	}
	return t.cursor(t.root.leftmost())
}

// End returns the past-the-last sentinel.
func (t *Tree[K, V]) End() Cursor[K, V] {
	return t.cursor(nil)
}

// check rejects zero cursors and cursors on retired nodes.
func (c *Cursor[K, V]) check() error {
	if c.tree == nil {
		return fmt.Errorf("%w: zero cursor", ErrCursorInvalid)
	}
	if c.node != nil && c.node.dead {
		return fmt.Errorf("%w: node was removed", ErrCursorInvalid)
	}
	return nil
}

// Valid reports whether c is positioned on a live element.
func (c Cursor[K, V]) Valid() bool {
	return c.tree != nil && c.node != nil && !c.node.dead
}

// IsEnd reports whether c is the End sentinel of its tree.
func (c Cursor[K, V]) IsEnd() bool {
	return c.tree != nil && c.node == nil
}

// Equal reports whether c and other denote the same position of the same tree.
func (c Cursor[K, V]) Equal(other Cursor[K, V]) bool {
	return c.tree == other.tree && c.node == other.node
}

// Next advances c to its in-order successor; from the last element it moves
// to End. Advancing End fails with ErrCursorEnd and leaves c unchanged.
func (c *Cursor[K, V]) Next() error {
	if err := c.check(); err != nil {
		return fmt.Errorf("Next: %w", err)
	}
	if c.node == nil {
		return fmt.Errorf("Next: %w", ErrCursorEnd)
	}
	if c.node.right != nil {
		c.node = c.node.right.leftmost()
		return nil
	}
	// Climb while we are a right child; the parent of the first left child is
	// the successor. Running off the root means c was the rightmost node.
	n := c.node
	for n.parent != nil && n == n.parent.right {
		n = n.parent
	}
	c.node = n.parent
	return nil
}

// Prev retreats c to its in-order predecessor; from End it moves to the last
// element. Retreating from the first element (or from End of an empty tree)
// fails with ErrCursorBegin and leaves c unchanged.
func (c *Cursor[K, V]) Prev() error {
	if err := c.check(); err != nil {
		return fmt.Errorf("Prev: %w", err)
	}
	if c.node == nil {
		if c.tree.root == nil {
			return fmt.Errorf("Prev: empty tree: %w", ErrCursorBegin)
		}
		c.node = c.tree.root.rightmost()
		return nil
	}
	if c.node.left != nil {
		c.node = c.node.left.rightmost()
		return nil
	}
	n := c.node
	for n.parent != nil && n == n.parent.left {
		n = n.parent
	}
	if n.parent == nil {
		return fmt.Errorf("Prev: %w", ErrCursorBegin)
	}
	c.node = n.parent
	return nil
}

// Entry returns the key and value under c.
//
// Errors:
//   - ErrCursorEnd if c is End.
//   - ErrCursorInvalid if c is zero or its node was removed.
func (c Cursor[K, V]) Entry() (K, V, error) {
	var (
		k K
		v V
	)
	if err := c.check(); err != nil {
		return k, v, fmt.Errorf("Entry: %w", err)
	}
	if c.node == nil {
		return k, v, fmt.Errorf("Entry: %w", ErrCursorEnd)
	}
	return c.node.key, c.node.value, nil
}

// Key returns the key under c. It panics if c is not Valid.
func (c Cursor[K, V]) Key() K {
	k, _, err := c.Entry()
	if err != nil {
		panic(err)
	}
	return k
}

// Value returns the value under c. It panics if c is not Valid.
func (c Cursor[K, V]) Value() V {
	_, v, err := c.Entry()
	if err != nil {
		panic(err)
	}
	return v
}

// SetValue replaces the value under c in place.
func (c Cursor[K, V]) SetValue(v V) error {
	if err := c.check(); err != nil {
		return fmt.Errorf("SetValue: %w", err)
	}
	if c.node == nil {
		return fmt.Errorf("SetValue: %w", ErrCursorEnd)
	}
	c.node.value = v
	return nil
}
