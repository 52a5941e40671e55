// SPDX-License-Identifier: MIT
// Package: kdspace/kdtree
//
// render.go: human-readable dump of the tree shape.

package kdtree

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Render draws the physical tree shape, one node per line, each labeled
// with its key, value and discriminating axis. Children are tagged [L]/[R].
func (t *Tree[K, V]) Render() string {
	if t.root == nil {
		return treeprint.NewWithRoot("(empty)").String()
	}
	out := treeprint.NewWithRoot(t.label(t.root, 0))
	t.renderChildren(out, t.root, t.next(0))
	return out.String()
}

func (t *Tree[K, V]) renderChildren(branch treeprint.Tree, n *node[K, V], axis int) {
	for _, c := range []struct {
		tag   string
		child *node[K, V]
	}{{"L", n.left}, {"R", n.right}} {
		if c.child == nil {
			continue
		}
		if c.child.isLeaf() {
			branch.AddMetaNode(c.tag, t.label(c.child, axis))
			continue
		}
		sub := branch.AddMetaBranch(c.tag, t.label(c.child, axis))
		t.renderChildren(sub, c.child, t.next(axis))
	}
}

func (t *Tree[K, V]) label(n *node[K, V], axis int) string {
	return fmt.Sprintf("%s: %v (axis %d)", t.opts.formatKey(n.key), n.value, axis)
}
