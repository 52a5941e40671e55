// Package kdtree provides a multi-dimensional binary search tree (k-d tree)
// with ordered insertion, point lookup, per-axis extremal queries, deletion
// with structural repair, and a bidirectional cursor that walks the tree
// purely through parent links.
//
// What
//
//   - Keys are any Go type K with a fixed arity (dims ≥ 1) chosen when the
//     tree is created. Components are compared through an AxisCompare[K].
//   - Point[T] is a ready-made homogeneous key for cmp.Ordered components.
//   - At depth d a node discriminates on axis d mod dims: every key in its
//     left subtree is strictly less on that axis, every key in its right
//     subtree is greater or equal.
//   - Keys are unique. Build deduplicates (last occurrence wins); Insert on
//     an existing key overwrites only the value.
//
// Construction
//
//	Build sorts the input, drops duplicate keys, and recursively materializes
//	the lower median of every partition on the rotating axis. The result is
//	balanced for the input it was built from; later inserts and erases do not
//	rebalance, so adversarial insertion orders produce skewed trees.
//
// Traversal
//
//	Cursor order is the in-order sequence of the physical tree shape: left
//	subtree, node, right subtree, regardless of the discriminating axis at
//	each level. Begin is the leftmost node; End is a sentinel distinct from
//	every live node. Next past End and Prev before Begin fail with
//	ErrCursorEnd / ErrCursorBegin and leave the cursor unchanged.
//
// Deletion
//
//	Erase replaces the removed node with a fresh node carrying a copy of the
//	replacement key (the minimum of the right subtree on the node's own axis,
//	or the maximum of the left subtree), then removes the original replacement
//	recursively one axis further down. Cursors that referenced a removed or
//	replaced node fail with ErrCursorInvalid; Insert never invalidates cursors.
//
// Complexity (n = Len, h = Height, k = dims)
//
//   - Build:          O(k·n log² n)
//   - Find / Insert:  O(k·h)
//   - FindMin/Max:    O(n^(1-1/k)) on a balanced tree, O(n) worst case
//   - Erase:          O(k·h) plus the extremal search in the repaired subtree
//   - Next / Prev:    O(h) worst case, O(1) amortized over a full walk
//
// Concurrency
//
//	A Tree is not safe for concurrent use. Callers serialize access.
//
// Usage
//
//	tree, err := kdtree.BuildPoints(2, []kdtree.Pair[kdtree.Point[int], string]{
//		{Key: kdtree.Point[int]{2, 4}, Value: "a"},
//		{Key: kdtree.Point[int]{1, 5}, Value: "b"},
//	})
//	if err != nil {
//		// ErrInvalidDims, ErrDimensionMismatch
//	}
//	for c := tree.Begin(); c.Valid(); _ = c.Next() {
//		fmt.Println(c.Key(), c.Value())
//	}
package kdtree
