// Package kdspace is an in-memory toolkit for multi-dimensional keys:
// a generic k-d tree with median bulk build, per-axis extremal queries,
// key and cursor deletion, and bidirectional cursors.
//
// What is inside?
//
//	kdtree/     - Tree[K, V], Cursor[K, V], Build, Point[T] keys & validation
//	pointgen/   - deterministic point-set generators for tests and benchmarks
//	cmd/kdtree/ - command-line front end: walk, shape, query, erase, demo
//
// Quick ASCII example (2-D, axis 0 at the root, axis 1 below):
//
//	        (3,3)
//	       /     \
//	   (2,4)     (5,1)
//	       \         \
//	       (1,5)     (4,2)
//
// Keys left of a node are strictly smaller on that node's axis; keys on the
// right are greater or equal.
//
//	go get github.com/katalvlaran/kdspace/kdtree
package kdspace
