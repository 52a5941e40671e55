// SPDX-License-Identifier: MIT
// Package: kdspace/kdtree
//
// errors.go: sentinel errors for the kdtree package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Context is attached with %w at the call site, never baked into the sentinel.
//   • Mutation paths never return ErrInvariantViolated; it is reserved for Validate.

package kdtree

import "errors"

var (
	// ErrInvalidDims is returned when a tree is created with fewer than one axis.
	ErrInvalidDims = errors.New("kdtree: dimension count must be at least 1")

	// ErrNilCompare is returned when a tree is created without an AxisCompare.
	ErrNilCompare = errors.New("kdtree: axis comparator is nil")

	// ErrDimensionMismatch indicates a key whose arity differs from the tree's.
	ErrDimensionMismatch = errors.New("kdtree: key dimension mismatch")

	// ErrAxisOutOfRange is returned by static-axis queries outside [0, dims).
	ErrAxisOutOfRange = errors.New("kdtree: axis out of range")

	// ErrCursorEnd indicates an attempt to advance or dereference the end cursor.
	ErrCursorEnd = errors.New("kdtree: cursor is at end")

	// ErrCursorBegin indicates an attempt to retreat before the first element.
	ErrCursorBegin = errors.New("kdtree: cursor is at begin")

	// ErrCursorInvalid indicates a zero Cursor or one whose node was removed
	// by Erase, EraseAt, Clear or Assign.
	ErrCursorInvalid = errors.New("kdtree: cursor is invalid")

	// ErrForeignCursor is returned by EraseAt when the cursor belongs to another tree.
	ErrForeignCursor = errors.New("kdtree: cursor belongs to a different tree")

	// ErrInvariantViolated is reported by Validate when the axis ordering,
	// parent links or size bookkeeping are inconsistent.
	ErrInvariantViolated = errors.New("kdtree: structural invariant violated")
)
