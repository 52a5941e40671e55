// SPDX-License-Identifier: MIT
// Package: kdspace/pointgen
//
// impl_diagonal.go: Diagonal(n): (i, i, ..., i) for i = 0..n-1.
//
// Inserted one by one in this order the points form a right-skewed chain,
// the worst case for an unbalanced k-d tree.

package pointgen

import "fmt"

const methodDiagonal = "Diagonal"

// Diagonal returns a Constructor emitting the n points (i, i, ..., i).
func Diagonal(n int) Constructor {
	return func(dims int, _ genConfig) ([]Point, error) {
		if n < minPoints {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodDiagonal, n, minPoints, ErrTooFewPoints)
		}
		pts := make([]Point, n)
		for i := range pts {
			pt := make(Point, dims)
			for d := range pt {
				pt[d] = int64(i)
			}
			pts[i] = pt
		}
		return pts, nil
	}
}
