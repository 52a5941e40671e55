// SPDX-License-Identifier: MIT
// Package: kdspace/pointgen
//
// impl_grid.go: Grid(rows, cols): the 2-D lattice (r, c), row-major.
//
// Every row shares its first component and every column its second, which
// stresses tie handling on both axes.

package pointgen

import "fmt"

const (
	methodGrid = "Grid"
	gridDims   = 2
)

// Grid returns a Constructor emitting rows×cols lattice points. dims must be 2.
func Grid(rows, cols int) Constructor {
	return func(dims int, _ genConfig) ([]Point, error) {
		if dims != gridDims {
			return nil, fmt.Errorf("%s: dims=%d, want %d: %w", methodGrid, dims, gridDims, ErrBadDims)
		}
		if rows < minPoints || cols < minPoints {
			return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minPoints, ErrTooFewPoints)
		}
		pts := make([]Point, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				pts = append(pts, Point{int64(r), int64(c)})
			}
		}
		return pts, nil
	}
}
