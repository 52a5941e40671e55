// SPDX-License-Identifier: MIT
// Package: kdspace/pointgen
//
// impl_duplicates.go: Duplicates(n, distinct): n draws from a pool of at most
// `distinct` points, so the same key appears several times.
//
// Used to exercise last-write-wins deduplication in kdtree.Build.

package pointgen

import "fmt"

const (
	methodDuplicates = "Duplicates"
	duplicatesSpan   = 1 << 20
)

// Duplicates returns a Constructor drawing n points from a pool of `distinct`
// random points (pool members may themselves coincide).
func Duplicates(n, distinct int) Constructor {
	return func(dims int, cfg genConfig) ([]Point, error) {
		if n < minPoints || distinct < minPoints {
			return nil, fmt.Errorf("%s: n=%d, distinct=%d (each must be ≥ %d): %w",
				methodDuplicates, n, distinct, minPoints, ErrTooFewPoints)
		}
		if distinct > n {
			return nil, fmt.Errorf("%s: distinct=%d > n=%d: %w", methodDuplicates, distinct, n, ErrBadRange)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodDuplicates, ErrNeedRandSource)
		}

		pool := make([]Point, distinct)
		for i := range pool {
			pt := make(Point, dims)
			for d := range pt {
				pt[d] = cfg.rng.Int63n(duplicatesSpan)
			}
			pool[i] = pt
		}
		pts := make([]Point, n)
		for i := range pts {
			pts[i] = append(Point(nil), pool[cfg.rng.Intn(distinct)]...)
		}
		return pts, nil
	}
}
