// SPDX-License-Identifier: MIT
// Package: kdspace/pointgen
//
// impl_uniform.go: Uniform(n, lo, hi): independent components drawn from [lo, hi).
//
// Determinism: components are drawn point by point, axis 0 first, from cfg.rng.

package pointgen

import "fmt"

const (
	methodUniform = "Uniform"
	minPoints     = 1
)

// Uniform returns a Constructor drawing n points with every component
// uniform in [lo, hi). Duplicate points are possible.
func Uniform(n int, lo, hi int64) Constructor {
	return func(dims int, cfg genConfig) ([]Point, error) {
		if n < minPoints {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodUniform, n, minPoints, ErrTooFewPoints)
		}
		if lo >= hi {
			return nil, fmt.Errorf("%s: [%d,%d) is empty: %w", methodUniform, lo, hi, ErrBadRange)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodUniform, ErrNeedRandSource)
		}

		span := hi - lo
		pts := make([]Point, n)
		for i := range pts {
			pt := make(Point, dims)
			for d := range pt {
				pt[d] = lo + cfg.rng.Int63n(span)
			}
			pts[i] = pt
		}
		return pts, nil
	}
}
