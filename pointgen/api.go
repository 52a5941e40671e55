// SPDX-License-Identifier: MIT
// Package: kdspace/pointgen
//
// api.go: the Generate orchestrator and the Constructor contract.

package pointgen

import (
	"fmt"

	"github.com/katalvlaran/kdspace/kdtree"
)

// Point is the key type produced by every constructor.
type Point = kdtree.Point[int64]

// Sample is one generated (point, label) pair, ready for kdtree.BuildPoints.
type Sample = kdtree.Pair[Point, string]

// Constructor emits points of arity dims using the resolved configuration.
// Constructors validate their parameters first and return sentinel errors.
type Constructor func(dims int, cfg genConfig) ([]Point, error)

// Generate resolves opts, runs cons in order and labels the concatenated
// points by global index.
//
// Errors:
//   - ErrBadDims if dims < 1.
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped as "Generate: %w".
func Generate(dims int, opts []Option, cons ...Constructor) ([]Sample, error) {
	if dims < 1 {
		return nil, fmt.Errorf("Generate: dims=%d: %w", dims, ErrBadDims)
	}
	cfg := newConfig(opts...)

	var out []Sample
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Generate: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		pts, err := fn(dims, cfg)
		if err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
		for _, pt := range pts {
			out = append(out, Sample{Key: pt, Value: cfg.labelFn(len(out))})
		}
	}
	return out, nil
}
