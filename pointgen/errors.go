// SPDX-License-Identifier: MIT
// Package: kdspace/pointgen
//
// errors.go: sentinel errors for the pointgen package.
//
// Callers branch with errors.Is; context is attached with %w by each constructor.

package pointgen

import "errors"

// ErrTooFewPoints indicates a count parameter (n, rows, cols, distinct) below its minimum.
var ErrTooFewPoints = errors.New("pointgen: parameter too small")

// ErrBadRange indicates an empty or inverted coordinate range, or distinct > n.
var ErrBadRange = errors.New("pointgen: invalid range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("pointgen: rng is required")

// ErrBadDims indicates an unsupported dimension count for the constructor.
var ErrBadDims = errors.New("pointgen: unsupported dimension count")

// ErrConstructFailed indicates a nil constructor was passed to Generate.
var ErrConstructFailed = errors.New("pointgen: construction failed")
