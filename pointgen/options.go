// SPDX-License-Identifier: MIT
// Package: kdspace/pointgen
//
// options.go: configuration and functional options.
//
// Contract:
//   • Options mutate genConfig in order; later options override earlier ones.
//   • Option constructors panic on nil inputs; generation itself never panics.
//   • Defaults are deterministic: no RNG, decimal labels.

package pointgen

import (
	"math/rand"
	"strconv"
)

// LabelFn maps a point's global index to its value label.
type LabelFn func(idx int) string

type genConfig struct {
	rng     *rand.Rand
	labelFn LabelFn
}

// Option customizes generation.
type Option func(*genConfig)

func newConfig(opts ...Option) genConfig {
	cfg := genConfig{
		rng:     nil,
		labelFn: DecimalLabel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DecimalLabel renders idx in base 10: 0→"0", 42→"42".
func DecimalLabel(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixLabel returns a LabelFn producing prefix+idx, e.g. "p0", "p1".
func PrefixLabel(prefix string) LabelFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithSeed attaches a fresh RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches r as the RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pointgen: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithLabels sets the value label scheme. Panics on nil.
func WithLabels(fn LabelFn) Option {
	if fn == nil {
		panic("pointgen: WithLabels(nil)")
	}
	return func(c *genConfig) {
		c.labelFn = fn
	}
}
