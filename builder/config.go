// SPDX-License-Identifier: MIT
// Package: sparsebench/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng       = nil   (pure/deterministic unless seeded)
//   • minValue  = 1
//   • maxValue  = 10
//   • matrixOpts = none (matrix package defaults)
//
// AI-Hints:
//   • Set WithSeed for reproducible fixtures and benchmark runs.

package builder

import (
	"math/rand" // RNG for stochastic generators

	"github.com/katalvlaran/sparsebench/matrix"
)

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Inclusive integer range for non-zero cell values.
	minValue int
	maxValue int
	// Options forwarded to matrix.NewDense (numeric policy).
	matrixOpts []matrix.Option
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,             // no RNG unless explicitly set
		minValue: DefaultMinValue, // 1
		maxValue: DefaultMaxValue, // 10
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// drawValue returns a uniform integer in [minValue, maxValue] as float64.
// With a degenerate range no RNG is consulted.
func (c builderConfig) drawValue() float64 {
	if c.minValue == c.maxValue {
		return float64(c.minValue)
	}

	return float64(c.minValue + c.rng.Intn(c.maxValue-c.minValue+1))
}

// cellIsSet runs one Bernoulli trial with success probability p.
// p == 0 and p == 1 are decided without consulting the RNG.
func (c builderConfig) cellIsSet(p float64) bool {
	switch p {
	case MinProbability:
		return false
	case MaxProbability:
		return true
	}

	return c.rng.Float64() < p
}
