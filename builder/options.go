// SPDX-License-Identifier: MIT
// Package: sparsebench/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand" // RNG source for stochastic generators

	"github.com/katalvlaran/sparsebench/matrix"
)

// BuilderOption customizes a generator by mutating a builderConfig instance
// before generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic generators.
// The generator advances r; share one *rand.Rand across calls to get a
// single reproducible stream. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithValueRange sets the inclusive integer range [lo, hi] for non-zero cells.
// Panics when lo > hi or when the range contains 0: a zero draw would break
// the "non-zero with probability density" contract. Negative ranges are fine.
// Complexity: O(1) time, O(1) space.
func WithValueRange(lo, hi int) BuilderOption {
	if lo > hi {
		panic("builder: WithValueRange(lo>hi)")
	}
	if lo <= 0 && hi >= 0 {
		panic("builder: WithValueRange(range contains 0)")
	}
	return func(c *builderConfig) {
		c.minValue, c.maxValue = lo, hi
	}
}

// WithMatrixOptions forwards numeric-policy options to matrix.NewDense.
// Complexity: O(1) time, O(len(opts)) space.
func WithMatrixOptions(opts ...matrix.Option) BuilderOption {
	return func(c *builderConfig) {
		c.matrixOpts = append(c.matrixOpts, opts...)
	}
}
