// SPDX-License-Identifier: MIT
// Package: sparsebench/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and call order ⇒ identical matrices.
//   - Safety: never panic; return sentinel errors from generators.
//
// AI-Hints (practical):
//   - Use WithSeed(...) to freeze stochastic paths.
//   - Use RandomPair when two operands must come from one RNG stream
//     (benchmarks, demos): the second matrix continues the stream of the first.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/sparsebench/matrix"
)

// MethodRandomPair is the canonical name for the RandomPair generator.
const MethodRandomPair = "RandomPair"

// RandomPair draws two size×size operands from a single resolved RNG stream.
// WithSeed(s) therefore yields a reproducible (A, B) pair where A != B in
// general. On error nothing is returned; a partially built A is released.
//
// Complexity:
//   - Time: O(size²) per matrix; Space: O(size²) per matrix.
//
// Errors:
//   - Any error of RandomDense, wrapped as "RandomPair: %w".
func RandomPair(size int, density float64, opts ...BuilderOption) (*matrix.Dense, *matrix.Dense, error) {
	cfg := newBuilderConfig(opts...)
	shared := pinned(cfg)

	a, err := RandomDense(size, density, shared...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", MethodRandomPair, err)
	}
	b, err := RandomDense(size, density, shared...)
	if err != nil {
		_ = a.Release()
		return nil, nil, fmt.Errorf("%s: %w", MethodRandomPair, err)
	}

	return a, b, nil
}

// pinned re-expresses a resolved config as options, so repeated generator
// calls share the same *rand.Rand instead of re-seeding it.
func pinned(cfg builderConfig) []BuilderOption {
	opts := []BuilderOption{
		func(c *builderConfig) {
			c.minValue, c.maxValue = cfg.minValue, cfg.maxValue
			c.matrixOpts = cfg.matrixOpts
		},
	}
	if cfg.rng != nil {
		opts = append(opts, WithRand(cfg.rng))
	}

	return opts
}

// NewRand returns a seeded *rand.Rand, for callers that want to share one
// stream across several generator calls via WithRand.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
