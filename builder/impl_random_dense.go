// SPDX-License-Identifier: MIT
// Package: sparsebench/builder
//
// impl_random_dense.go - implementation of RandomDense(size, p).
//
// Canonical model:
//   - Bernoulli field: each cell of a size×size matrix is independently
//     non-zero with probability p.
//   - A non-zero cell gets a uniform integer in [minValue, maxValue]
//     (default [1,10]).
//
// Contract:
//   - size ≥ 1 (else ErrTooSmall).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil whenever a draw is stochastic (else ErrNeedRandSource).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(size²) Bernoulli trials + O(nnz) value draws.
//   - Space: O(size²) for the result.
//
// Determinism:
//   - Stable trial order: row-major (i asc, then j asc).
//   - Per cell: one Float64 trial, then one Intn draw iff the cell is set.
//   - Deterministic outcomes for a fixed seed/options.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sparsebench/matrix"
)

// RandomDense returns a size×size Dense whose cells are independently
// non-zero with probability density.
func RandomDense(size int, density float64, opts ...BuilderOption) (*matrix.Dense, error) {
	cfg := newBuilderConfig(opts...)

	// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
	if err := validateMin(MethodRandomDense, size, MinSize); err != nil {
		return nil, err
	}
	if err := validateProbability(MethodRandomDense, density); err != nil {
		return nil, err
	}
	if err := validateRand(MethodRandomDense, cfg, density); err != nil {
		return nil, err
	}

	// 2) Allocate the zero matrix; matrix enforces shape and allocation limits.
	d, err := matrix.NewDense(size, size, cfg.matrixOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodRandomDense, err)
	}

	// 3) Fill in row-major order (Apply visits i asc, j asc).
	err = d.Apply(func(_, _ int, _ float64) float64 {
		if !cfg.cellIsSet(density) {
			return 0
		}

		return cfg.drawValue()
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodRandomDense, err)
	}

	return d, nil
}
