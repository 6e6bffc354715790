// SPDX-License-Identifier: MIT
// Package: sparsebench/builder
//
// impl_random_sparse.go - implementation of RandomSparse(size, p).
//
// Contract:
//   - Same parameters, validation and draw order as RandomDense; the result
//     is converted with matrix.DenseToSparse, so elements are row-major.
//   - For a fixed seed, RandomSparse(n,p) equals DenseToSparse(RandomDense(n,p)).
//
// Complexity:
//   - Time: O(size²); Space: O(size²) transient + O(nnz) result.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sparsebench/matrix"
)

// RandomSparse returns the COO form of a RandomDense draw. The dense
// intermediate is released before returning.
func RandomSparse(size int, density float64, opts ...BuilderOption) (*matrix.Sparse, error) {
	d, err := RandomDense(size, density, opts...)
	if err != nil {
		// Re-tag only the method name; the sentinel is preserved.
		return nil, fmt.Errorf("%s: %w", MethodRandomSparse, err)
	}
	defer func() { _ = d.Release() }()

	s, err := matrix.DenseToSparse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodRandomSparse, err)
	}

	return s, nil
}
