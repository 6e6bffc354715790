// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and integral so dense and sparse paths agree bitwise.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsebench/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic At/Set fallback of Add/Sub/Mul/Transpose.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	d, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return d
}

// mustRows builds a *Dense from literal rows or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(tb, err)

	return d
}

// mustSparse converts d to COO or fails the test.
func mustSparse(tb testing.TB, d *matrix.Dense) *matrix.Sparse {
	tb.Helper()
	s, err := matrix.DenseToSparse(d)
	require.NoError(tb, err)

	return s
}

// randomDense fills an r×c matrix in row-major order: each cell is non-zero
// with probability p and then holds an integer in [1,10].
func randomDense(tb testing.TB, r, c int, p float64, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	d := mustDense(tb, r, c)
	require.NoError(tb, d.Apply(func(_, _ int, _ float64) float64 {
		if rng.Float64() >= p {
			return 0
		}
		return float64(1 + rng.Intn(10))
	}))

	return d
}

// requireSameCells asserts a and b are equal cell by cell, across representations.
func requireSameCells(tb testing.TB, want, got matrix.Matrix) {
	tb.Helper()
	eq, err := matrix.Equal(want, got)
	require.NoError(tb, err)
	require.True(tb, eq, "want:\n%v\ngot:\n%v", want, got)
}

// toGonum copies d into a gonum *mat.Dense for use as an independent oracle.
func toGonum(tb testing.TB, d *matrix.Dense) *mat.Dense {
	tb.Helper()
	vals, err := d.Values()
	require.NoError(tb, err)

	return mat.NewDense(d.Rows(), d.Cols(), vals)
}

// requireMatchesGonum asserts got holds exactly the cells of the gonum oracle.
func requireMatchesGonum(tb testing.TB, want *mat.Dense, got *matrix.Dense) {
	tb.Helper()
	r, c := want.Dims()
	require.Equal(tb, r, got.Rows())
	require.Equal(tb, c, got.Cols())
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := got.At(i, j)
			require.NoError(tb, err)
			require.Equal(tb, want.At(i, j), v, "cell (%d,%d)", i, j)
		}
	}
}
