// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the dense <-> sparse converters.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsebench/matrix"
)

// TestDenseToSparse_Diagonal checks the 2×2 diagonal scenario end to end.
func TestDenseToSparse_Diagonal(t *testing.T) {
	d := mustRows(t, [][]float64{{1, 0}, {0, 2}})

	s, err := matrix.DenseToSparse(d)
	require.NoError(t, err)
	assert.Equal(t, 2, s.NNZ())
	assert.Equal(t, []matrix.Element{
		{Row: 0, Col: 0, Value: 1},
		{Row: 1, Col: 1, Value: 2},
	}, s.Elements())
	assert.Equal(t, 50.0, s.Sparsity())

	back, err := matrix.SparseToDense(s)
	require.NoError(t, err)
	requireSameCells(t, d, back)

	tr, err := matrix.TransposeDense(d)
	require.NoError(t, err)
	requireSameCells(t, d, tr)

	sq, err := matrix.MultiplySparse(s, s)
	require.NoError(t, err)
	assert.Equal(t, []matrix.Element{
		{Row: 0, Col: 0, Value: 1},
		{Row: 1, Col: 1, Value: 4},
	}, sq.Elements())
}

// TestDenseToSparse_RowMajor checks the element order on an irregular pattern.
func TestDenseToSparse_RowMajor(t *testing.T) {
	d := mustRows(t, [][]float64{
		{0, 3, 0, 1},
		{0, 0, 0, 0},
		{-2, 0, 0, 4},
	})
	s := mustSparse(t, d)
	assert.Equal(t, []matrix.Element{
		{Row: 0, Col: 1, Value: 3},
		{Row: 0, Col: 3, Value: 1},
		{Row: 2, Col: 0, Value: -2},
		{Row: 2, Col: 3, Value: 4},
	}, s.Elements())
}

// TestDenseToSparse_AllZero checks that an all-zero matrix has no elements.
func TestDenseToSparse_AllZero(t *testing.T) {
	s := mustSparse(t, mustDense(t, 3, 3))
	assert.Zero(t, s.NNZ())
	assert.Equal(t, 100.0, s.Sparsity())

	d, err := matrix.SparseToDense(s)
	require.NoError(t, err)
	vals, err := d.Values()
	require.NoError(t, err)
	for _, v := range vals {
		assert.Zero(t, v)
	}
}

// TestRoundTrip_Random checks dense → sparse → dense on seeded fills.
func TestRoundTrip_Random(t *testing.T) {
	for _, p := range []float64{0, 0.05, 0.3, 1} {
		d := randomDense(t, 17, 11, p, 99)
		s := mustSparse(t, d)
		back, err := matrix.SparseToDense(s)
		require.NoError(t, err)
		requireSameCells(t, d, back)
		requireSameCells(t, d, s)
	}
}

// TestSparseToDense_Duplicates checks last-write-wins for repeated coordinates.
func TestSparseToDense_Duplicates(t *testing.T) {
	s, err := matrix.NewSparseFromElements(2, 2, []matrix.Element{
		{Row: 1, Col: 0, Value: 4},
		{Row: 1, Col: 0, Value: 6},
	})
	require.NoError(t, err)

	d, err := matrix.SparseToDense(s)
	require.NoError(t, err)
	v, err := d.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)
}

// TestConversions_Lifetime checks nil and released inputs.
func TestConversions_Lifetime(t *testing.T) {
	_, err := matrix.DenseToSparse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.SparseToDense(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	d := mustDense(t, 2, 2)
	require.NoError(t, d.Release())
	_, err = matrix.DenseToSparse(d)
	require.ErrorIs(t, err, matrix.ErrReleased)

	s, err := matrix.NewSparse(2, 2)
	require.NoError(t, err)
	require.NoError(t, s.Release())
	_, err = matrix.SparseToDense(s)
	require.ErrorIs(t, err, matrix.ErrReleased)
}

// TestConversions_Independent checks that results never alias their input.
func TestConversions_Independent(t *testing.T) {
	d := mustRows(t, [][]float64{{5, 0}})
	s := mustSparse(t, d)
	require.NoError(t, d.Set(0, 0, 1))
	v, _ := s.At(0, 0)
	assert.Equal(t, 5.0, v)
}
