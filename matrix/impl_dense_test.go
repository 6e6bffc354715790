// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsebench/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseAllocationLimit ensures oversize and overflowing shapes fail explicitly.
func TestNewDenseAllocationLimit(t *testing.T) {
	_, err := matrix.NewDense(matrix.MaxCells, 2)
	require.ErrorIs(t, err, matrix.ErrAllocation)

	_, err = matrix.NewDense(math.MaxInt, math.MaxInt)
	require.ErrorIs(t, err, matrix.ErrAllocation)
}

// TestNewDenseZeroFilled checks that a fresh matrix reads 0.0 everywhere.
func TestNewDenseZeroFilled(t *testing.T) {
	m := mustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())

	vals, err := m.Values()
	require.NoError(t, err)
	require.Len(t, vals, 12)
	for _, v := range vals {
		require.Zero(t, v)
	}
}

// TestNewDenseFromRows covers the happy path and the ragged/empty rejects.
func TestNewDenseFromRows(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := mustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := mustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestSetNaNPolicy checks that the finite-only guard is on by default and can be disabled.
func TestSetNaNPolicy(t *testing.T) {
	strict := mustDense(t, 1, 1)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 0}, {0, 2}})
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestDenseRelease covers the lifetime contract: use after release and double release.
func TestDenseRelease(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}})
	require.NoError(t, m.Release())
	assert.True(t, m.Released())
	assert.Equal(t, 1, m.Rows(), "shape survives release")

	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrReleased)
	require.ErrorIs(t, m.Set(0, 0, 1), matrix.ErrReleased)
	_, err = m.Values()
	require.ErrorIs(t, err, matrix.ErrReleased)
	require.ErrorIs(t, m.Apply(func(_, _ int, v float64) float64 { return v }), matrix.ErrReleased)
	require.ErrorIs(t, m.Release(), matrix.ErrReleased)

	cl := m.Clone().(*matrix.Dense)
	assert.True(t, cl.Released())
	assert.Equal(t, "Dense(1x2, released)\n", m.String())

	var nilDense *matrix.Dense
	require.ErrorIs(t, nilDense.Release(), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.FreeDense(nilDense), matrix.ErrNilMatrix)
}

// TestDoApplyOrder checks the row-major visiting order and early exit of Do.
func TestDoApplyOrder(t *testing.T) {
	m := mustDense(t, 2, 2)
	n := 0.0
	require.NoError(t, m.Apply(func(_, _ int, _ float64) float64 { n++; return n }))
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)
}

// TestApplyRejectsNaN checks the numeric policy inside Apply.
func TestApplyRejectsNaN(t *testing.T) {
	m := mustDense(t, 2, 2)
	err := m.Apply(func(i, j int, _ float64) float64 {
		if i == 1 && j == 0 {
			return math.NaN()
		}
		return 1
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestNewIdentity checks the diagonal helper.
func TestNewIdentity(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, "[1, 0, 0]\n[0, 1, 0]\n[0, 0, 1]\n", I.String())
}
