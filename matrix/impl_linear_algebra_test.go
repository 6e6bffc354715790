// Package matrix_test contains unit tests for the dense operators and the
// generic Matrix facades.
package matrix_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsebench/matrix"
)

// TestTransposeDense checks shape swap and cell mapping on a 2×3 input.
func TestTransposeDense(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr, err := matrix.TransposeDense(a)
	require.NoError(t, err)
	assert.Equal(t, "[1, 4]\n[2, 5]\n[3, 6]\n", tr.String())

	back, err := matrix.TransposeDense(tr)
	require.NoError(t, err)
	requireSameCells(t, a, back)
}

// TestAddSubDense checks small literal sums and differences.
func TestAddSubDense(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{10, 0}, {-3, 1}})

	sum, err := matrix.AddDense(a, b)
	require.NoError(t, err)
	assert.Equal(t, "[11, 2]\n[0, 5]\n", sum.String())

	diff, err := matrix.SubDense(a, b)
	require.NoError(t, err)
	assert.Equal(t, "[-9, 2]\n[6, 3]\n", diff.String())

	ab, err := matrix.AddDense(a, b)
	require.NoError(t, err)
	ba, err := matrix.AddDense(b, a)
	require.NoError(t, err)
	requireSameCells(t, ab, ba)
}

// TestMultiplyDense_Gonum compares MultiplyDense against gonum's mat.Dense.Mul.
func TestMultiplyDense_Gonum(t *testing.T) {
	for _, tc := range []struct{ r, n, c int }{{1, 1, 1}, {3, 4, 2}, {8, 8, 8}, {13, 7, 9}} {
		tc := tc
		t.Run(fmt.Sprintf("%dx%dx%d", tc.r, tc.n, tc.c), func(t *testing.T) {
			a := randomDense(t, tc.r, tc.n, 0.4, int64(tc.r))
			b := randomDense(t, tc.n, tc.c, 0.4, int64(tc.c+100))

			got, err := matrix.MultiplyDense(a, b)
			require.NoError(t, err)

			var want mat.Dense
			want.Mul(toGonum(t, a), toGonum(t, b))
			requireMatchesGonum(t, &want, got)
		})
	}
}

// TestMultiplyDense_Identity checks A×I = A.
func TestMultiplyDense_Identity(t *testing.T) {
	a := randomDense(t, 5, 5, 0.5, 3)
	I, err := matrix.NewIdentity(5)
	require.NoError(t, err)
	p, err := matrix.MultiplyDense(a, I)
	require.NoError(t, err)
	requireSameCells(t, a, p)
}

// TestDenseOps_DimensionErrors checks typed errors for add and multiply.
func TestDenseOps_DimensionErrors(t *testing.T) {
	_, err := matrix.AddDense(mustDense(t, 2, 2), mustDense(t, 3, 3))
	var de *matrix.DimensionError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, matrix.Shape{Rows: 2, Cols: 2}, de.Expected)
	assert.Equal(t, matrix.Shape{Rows: 3, Cols: 3}, de.Actual)

	_, err = matrix.MultiplyDense(mustDense(t, 2, 3), mustDense(t, 4, 2))
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 3, de.Expected.Cols)
	assert.Equal(t, 4, de.Actual.Rows)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestDenseOps_Released checks that operators refuse released operands.
func TestDenseOps_Released(t *testing.T) {
	a := mustDense(t, 2, 2)
	b := mustDense(t, 2, 2)
	require.NoError(t, b.Release())

	_, err := matrix.AddDense(a, b)
	require.ErrorIs(t, err, matrix.ErrReleased)
	_, err = matrix.MultiplyDense(b, a)
	require.ErrorIs(t, err, matrix.ErrReleased)
	_, err = matrix.TransposeDense(b)
	require.ErrorIs(t, err, matrix.ErrReleased)
	_, err = matrix.AddDense(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestDenseOps_InputsUntouched checks that operands are never mutated.
func TestDenseOps_InputsUntouched(t *testing.T) {
	a := randomDense(t, 4, 4, 0.5, 1)
	b := randomDense(t, 4, 4, 0.5, 2)
	aCopy, bCopy := a.Clone(), b.Clone()

	_, err := matrix.AddDense(a, b)
	require.NoError(t, err)
	_, err = matrix.MultiplyDense(a, b)
	require.NoError(t, err)
	_, err = matrix.TransposeDense(a)
	require.NoError(t, err)

	requireSameCells(t, aCopy, a)
	requireSameCells(t, bCopy, b)
}

// TestHelpers_InterfaceHiding_Fallback ensures the generic fallback path
// matches the *Dense fast path bitwise.
func TestHelpers_InterfaceHiding_Fallback(t *testing.T) {
	t.Parallel()

	a := randomDense(t, 6, 5, 0.5, 10)
	b := randomDense(t, 6, 5, 0.5, 11)
	c := randomDense(t, 5, 4, 0.5, 12)

	fast, err := matrix.Sum(a, b)
	require.NoError(t, err)
	slow, err := matrix.Sum(hide{a}, b)
	require.NoError(t, err)
	requireSameCells(t, fast, slow)

	fast, err = matrix.Diff(a, b)
	require.NoError(t, err)
	slow, err = matrix.Diff(a, hide{b})
	require.NoError(t, err)
	requireSameCells(t, fast, slow)

	fast, err = matrix.Product(a, c)
	require.NoError(t, err)
	slow, err = matrix.Product(hide{a}, hide{c})
	require.NoError(t, err)
	requireSameCells(t, fast, slow)

	fast, err = matrix.T(a)
	require.NoError(t, err)
	slow, err = matrix.T(hide{a})
	require.NoError(t, err)
	requireSameCells(t, fast, slow)
}

// TestGenericFacades_MixedRepresentations checks Dense with Sparse operands.
func TestGenericFacades_MixedRepresentations(t *testing.T) {
	a := randomDense(t, 4, 4, 0.3, 21)
	b := randomDense(t, 4, 4, 0.3, 22)
	bs := mustSparse(t, b)

	want, err := matrix.AddDense(a, b)
	require.NoError(t, err)
	got, err := matrix.Add(a, bs)
	require.NoError(t, err)
	requireSameCells(t, want, got)

	wantP, err := matrix.MultiplyDense(a, b)
	require.NoError(t, err)
	gotP, err := matrix.Mul(a, bs)
	require.NoError(t, err)
	requireSameCells(t, wantP, gotP)
}

// TestEqual covers shape mismatch and lifetime errors.
func TestEqual(t *testing.T) {
	eq, err := matrix.Equal(mustDense(t, 2, 2), mustDense(t, 2, 3))
	require.NoError(t, err)
	assert.False(t, eq)

	d := mustDense(t, 1, 1)
	require.NoError(t, d.Release())
	_, err = matrix.Equal(d, mustDense(t, 1, 1))
	require.ErrorIs(t, err, matrix.ErrReleased)

	cl := matrix.CloneMatrix(mustRows(t, [][]float64{{3}}))
	eq, err = matrix.Equal(cl, mustRows(t, [][]float64{{3}}))
	require.NoError(t, err)
	assert.True(t, eq)
}
