// SPDX-License-Identifier: MIT
// Package matrix provides the dense operators (transpose, add, subtract,
// multiply) used both as ground truth and as the benchmark baseline, plus the
// generic facades that accept any Matrix implementation.
//
// Purpose:
//   - Typed kernels (*Dense in, fresh *Dense out) with flat-slice loops.
//   - Generic facades (Matrix in, Matrix out) that take the typed fast path
//     when both operands are *Dense and fall back to At/Set otherwise.
//
// Notes:
//   - All operators validate through validators.go and wrap with their op tag.
//   - Inputs are never mutated; every result is freshly allocated.

package matrix

import "fmt"

// ZeroSum is the initial sum value for dot-product accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd            = "Add"
	opSub            = "Sub"
	opMul            = "Mul"
	opTranspose      = "Transpose"
	opAddDense       = "AddDense"
	opSubDense       = "SubDense"
	opMulDense       = "MultiplyDense"
	opTransposeDense = "TransposeDense"
)

// TransposeDense returns a new cols×rows matrix with m'[j][i] = m[i][j].
// MAIN DESCRIPTION:
//   - Full materialization of mᵀ over the flat buffers.
//
// Errors:
//   - ErrNilMatrix, ErrReleased.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func TransposeDense(m *Dense) (*Dense, error) {
	if err := ValidateLive(m); err != nil {
		return nil, matrixErrorf(opTransposeDense, err)
	}
	rows, cols := m.r, m.c
	res := &Dense{r: cols, c: rows, data: make([]float64, rows*cols), validateNaNInf: m.validateNaNInf}

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// AddDense computes the element-wise sum C = A + B.
// Requires identical shapes; a mismatch returns *DimensionError.
// Complexity: O(r*c).
func AddDense(a, b *Dense) (*Dense, error) { return addSubDense(a, b, +1, opAddDense) }

// SubDense computes the element-wise difference C = A - B.
// Requires identical shapes; a mismatch returns *DimensionError.
// Complexity: O(r*c).
func SubDense(a, b *Dense) (*Dense, error) { return addSubDense(a, b, -1, opSubDense) }

// addSubDense computes out = a + sign*b for sign ∈ {+1, -1}.
// MAIN DESCRIPTION:
//   - Shared validation, allocation and single flat loop for AddDense/SubDense.
//
// Implementation:
//   - Stage 1: NotNil → Live → SameShape (tagged with opTag).
//   - Stage 2: single flat walk 0..r*c-1.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, *DimensionError.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - Keeping `sign` as a float avoids an extra branch inside the hot loop.
func addSubDense(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	if err := binaryGuard(opTag, a, b, sameShape); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data)), validateNaNInf: a.validateNaNInf}
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// MultiplyDense performs standard matrix multiplication C = A × B.
// MAIN DESCRIPTION:
//   - Textbook i→j→k triple loop accumulating one dot product per cell.
//
// Implementation:
//   - Stage 1: NotNil → Live → a.Cols == b.Rows.
//   - Stage 2: for each (i,j) sum a[i,k]*b[k,j] over k; store once.
//
// Behavior highlights:
//   - No zero-skipping: the dense baseline does the full r*n*c work so the
//     benchmark compares against the plain algorithm.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, *DimensionError, ErrAllocation (r*c above MaxCells).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func MultiplyDense(a, b *Dense) (*Dense, error) {
	if err := binaryGuard(opMulDense, a, b, mulCompatible); err != nil {
		return nil, matrixErrorf(opMulDense, err)
	}
	aRows, inner, bCols := a.r, a.c, b.c
	if err := checkShape(aRows, bCols); err != nil {
		return nil, matrixErrorf(opMulDense, err)
	}
	res := &Dense{r: aRows, c: bCols, data: make([]float64, aRows*bCols), validateNaNInf: a.validateNaNInf}

	var (
		i, j, k    int
		rowOffsetA int
		sum        float64
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * inner
		for j = 0; j < bCols; j++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				sum += a.data[rowOffsetA+k] * b.data[k*bCols+j]
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// Add computes C = A + B for any Matrix implementations and returns a fresh Dense.
// Implementation:
//   - Stage 1: Validate both operands (non-nil, live, same shape).
//   - Stage 2: If both are *Dense, run AddDense; otherwise fall back to i→j At/Set.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, *DimensionError.
//
// Complexity:
//   - Time O(r*c) on the fast path; O(r*c*cost(At)) otherwise.
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes C = A - B for any Matrix implementations and returns a fresh Dense.
// Same contract as Add.
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// addSub is the generic Add/Sub body; see Add.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := binaryGuard(opTag, a, b, sameShape); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			return addSubDense(da, db, sign, opTag)
		}
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
		}
	}

	return res, nil
}

// Mul performs C = A × B for any Matrix implementations and returns a fresh Dense.
// Implementation:
//   - Stage 1: Validate A,B (non-nil, live) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, run MultiplyDense; otherwise i→j→k via At.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, *DimensionError.
//
// Complexity:
//   - Time O(r*n*c) on the fast path.
func Mul(a, b Matrix) (Matrix, error) {
	if err := binaryGuard(opMul, a, b, mulCompatible); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			return MultiplyDense(da, db)
		}
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a fresh Dense for any Matrix implementation.
// The *Dense fast path delegates to TransposeDense.
//
// Errors:
//   - ErrNilMatrix, ErrReleased.
//
// Complexity:
//   - Time O(r*c) on the fast path.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateLive(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if dm, ok := m.(*Dense); ok {
		return TransposeDense(dm)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}
