// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points named after the benchmark vocabulary
//     (create/free pairs) on top of the canonical constructors and Release.
//   - Avoid any logic duplication - each facade delegates to the canonical implementation.

package matrix

// CreateDense returns a zero-filled rows×cols Dense. Alias of NewDense.
func CreateDense(rows, cols int, opts ...Option) (*Dense, error) { return NewDense(rows, cols, opts...) }

// CreateSparse returns an empty rows×cols Sparse. Alias of NewSparse.
func CreateSparse(rows, cols int, opts ...Option) (*Sparse, error) {
	return NewSparse(rows, cols, opts...)
}

// FreeDense releases d. A second call returns ErrReleased; nil returns ErrNilMatrix.
func FreeDense(d *Dense) error { return d.Release() }

// FreeSparse releases s. A second call returns ErrReleased; nil returns ErrNilMatrix.
func FreeSparse(s *Sparse) error { return s.Release() }

// NewIdentity returns I_n as a Dense (ones on the diagonal).
// Complexity: O(n^2) zeroing + O(n) writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// CloneMatrix returns a structural clone of m (same dynamic type).
// Thin wrapper over Matrix.Clone for API discoverability.
func CloneMatrix(m Matrix) Matrix { return m.Clone() }

// T is a short alias for Transpose.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// Product is an alias for Mul.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// Sum is an alias for Add.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub.
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Equal reports whether a and b have the same shape and bit-identical cells.
// Works across representations (e.g., *Dense vs *Sparse) through At.
//
// Errors:
//   - ErrNilMatrix, ErrReleased.
//
// Complexity:
//   - O(r*c*cost(At)).
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateLive(a); err != nil {
		return false, matrixErrorf("Equal", err)
	}
	if err := ValidateLive(b); err != nil {
		return false, matrixErrorf("Equal", err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			for idx := range da.data {
				if da.data[idx] != db.data[idx] {
					return false, nil
				}
			}

			return true, nil
		}
	}

	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf("Equal", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf("Equal", err)
			}
			if av != bv {
				return false, nil
			}
		}
	}

	return true, nil
}
