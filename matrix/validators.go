// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/lifetime/shape checks here.
//  - Shape failures come back as *DimensionError carrying both shapes;
//    everything else is a plain sentinel wrapped with the validator tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and O(1) except ValidateSparse (O(nnz)).
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Live → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// releaser is implemented by both concrete representations.
type releaser interface {
	Released() bool
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil pointer stored in the interface.
//
// Errors: ErrNilMatrix.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	switch v := m.(type) {
	case nil:
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	case *Dense:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	case *Sparse:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateLive ensures m is non-nil and has not been released.
//
// Errors: ErrNilMatrix, ErrReleased.
// Complexity: O(1).
func ValidateLive(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if r, ok := m.(releaser); ok && r.Released() {
		return validatorErrorf("ValidateLive", ErrReleased)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
//
// Returns: nil or *DimensionError (matches ErrDimensionMismatch).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	return sameShape("ValidateSameShape", a, b)
}

// ValidateMulCompatible ensures a.Cols == b.Rows.
// Assumes a and b are not nil (caller must ensure).
//
// Returns: nil or *DimensionError (matches ErrDimensionMismatch).
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	return mulCompatible("ValidateMulCompatible", a, b)
}

// ValidateBinarySameShape is the composite guard for elementwise operators:
// NotNil → Live → SameShape, each operand in turn.
func ValidateBinarySameShape(a, b Matrix) error {
	return binaryGuard("ValidateBinarySameShape", a, b, sameShape)
}

// ValidateBinaryMul is the composite guard for products:
// NotNil → Live → inner dimension.
func ValidateBinaryMul(a, b Matrix) error {
	return binaryGuard("ValidateBinaryMul", a, b, mulCompatible)
}

// ValidateSparse checks lifetime and the coordinate invariant of s.
//
// Errors: ErrNilMatrix, ErrReleased, ErrOutOfRange.
// Complexity: O(nnz).
func ValidateSparse(s *Sparse) error {
	if s == nil {
		return validatorErrorf("ValidateSparse", ErrNilMatrix)
	}

	return s.Validate()
}

// binaryGuard runs NotNil → Live on both operands, then the shape check tagged with op.
func binaryGuard(op string, a, b Matrix, shape func(string, Matrix, Matrix) error) error {
	if err := ValidateLive(a); err != nil {
		return err
	}
	if err := ValidateLive(b); err != nil {
		return err
	}

	return shape(op, a, b)
}

// sameShape is ValidateSameShape with a caller-chosen op tag.
func sameShape(op string, a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return &DimensionError{
			Op:       op,
			Expected: Shape{Rows: a.Rows(), Cols: a.Cols()},
			Actual:   Shape{Rows: b.Rows(), Cols: b.Cols()},
		}
	}

	return nil
}

// mulCompatible is ValidateMulCompatible with a caller-chosen op tag.
func mulCompatible(op string, a, b Matrix) error {
	if a.Cols() != b.Rows() {
		return &DimensionError{
			Op:       op,
			Expected: Shape{Rows: a.Rows(), Cols: a.Cols()},
			Actual:   Shape{Rows: b.Rows(), Cols: b.Cols()},
		}
	}

	return nil
}
