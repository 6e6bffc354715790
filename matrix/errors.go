// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines the package-level sentinel errors used across the matrix
// package plus the single typed error (DimensionError) that carries the
// offending shapes. All operators MUST return these and tests MUST check them
// via errors.Is / errors.As. No operator panics on user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Sentinels are returned wrapped with the op tag
// at the nearest detection site: fmt.Errorf("AddSparse: %w", ErrX).
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> released -> dimension mismatch -> allocation -> element coordinates.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrAllocation indicates that rows*cols overflows or exceeds MaxCells.
	// It is the explicit form of an allocation failure; the runtime is never
	// asked for a buffer it cannot describe.
	ErrAllocation = errors.New("matrix: allocation failure")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) and sparse element ingestion MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	// Operators return a *DimensionError that matches this sentinel.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrReleased signals use of a matrix after Release, including a second Release.
	ErrReleased = errors.New("matrix: use after release")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (Set, Append).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

// Shape is a (rows, cols) pair used in dimension diagnostics.
type Shape struct {
	Rows, Cols int
}

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// DimensionError reports a failed shape precondition of a binary operator.
//
// For Add/Sub the Expected and Actual fields hold the full shapes of the
// left and right operand. For Mul they hold the inner pair only:
// Expected = {a.Rows, a.Cols}, Actual = {b.Rows, b.Cols}; the failed check is
// always Expected.Cols == Actual.Rows.
//
// errors.Is(err, ErrDimensionMismatch) is true for every *DimensionError.
type DimensionError struct {
	Op       string // operator tag (opAddSparse, opMulDense, ...)
	Expected Shape  // left operand shape
	Actual   Shape  // right operand shape
}

// Error implements error.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %v (left %s, right %s)", e.Op, ErrDimensionMismatch, e.Expected, e.Actual)
}

// Unwrap exposes ErrDimensionMismatch for errors.Is.
func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - A *DimensionError already carries its op tag and is returned unwrapped,
//     so errors.As callers get the struct without walking a chain.
func matrixErrorf(tag string, err error) error {
	var de *DimensionError
	if errors.As(err, &de) {
		return err
	}

	return fmt.Errorf("%s: %w", tag, err)
}
