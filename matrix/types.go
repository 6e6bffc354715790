// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense and sparse representations.
// This file contains ONLY domain-facing types (the Matrix interface and the
// COO element record). Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

// Element is one stored cell of a COO (coordinate) sparse matrix.
// Value is non-zero by construction convention; the type itself does not
// enforce it (Sparse.Append and DenseToSparse never store a zero).
type Element struct {
	Row   int     // zero-based row index, 0 ≤ Row < rows
	Col   int     // zero-based column index, 0 ≤ Col < cols
	Value float64 // cell value
}

// Matrix represents a two-dimensional array of float64 values.
// Both *Dense and *Sparse implement it, so the generic facades
// (Add, Sub, Mul, Transpose) accept either representation.
//
// Complexity notes: Rows/Cols are O(1); At/Set are O(1) on *Dense and
// O(nnz) on *Sparse; Clone is O(storage).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
