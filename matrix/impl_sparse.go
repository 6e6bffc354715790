// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (COO coordinate list).
//
// Purpose:
//   - Store only non-zero cells as (row, col, value) records in one owned slice.
//   - Keep insertion order: DenseToSparse produces row-major order, hand-built
//     matrices keep whatever order the caller used.
//   - nnz is the slice length, so the element count can never drift from the
//     element sequence.
//
// Representation invariant (upheld by every constructor and operator):
//   - 0 ≤ Row < rows and 0 ≤ Col < cols for every element.
//   - Operators never emit explicit zeros or duplicate coordinates.
//     The type does not reject duplicates supplied by NewSparseFromElements.
//
// Complexity quicksheet:
//   - NewSparse: O(1); Append: O(1) amortized; At/Set: O(nnz); Clone: O(nnz).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	ctxAppend   = "Append"   // method tag used in error wrappers
	ctxValidate = "Validate" // method tag used in error wrappers
)

// sparseErrorf wraps an error with a uniform Sparse context and callsite indices.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// Sparse is a COO (coordinate list) matrix of float64 values.
type Sparse struct {
	r, c           int       // row and column counts (>0)
	elems          []Element // non-zero cells; nil after Release
	validateNaNInf bool      // numeric guard for Append/Set
	released       bool      // set once by Release
}

var (
	_ Matrix       = (*Sparse)(nil)
	_ fmt.Stringer = (*Sparse)(nil)
)

// NewSparse creates an empty rows×cols sparse matrix (no stored elements).
//
// Errors:
//   - ErrInvalidDimensions for non-positive sizes.
//   - ErrAllocation when rows*cols exceeds MaxCells (the shape must stay
//     convertible to Dense).
//
// Complexity: O(1).
func NewSparse(rows, cols int, opts ...Option) (*Sparse, error) {
	return newSparseCap(rows, cols, 0, opts...)
}

// newSparseCap is NewSparse with a pre-sized element buffer.
func newSparseCap(rows, cols, capacity int, opts ...Option) (*Sparse, error) {
	if err := checkShape(rows, cols); err != nil {
		return nil, fmt.Errorf("NewSparse(%d,%d): %w", rows, cols, err)
	}
	o := gatherOptions(opts...)

	return &Sparse{
		r:              rows,
		c:              cols,
		elems:          make([]Element, 0, capacity),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewSparseFromElements builds a sparse matrix from caller-supplied records.
// MAIN DESCRIPTION:
//   - Hand-built COO input; the one path where coordinates come from outside
//     the package, so every coordinate is checked.
//
// Behavior highlights:
//   - elems is copied; the result never aliases the caller's slice.
//   - Zero values are dropped (same rule as Append).
//   - Duplicate coordinates are kept as given; SparseToDense resolves them
//     last-write-wins.
//
// Errors:
//   - ErrInvalidDimensions / ErrAllocation (shape).
//   - ErrOutOfRange when an element lies outside rows×cols.
//   - ErrNaNInf when a value is not finite and the policy is enabled.
//
// Complexity:
//   - Time O(len(elems)), Space O(len(elems)).
func NewSparseFromElements(rows, cols int, elems []Element, opts ...Option) (*Sparse, error) {
	s, err := newSparseCap(rows, cols, len(elems), opts...)
	if err != nil {
		return nil, err
	}
	for _, e := range elems {
		if err = s.Append(e.Row, e.Col, e.Value); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Rows returns the row count.
func (s *Sparse) Rows() int { return s.r }

// Cols returns the column count.
func (s *Sparse) Cols() int { return s.c }

// Shape packs Rows() and Cols() into a single call.
func (s *Sparse) Shape() (rows, cols int) { return s.r, s.c }

// NNZ returns the number of stored elements (num_elements).
// Complexity: O(1).
func (s *Sparse) NNZ() int { return len(s.elems) }

// Released reports whether Release has been called.
func (s *Sparse) Released() bool { return s.released }

// Elements returns a copy of the stored elements in insertion order.
// Complexity: O(nnz).
func (s *Sparse) Elements() []Element {
	out := make([]Element, len(s.elems))
	copy(out, s.elems)

	return out
}

// Density returns nnz / (rows*cols).
func (s *Sparse) Density() float64 {
	return float64(len(s.elems)) / float64(s.r*s.c)
}

// Sparsity returns the percentage of cells that are NOT stored:
// (1 - nnz/(rows*cols)) * 100.
func (s *Sparse) Sparsity() float64 {
	return (1.0 - s.Density()) * 100.0
}

// checkCell validates lifetime and coordinates for element-level access.
func (s *Sparse) checkCell(row, col int) error {
	if s.released {
		return ErrReleased
	}
	if row < 0 || row >= s.r || col < 0 || col >= s.c {
		return ErrOutOfRange
	}

	return nil
}

// checkValue applies the numeric policy.
func (s *Sparse) checkValue(v float64) error {
	if s.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return ErrNaNInf
	}

	return nil
}

// Append pushes (row, col, v) to the end of the element list.
// Zero values are skipped silently (nothing to store). Duplicates are not
// checked; use Set for replace semantics.
//
// Errors:
//   - ErrOutOfRange, ErrReleased, ErrNaNInf.
//
// Complexity: O(1) amortized.
func (s *Sparse) Append(row, col int, v float64) error {
	if err := s.checkCell(row, col); err != nil {
		return sparseErrorf(ctxAppend, row, col, err)
	}
	if err := s.checkValue(v); err != nil {
		return sparseErrorf(ctxAppend, row, col, err)
	}
	if v == 0 {
		return nil
	}
	s.elems = append(s.elems, Element{Row: row, Col: col, Value: v})

	return nil
}

// At returns the value stored for (row, col), or 0 when no element matches.
// When duplicates exist the last one in element order wins, matching
// SparseToDense.
// Complexity: O(nnz).
func (s *Sparse) At(row, col int) (float64, error) {
	if err := s.checkCell(row, col); err != nil {
		return 0, sparseErrorf(ctxAt, row, col, err)
	}
	var v float64
	for _, e := range s.elems {
		if e.Row == row && e.Col == col {
			v = e.Value
		}
	}

	return v, nil
}

// Set replaces the value at (row, col). Every element with that coordinate
// is removed first; v is appended when non-zero. Afterwards the coordinate
// appears at most once.
// Complexity: O(nnz).
func (s *Sparse) Set(row, col int, v float64) error {
	if err := s.checkCell(row, col); err != nil {
		return sparseErrorf(ctxSet, row, col, err)
	}
	if err := s.checkValue(v); err != nil {
		return sparseErrorf(ctxSet, row, col, err)
	}
	kept := s.elems[:0]
	for _, e := range s.elems {
		if e.Row != row || e.Col != col {
			kept = append(kept, e)
		}
	}
	s.elems = kept
	if v != 0 {
		s.elems = append(s.elems, Element{Row: row, Col: col, Value: v})
	}

	return nil
}

// Validate re-checks the coordinate invariant over every element.
// Returns the first violation wrapped with its coordinates.
// Complexity: O(nnz).
func (s *Sparse) Validate() error {
	if s.released {
		return fmt.Errorf("Sparse.%s: %w", ctxValidate, ErrReleased)
	}
	for _, e := range s.elems {
		if e.Row < 0 || e.Row >= s.r || e.Col < 0 || e.Col >= s.c {
			return sparseErrorf(ctxValidate, e.Row, e.Col, ErrOutOfRange)
		}
	}

	return nil
}

// Clone returns a deep copy with its own element buffer.
// Complexity: O(nnz).
func (s *Sparse) Clone() Matrix {
	cp := &Sparse{r: s.r, c: s.c, validateNaNInf: s.validateNaNInf, released: s.released}
	if !s.released {
		cp.elems = make([]Element, len(s.elems))
		copy(cp.elems, s.elems)
	}

	return cp
}

// Release drops the element buffer. Every later use, including a second
// Release, returns ErrReleased.
// Complexity: O(1).
func (s *Sparse) Release() error {
	if s == nil {
		return fmt.Errorf("Sparse.%s: %w", ctxRelease, ErrNilMatrix)
	}
	if s.released {
		return fmt.Errorf("Sparse.%s: %w", ctxRelease, ErrReleased)
	}
	s.elems = nil
	s.released = true

	return nil
}

// String lists the shape and every element as "(r,c)=v" in element order.
// Complexity: O(nnz).
func (s *Sparse) String() string {
	if s.released {
		return fmt.Sprintf("Sparse(%dx%d, released)\n", s.r, s.c)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Sparse(%dx%d, nnz=%d)", s.r, s.c, len(s.elems))
	for _, e := range s.elems {
		fmt.Fprintf(&b, " (%d,%d)=%g", e.Row, e.Col, e.Value)
	}
	b.WriteString("\n")

	return b.String()
}
