// SPDX-License-Identifier: MIT

// Package matrix - text rendering for demo and CLI output.
//
// Observable thresholds:
//   - Dense: more than DenseRenderLimit rows → only the top-left
//     DenseRenderLimit×DenseRenderLimit corner is printed.
//   - Sparse: at most SparseRenderLimit elements are listed; above that a
//     placeholder line is printed instead.

package matrix

import (
	"fmt"
	"io"
	"strings"
)

const (
	// DenseRenderLimit is the row count above which FormatDense truncates.
	DenseRenderLimit = 10

	// SparseRenderLimit is the largest nnz FormatSparse lists element by element.
	SparseRenderLimit = 50
)

// FormatDense writes a titled, fixed-width rendering of d to w.
// Each cell is printed as "%6.1f ". When d has more than DenseRenderLimit rows
// a notice line is printed and only the top-left corner is shown.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, or the error returned by w.
//
// Complexity:
//   - Time O(shown cells).
func FormatDense(w io.Writer, name string, d *Dense) error {
	if err := ValidateLive(d); err != nil {
		return matrixErrorf("FormatDense", err)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s (%dx%d):\n", name, d.r, d.c)

	rows, cols := d.r, d.c
	if d.r > DenseRenderLimit {
		fmt.Fprintf(&b, "Matrix too large, showing the top-left %dx%d corner:\n",
			DenseRenderLimit, DenseRenderLimit)
		rows = DenseRenderLimit
		cols = min(cols, DenseRenderLimit)
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			fmt.Fprintf(&b, "%6.1f ", d.data[i*d.c+j])
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// FormatSparse writes a titled summary of s to w: shape, nnz and sparsity,
// then every element as "(r,c) = v" when nnz ≤ SparseRenderLimit, otherwise a
// placeholder line.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, or the error returned by w.
//
// Complexity:
//   - Time O(min(nnz, SparseRenderLimit)).
func FormatSparse(w io.Writer, name string, s *Sparse) error {
	if err := ValidateLive(s); err != nil {
		return matrixErrorf("FormatSparse", err)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s (Sparse %dx%d, %d non-zero, %.2f%% sparsity):\n",
		name, s.r, s.c, len(s.elems), s.Sparsity())

	if len(s.elems) <= SparseRenderLimit {
		b.WriteString("Non-zero elements:\n")
		for _, e := range s.elems {
			fmt.Fprintf(&b, "(%d,%d) = %.1f\n", e.Row, e.Col, e.Value)
		}
	} else {
		fmt.Fprintf(&b, "Too many elements to display (>%d)\n", SparseRenderLimit)
	}

	_, err := io.WriteString(w, b.String())

	return err
}
