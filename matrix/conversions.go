// SPDX-License-Identifier: MIT

// Package matrix - converters between the dense and COO representations.
//
// Contract:
//   - DenseToSparse keeps a cell iff v != 0.0, compared exactly. There is no
//     epsilon: a computed value that rounds to exactly 0.0 is dropped, one that
//     rounds to a tiny non-zero is kept. Callers that need a tolerance must
//     clean the dense input first.
//   - SparseToDense scatters in element order; duplicate coordinates resolve
//     last-write-wins.
//   - Results never alias inputs; both directions allocate fresh storage.

package matrix

const (
	opDenseToSparse = "DenseToSparse"
	opSparseToDense = "SparseToDense"
)

// DenseToSparse converts d into a COO matrix holding its non-zero cells.
// MAIN DESCRIPTION:
//   - Two-pass conversion: count, then allocate exactly nnz elements and fill.
//
// Implementation:
//   - Stage 1: validate d (non-nil, not released).
//   - Stage 2: first row-major pass counts cells with v != 0.
//   - Stage 3: allocate the element slice with len == count; second row-major
//     pass fills it.
//
// Behavior highlights:
//   - Element order is deterministic row-major.
//   - An all-zero input yields nnz == 0 and an empty element slice.
//   - The numeric policy of d is carried over to the result.
//
// Errors:
//   - ErrNilMatrix, ErrReleased.
//
// Complexity:
//   - Time O(r*c), Space O(nnz).
func DenseToSparse(d *Dense) (*Sparse, error) {
	if err := ValidateLive(d); err != nil {
		return nil, matrixErrorf(opDenseToSparse, err)
	}

	// Pass 1: count.
	var count int
	for _, v := range d.data {
		if v != 0.0 {
			count++
		}
	}

	// Pass 2: allocate exactly and fill in row-major order.
	elems := make([]Element, count)
	var i, j, base, idx int
	var v float64
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			v = d.data[base+j]
			if v != 0.0 {
				elems[idx] = Element{Row: i, Col: j, Value: v}
				idx++
			}
		}
	}

	return &Sparse{r: d.r, c: d.c, elems: elems, validateNaNInf: d.validateNaNInf}, nil
}

// SparseToDense expands s into a zero-filled Dense and scatters its elements.
// MAIN DESCRIPTION:
//   - Allocate rows×cols zeros, then write data[row][col] = value per element.
//
// Behavior highlights:
//   - Duplicate coordinates: later elements overwrite earlier ones.
//   - Coordinates are re-checked; a corrupted element fails instead of
//     writing into a neighbouring row.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrOutOfRange.
//
// Complexity:
//   - Time O(r*c + nnz), Space O(r*c).
func SparseToDense(s *Sparse) (*Dense, error) {
	if err := ValidateLive(s); err != nil {
		return nil, matrixErrorf(opSparseToDense, err)
	}
	d := &Dense{r: s.r, c: s.c, data: make([]float64, s.r*s.c), validateNaNInf: s.validateNaNInf}
	for _, e := range s.elems {
		if e.Row < 0 || e.Row >= s.r || e.Col < 0 || e.Col >= s.c {
			return nil, matrixErrorf(opSparseToDense, sparseErrorf(ctxAt, e.Row, e.Col, ErrOutOfRange))
		}
		d.data[e.Row*s.c+e.Col] = e.Value
	}

	return d, nil
}
