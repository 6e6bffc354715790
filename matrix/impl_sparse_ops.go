// SPDX-License-Identifier: MIT

// Package matrix - sparse operators.
//
// Strategies (each with its own complexity profile):
//   - TransposeSparse: swap Row/Col per element. O(nnz), no dense detour.
//   - AddSparse/SubSparse: dense round-trip (sparse→dense twice, dense kernel,
//     dense→sparse). O(r*c) regardless of nnz.
//   - MultiplySparse: dense accumulator plus the full cross product of stored
//     elements, joined on e1.Col == e2.Row. O(nnz_a * nnz_b + r_a*c_b).
//
// The round-trip add and the cross-product multiply are the reference
// strategies the benchmark reports on. AddSparseMerge and
// MultiplySparseRowIndexed are faster alternatives with identical results;
// they are opt-in and never substituted behind a caller's back.
//
// Lifetime:
//   - Every intermediate Dense created here is released before return, on the
//     success path and on every error path alike.

package matrix

import "sort"

const (
	opTransposeSparse = "TransposeSparse"
	opAddSparse       = "AddSparse"
	opSubSparse       = "SubSparse"
	opMulSparse       = "MultiplySparse"
	opAddSparseMerge  = "AddSparseMerge"
	opMulSparseIdx    = "MultiplySparseRowIndexed"
)

// releaseDense drops an intermediate; used in defers so the early-exit paths
// release exactly like the success path.
func releaseDense(d *Dense) {
	if d != nil && !d.released {
		_ = d.Release()
	}
}

// TransposeSparse returns mᵀ: rows and cols swapped, each element's Row/Col
// swapped, values and element order unchanged.
//
// Errors:
//   - ErrNilMatrix, ErrReleased.
//
// Complexity:
//   - Time O(nnz), Space O(nnz).
func TransposeSparse(m *Sparse) (*Sparse, error) {
	if err := ValidateLive(m); err != nil {
		return nil, matrixErrorf(opTransposeSparse, err)
	}
	elems := make([]Element, len(m.elems))
	for i, e := range m.elems {
		elems[i] = Element{Row: e.Col, Col: e.Row, Value: e.Value}
	}

	return &Sparse{r: m.c, c: m.r, elems: elems, validateNaNInf: m.validateNaNInf}, nil
}

// AddSparse computes A + B through a dense round-trip.
// MAIN DESCRIPTION:
//   - Convert both operands to Dense, add densely, convert the sum back.
//
// Behavior highlights:
//   - Output is row-major, duplicate-free and holds no explicit zeros
//     (cells that cancel to exactly 0.0 disappear).
//   - Duplicate coordinates inside one operand resolve last-write-wins first.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, *DimensionError (rows and cols must match).
//
// Complexity:
//   - Time O(r*c + nnz_a + nnz_b), Space O(r*c) transient.
func AddSparse(a, b *Sparse) (*Sparse, error) {
	return roundTrip(a, b, AddDense, opAddSparse)
}

// SubSparse computes A - B through the same dense round-trip as AddSparse.
func SubSparse(a, b *Sparse) (*Sparse, error) {
	return roundTrip(a, b, SubDense, opSubSparse)
}

// roundTrip runs a dense elementwise kernel on sparse operands.
func roundTrip(a, b *Sparse, kernel func(*Dense, *Dense) (*Dense, error), opTag string) (*Sparse, error) {
	if err := binaryGuard(opTag, a, b, sameShape); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	da, err := SparseToDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	defer releaseDense(da)

	db, err := SparseToDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	defer releaseDense(db)

	sum, err := kernel(da, db)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	defer releaseDense(sum)

	res, err := DenseToSparse(sum)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	return res, nil
}

// MultiplySparse computes A × B with a dense accumulator and a full scan of
// element pairs.
// MAIN DESCRIPTION:
//   - For every e1 in A and every e2 in B with e1.Col == e2.Row:
//     acc[e1.Row][e2.Col] += e1.Value * e2.Value; then acc → Sparse.
//
// Behavior highlights:
//   - Every pair is tested, so the cost is nnz_a*nnz_b even when few pairs
//     join. MultiplySparseRowIndexed visits only joining pairs.
//   - Accumulated cells equal to exactly 0.0 are not stored.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, *DimensionError (a.Cols must equal b.Rows),
//     ErrAllocation (a.Rows*b.Cols above MaxCells).
//
// Complexity:
//   - Time O(nnz_a*nnz_b + r_a*c_b), Space O(r_a*c_b) transient.
func MultiplySparse(a, b *Sparse) (*Sparse, error) {
	if err := binaryGuard(opMulSparse, a, b, mulCompatible); err != nil {
		return nil, matrixErrorf(opMulSparse, err)
	}
	acc, err := newAccumulator(a, b)
	if err != nil {
		return nil, matrixErrorf(opMulSparse, err)
	}
	defer releaseDense(acc)

	cols := acc.c
	for _, e1 := range a.elems {
		for _, e2 := range b.elems {
			if e1.Col == e2.Row {
				acc.data[e1.Row*cols+e2.Col] += e1.Value * e2.Value
			}
		}
	}

	res, err := DenseToSparse(acc)
	if err != nil {
		return nil, matrixErrorf(opMulSparse, err)
	}

	return res, nil
}

// MultiplySparseRowIndexed computes A × B like MultiplySparse but groups B's
// elements by row first, so each e1 only meets the elements of row e1.Col.
// MAIN DESCRIPTION:
//   - Counting-sort B into row buckets (stable), then accumulate.
//
// Behavior highlights:
//   - Each output cell receives its products in the same order as in
//     MultiplySparse, so results are bit-identical.
//
// Errors:
//   - Same as MultiplySparse.
//
// Complexity:
//   - Time O(nnz_a*avg_row_nnz_b + nnz_b + r_b + r_a*c_b), Space O(nnz_b + r_a*c_b).
func MultiplySparseRowIndexed(a, b *Sparse) (*Sparse, error) {
	if err := binaryGuard(opMulSparseIdx, a, b, mulCompatible); err != nil {
		return nil, matrixErrorf(opMulSparseIdx, err)
	}
	acc, err := newAccumulator(a, b)
	if err != nil {
		return nil, matrixErrorf(opMulSparseIdx, err)
	}
	defer releaseDense(acc)

	// Row buckets: start[r]..start[r+1] index into byRow.
	start := make([]int, b.r+1)
	for _, e := range b.elems {
		start[e.Row+1]++
	}
	for r := 0; r < b.r; r++ {
		start[r+1] += start[r]
	}
	byRow := make([]Element, len(b.elems))
	next := make([]int, b.r)
	copy(next, start[:b.r])
	for _, e := range b.elems {
		byRow[next[e.Row]] = e
		next[e.Row]++
	}

	cols := acc.c
	var base int
	for _, e1 := range a.elems {
		base = e1.Row * cols
		for _, e2 := range byRow[start[e1.Col]:start[e1.Col+1]] {
			acc.data[base+e2.Col] += e1.Value * e2.Value
		}
	}

	res, err := DenseToSparse(acc)
	if err != nil {
		return nil, matrixErrorf(opMulSparseIdx, err)
	}

	return res, nil
}

// AddSparseMerge computes A + B by merging coordinate-sorted element lists.
// MAIN DESCRIPTION:
//   - Normalize each operand (stable sort by (row, col), last duplicate wins),
//     then merge, summing equal coordinates.
//
// Behavior highlights:
//   - Same output as AddSparse, element for element: row-major order, no
//     duplicates, sums equal to exactly 0.0 dropped.
//   - Never touches an r*c buffer.
//
// Errors:
//   - ErrNilMatrix, ErrReleased, *DimensionError.
//
// Complexity:
//   - Time O(nnz_a log nnz_a + nnz_b log nnz_b), Space O(nnz_a + nnz_b).
func AddSparseMerge(a, b *Sparse) (*Sparse, error) {
	if err := binaryGuard(opAddSparseMerge, a, b, sameShape); err != nil {
		return nil, matrixErrorf(opAddSparseMerge, err)
	}
	x := normalizeElements(a.elems)
	y := normalizeElements(b.elems)

	out := make([]Element, 0, len(x)+len(y))
	var i, j int
	var v float64
	for i < len(x) && j < len(y) {
		switch {
		case coordLess(x[i], y[j]):
			out = append(out, x[i])
			i++
		case coordLess(y[j], x[i]):
			out = append(out, y[j])
			j++
		default:
			v = x[i].Value + y[j].Value
			if v != 0.0 {
				out = append(out, Element{Row: x[i].Row, Col: x[i].Col, Value: v})
			}
			i++
			j++
		}
	}
	out = append(out, x[i:]...)
	out = append(out, y[j:]...)

	return &Sparse{r: a.r, c: a.c, elems: out, validateNaNInf: a.validateNaNInf}, nil
}

// newAccumulator allocates the zero-filled a.Rows × b.Cols product buffer.
func newAccumulator(a, b *Sparse) (*Dense, error) {
	if err := checkShape(a.r, b.c); err != nil {
		return nil, err
	}

	return &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c), validateNaNInf: a.validateNaNInf}, nil
}

// coordLess orders elements row-major.
func coordLess(p, q Element) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}

	return p.Col < q.Col
}

// normalizeElements returns a row-major copy with one element per coordinate
// (the last one in input order) and no zero values.
func normalizeElements(in []Element) []Element {
	cp := make([]Element, len(in))
	copy(cp, in)
	sort.SliceStable(cp, func(i, j int) bool { return coordLess(cp[i], cp[j]) })

	out := cp[:0]
	for i := 0; i < len(cp); i++ {
		// Skip to the last element of a run of equal coordinates.
		if i+1 < len(cp) && !coordLess(cp[i], cp[i+1]) {
			continue
		}
		if cp[i].Value != 0.0 {
			out = append(out, cp[i])
		}
	}

	return out
}
