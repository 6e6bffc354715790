// Package matrix offers dense and COO-sparse matrices of float64 with
// converters and the transpose / add / subtract / multiply operators for both.
//
// The matrix package provides:
//
//   - Dense: a rows×cols grid in one contiguous row-major buffer.
//   - Sparse: an unordered list of (row, col, value) triples holding only
//     non-zero cells (COO format).
//   - DenseToSparse / SparseToDense: two-pass conversion and zero-fill+scatter.
//   - Dense operators: TransposeDense, AddDense, SubDense, MultiplyDense.
//   - Sparse operators: TransposeSparse (O(nnz)), AddSparse/SubSparse (dense
//     round-trip), MultiplySparse (cross product of stored elements), plus the
//     opt-in AddSparseMerge and MultiplySparseRowIndexed.
//   - FormatDense / FormatSparse for truncated text output.
//
// Every matrix has an explicit end of life (Release). Using a released matrix,
// or releasing it twice, is reported as ErrReleased rather than left undefined.
// Shape failures of binary operators come back as *DimensionError, which
// matches ErrDimensionMismatch.
//
// The non-zero test is exact (v != 0.0). No tolerance is applied anywhere.
package matrix
