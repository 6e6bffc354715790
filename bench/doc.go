// SPDX-License-Identifier: MIT

// Package bench times the dense and sparse operators of package matrix
// against each other on random square matrices.
//
// For every size in Config.Sizes and every iteration, Run draws two random
// operands with package builder, converts them to COO, and times
//
//	Transpose:  TransposeDense(A)   vs  TransposeSparse(Aₛ)
//	Add:        AddDense(A, B)      vs  AddSparse(Aₛ, Bₛ)
//	Multiply:   MultiplyDense(A, B) vs  MultiplySparse(Aₛ, Bₛ)
//
// Only the operator call is inside the timed window; generation, conversion
// and verification are not. Times are averaged per size, and the speedup of
// an operation is dense time divided by sparse time.
//
// KernelIndexed swaps the sparse add and multiply for AddSparseMerge and
// MultiplySparseRowIndexed. Results are identical, so only the timings move.
//
// With Config.Verify set, every iteration also checks that the two
// representations produced the same matrix and that MultiplyDense agrees
// with gonum's mat.Dense.Mul. A mismatch aborts the run with ErrVerifyFailed.
//
// Run is sequential and checks ctx between iterations. A Report renders as a
// fixed-width table (WriteTable) or a grouped bar chart of speedups
// (SaveChart, via gonum.org/v1/plot).
package bench
