// Package sparsebench compares dense and COO-sparse matrices of float64:
// how they convert into each other, how transpose, add and multiply are
// carried out in each form, and how fast each form is.
//
// 🚀 What is in the box?
//
//	• Dense and Sparse (coordinate-list) matrices with explicit Release
//	• Converters: dense→sparse (two-pass, row-major) and sparse→dense (scatter)
//	• Operators for both forms: transpose, add, subtract, multiply
//	• Faster opt-in sparse kernels: merge add and row-indexed multiply
//	• A seeded random generator and a benchmark harness with tables and charts
//
// Under the hood, everything is organized under these packages:
//
//	matrix/          - Dense, Sparse, converters, operators, rendering
//	builder/         - random matrices from an injected *rand.Rand
//	bench/           - timing harness, speedup table, gonum/plot chart
//	demo/            - the 5×5 walk-through printed by the CLI
//	cmd/sparsebench/ - interactive menu and flag-driven CLI
//
// Quick example:
//
//	d, _ := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 2}})
//	s, _ := matrix.DenseToSparse(d)      // {(0,0)=1, (1,1)=2}
//	p, _ := matrix.MultiplySparse(s, s)  // {(0,0)=1, (1,1)=4}
//
// The non-zero test is exact (v != 0.0) everywhere; no tolerance is applied.
//
//	go install github.com/katalvlaran/sparsebench/cmd/sparsebench@latest
package sparsebench
