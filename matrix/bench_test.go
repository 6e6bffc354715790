// Package matrix_test provides benchmarks for the dense and sparse kernels,
// using deterministic random fill at the default 10% density.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/sparsebench/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

const benchDensity = 0.1

// sinks to defeat dead-code elimination
var (
	sinkD *matrix.Dense
	sinkS *matrix.Sparse
)

func BenchmarkDenseToSparse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randomDense(b, n, n, benchDensity, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := matrix.DenseToSparse(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkS = s
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		A := randomDense(b, n, n, benchDensity, 7)
		As := mustSparse(b, A)
		b.Run(fmt.Sprintf("dense/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m, err := matrix.TransposeDense(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = m
			}
		})
		b.Run(fmt.Sprintf("sparse/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m, err := matrix.TransposeSparse(As)
				if err != nil {
					b.Fatal(err)
				}
				sinkS = m
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		A := randomDense(b, n, n, benchDensity, 11)
		B := randomDense(b, n, n, benchDensity, 22)
		As, Bs := mustSparse(b, A), mustSparse(b, B)
		b.Run(fmt.Sprintf("dense/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m, err := matrix.AddDense(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = m
			}
		})
		b.Run(fmt.Sprintf("sparse/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m, err := matrix.AddSparse(As, Bs)
				if err != nil {
					b.Fatal(err)
				}
				sinkS = m
			}
		})
		b.Run(fmt.Sprintf("merge/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m, err := matrix.AddSparseMerge(As, Bs)
				if err != nil {
					b.Fatal(err)
				}
				sinkS = m
			}
		})
	}
}

func BenchmarkMultiply(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		A := randomDense(b, n, n, benchDensity, 31)
		B := randomDense(b, n, n, benchDensity, 32)
		As, Bs := mustSparse(b, A), mustSparse(b, B)
		b.Run(fmt.Sprintf("dense/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m, err := matrix.MultiplyDense(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = m
			}
		})
		b.Run(fmt.Sprintf("sparse/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m, err := matrix.MultiplySparse(As, Bs)
				if err != nil {
					b.Fatal(err)
				}
				sinkS = m
			}
		})
		b.Run(fmt.Sprintf("indexed/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m, err := matrix.MultiplySparseRowIndexed(As, Bs)
				if err != nil {
					b.Fatal(err)
				}
				sinkS = m
			}
		})
	}
}
