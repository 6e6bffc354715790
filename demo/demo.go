// SPDX-License-Identifier: MIT

// Package demo prints a short walk through the sparse operators on two
// random 5×5 matrices: conversion, transpose, add, subtract and multiply.
//
// Every operator error is returned to the caller; nothing is skipped
// silently.
package demo

import (
	"fmt"
	"io"

	"github.com/katalvlaran/sparsebench/builder"
	"github.com/katalvlaran/sparsebench/matrix"
)

const (
	// Size is the side of the demo matrices.
	Size = 5
	// Density is the non-zero probability of a demo cell.
	Density = 0.3
)

const banner = "========================================\n"

// Run draws (A, B) with builder.RandomPair(Size, Density, opts...) and
// writes the walk-through to w. Pass builder.WithSeed for a reproducible
// transcript; without an RNG option Run fails with builder.ErrNeedRandSource.
func Run(w io.Writer, opts ...builder.BuilderOption) error {
	a, b, err := builder.RandomPair(Size, Density, opts...)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	defer func() { _ = a.Release() }()
	defer func() { _ = b.Release() }()

	as, err := matrix.DenseToSparse(a)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	defer func() { _ = as.Release() }()
	bs, err := matrix.DenseToSparse(b)
	if err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	defer func() { _ = bs.Release() }()

	p := &printer{w: w}
	p.printf("%sSPARSE MATRIX OPERATIONS DEMO\n%s", banner, banner)
	p.dense("Matrix A (Dense)", a)
	p.sparse("Matrix A (Sparse)", as)

	p.printf("\n--- TRANSPOSE ---")
	p.result("A^T (Transpose)", func() (*matrix.Sparse, error) { return matrix.TransposeSparse(as) })

	p.printf("\n--- ADDITION ---")
	p.sparse("Matrix B", bs)
	p.result("A + B", func() (*matrix.Sparse, error) { return matrix.AddSparse(as, bs) })

	p.printf("\n--- SUBTRACTION ---")
	p.result("A - B", func() (*matrix.Sparse, error) { return matrix.SubSparse(as, bs) })

	p.printf("\n--- MULTIPLICATION ---")
	p.result("A x B", func() (*matrix.Sparse, error) { return matrix.MultiplySparse(as, bs) })

	if p.err != nil {
		return fmt.Errorf("demo: %w", p.err)
	}

	return nil
}

// printer stops writing after the first error and keeps it.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) dense(name string, d *matrix.Dense) {
	if p.err == nil {
		p.err = matrix.FormatDense(p.w, name, d)
	}
}

func (p *printer) sparse(name string, s *matrix.Sparse) {
	if p.err == nil {
		p.err = matrix.FormatSparse(p.w, name, s)
	}
}

// result runs op, prints its output under name and releases it.
func (p *printer) result(name string, op func() (*matrix.Sparse, error)) {
	if p.err != nil {
		return
	}
	s, err := op()
	if err != nil {
		p.err = fmt.Errorf("%s: %w", name, err)
		return
	}
	p.sparse(name, s)
	_ = s.Release()
}
