// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/sparsebench/builder"
	"github.com/katalvlaran/sparsebench/matrix"
)

// sparseKernels is the add/multiply pair selected by Config.Kernel.
type sparseKernels struct {
	add func(a, b *matrix.Sparse) (*matrix.Sparse, error)
	mul func(a, b *matrix.Sparse) (*matrix.Sparse, error)
}

func kernelsFor(k Kernel) sparseKernels {
	if k == KernelIndexed {
		return sparseKernels{add: matrix.AddSparseMerge, mul: matrix.MultiplySparseRowIndexed}
	}

	return sparseKernels{add: matrix.AddSparse, mul: matrix.MultiplySparse}
}

// Run executes cfg and returns the averaged timings per size.
//
// Implementation:
//   - Stage 1: validate cfg; seed one *rand.Rand shared by the whole run.
//   - Stage 2: per size and iteration draw (A, B), convert, time the three
//     operator pairs, verify if asked, release everything.
//   - Stage 3: divide the accumulated durations by cfg.Iterations.
//
// Errors:
//   - ErrInvalidConfig, ErrVerifyFailed.
//   - ctx.Err() when ctx is done before an iteration starts. The partial
//     report (completed sizes only) is returned with it.
//   - Any generator or operator error, wrapped with size and iteration.
func Run(ctx context.Context, cfg Config, opts ...RunOption) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := defaultRunOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cfg.Sizes = append([]int(nil), cfg.Sizes...)
	rep := &Report{Config: cfg, Results: make([]SizeResult, 0, len(cfg.Sizes))}
	rng := rand.New(rand.NewSource(cfg.Seed))
	kern := kernelsFor(cfg.Kernel)

	for si, size := range cfg.Sizes {
		var sum [len(Operations)]Timing
		for it := 1; it <= cfg.Iterations; it++ {
			if err := ctx.Err(); err != nil {
				return rep, err
			}
			t, err := runIteration(size, it, cfg, kern, rng, o.now)
			if err != nil {
				return rep, err
			}
			for k := range sum {
				sum[k].Dense += t[k].Dense
				sum[k].Sparse += t[k].Sparse
			}
			if o.progress != nil {
				o.progress(Progress{Size: size, SizeIndex: si, Sizes: len(cfg.Sizes), Iteration: it, Iterations: cfg.Iterations})
			}
		}

		res := SizeResult{Size: size}
		n := time.Duration(cfg.Iterations)
		for k, op := range Operations {
			res.Timings[k] = Timing{Op: op, Dense: sum[k].Dense / n, Sparse: sum[k].Sparse / n}
		}
		rep.Results = append(rep.Results, res)
	}

	return rep, nil
}

// iteration owns every matrix allocated for one timed round.
type iteration struct {
	dense  []*matrix.Dense
	sparse []*matrix.Sparse
}

func (it *iteration) d(m *matrix.Dense) *matrix.Dense   { it.dense = append(it.dense, m); return m }
func (it *iteration) s(m *matrix.Sparse) *matrix.Sparse { it.sparse = append(it.sparse, m); return m }

// release frees everything the round allocated.
func (it *iteration) release() {
	for _, m := range it.dense {
		if m != nil && !m.Released() {
			_ = m.Release()
		}
	}
	for _, m := range it.sparse {
		if m != nil && !m.Released() {
			_ = m.Release()
		}
	}
}

// timed runs f once between two clock reads.
func timed[M any](now func() time.Time, f func() (M, error)) (M, time.Duration, error) {
	start := now()
	m, err := f()

	return m, now().Sub(start), err
}

// runIteration draws one operand pair and times each operator pair once.
func runIteration(size, iter int, cfg Config, kern sparseKernels, rng *rand.Rand, now func() time.Time) (out [len(Operations)]Timing, err error) {
	wrap := func(e error) error { return fmt.Errorf("size %d, iteration %d: %w", size, iter, e) }

	var own iteration
	defer own.release()

	a, b, err := builder.RandomPair(size, cfg.Density, builder.WithRand(rng))
	if err != nil {
		return out, wrap(err)
	}
	own.d(a)
	own.d(b)
	as, err := matrix.DenseToSparse(a)
	if err != nil {
		return out, wrap(err)
	}
	own.s(as)
	bs, err := matrix.DenseToSparse(b)
	if err != nil {
		return out, wrap(err)
	}
	own.s(bs)

	var r results
	for k, op := range Operations {
		out[k].Op = op
	}

	// Transpose
	if r.dt, out[OpTranspose].Dense, err = timed(now, func() (*matrix.Dense, error) { return matrix.TransposeDense(a) }); err != nil {
		return out, wrap(err)
	}
	own.d(r.dt)
	if r.st, out[OpTranspose].Sparse, err = timed(now, func() (*matrix.Sparse, error) { return matrix.TransposeSparse(as) }); err != nil {
		return out, wrap(err)
	}
	own.s(r.st)

	// Add
	if r.da, out[OpAdd].Dense, err = timed(now, func() (*matrix.Dense, error) { return matrix.AddDense(a, b) }); err != nil {
		return out, wrap(err)
	}
	own.d(r.da)
	if r.sa, out[OpAdd].Sparse, err = timed(now, func() (*matrix.Sparse, error) { return kern.add(as, bs) }); err != nil {
		return out, wrap(err)
	}
	own.s(r.sa)

	// Multiply
	if r.dm, out[OpMultiply].Dense, err = timed(now, func() (*matrix.Dense, error) { return matrix.MultiplyDense(a, b) }); err != nil {
		return out, wrap(err)
	}
	own.d(r.dm)
	if r.sm, out[OpMultiply].Sparse, err = timed(now, func() (*matrix.Sparse, error) { return kern.mul(as, bs) }); err != nil {
		return out, wrap(err)
	}
	own.s(r.sm)

	if cfg.Verify {
		if err = verify(size, iter, a, b, &r); err != nil {
			return out, err
		}
	}

	return out, nil
}
