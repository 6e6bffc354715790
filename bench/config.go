// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sparsebench/builder"
)

// Defaults of the classic performance test.
const (
	DefaultDensity    = 0.1
	DefaultIterations = 5
	DefaultSeed       = 1
)

// DefaultSizes returns the matrix sides used when none are configured.
// A fresh slice is returned on every call.
func DefaultSizes() []int { return []int{10, 100, 500, 1000} }

// Kernel selects the sparse add and multiply implementations.
type Kernel int

const (
	// KernelNaive uses AddSparse (dense round-trip) and MultiplySparse
	// (full cross product). These are the reference strategies.
	KernelNaive Kernel = iota
	// KernelIndexed uses AddSparseMerge and MultiplySparseRowIndexed.
	KernelIndexed
)

// String returns the flag spelling of k.
func (k Kernel) String() string {
	switch k {
	case KernelNaive:
		return "naive"
	case KernelIndexed:
		return "indexed"
	default:
		return fmt.Sprintf("Kernel(%d)", int(k))
	}
}

// ParseKernel maps "naive" or "indexed" (case-insensitive) to a Kernel.
func ParseKernel(s string) (Kernel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "naive", "":
		return KernelNaive, nil
	case "indexed":
		return KernelIndexed, nil
	default:
		return 0, configErrorf("unknown kernel %q", s)
	}
}

// Config describes one benchmark run.
type Config struct {
	Sizes      []int   // square matrix sides, run in order
	Density    float64 // probability of a non-zero cell, in [0,1]
	Iterations int     // repetitions per size; times are averaged
	Seed       int64   // seeds the single RNG stream of the run
	Kernel     Kernel  // sparse add/multiply implementation
	Verify     bool    // cross-check every result
}

// DefaultConfig returns sizes {10,100,500,1000}, density 0.1, 5 iterations,
// the naive kernels and verification off.
func DefaultConfig() Config {
	return Config{
		Sizes:      DefaultSizes(),
		Density:    DefaultDensity,
		Iterations: DefaultIterations,
		Seed:       DefaultSeed,
		Kernel:     KernelNaive,
	}
}

// Validate reports the first problem with c, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return configErrorf("no sizes")
	}
	for _, n := range c.Sizes {
		if n < builder.MinSize {
			return configErrorf("size %d below %d", n, builder.MinSize)
		}
	}
	if !(c.Density >= builder.MinProbability && c.Density <= builder.MaxProbability) {
		return configErrorf("density %g outside [0,1]", c.Density)
	}
	if c.Iterations < 1 {
		return configErrorf("iterations %d below 1", c.Iterations)
	}
	if c.Kernel != KernelNaive && c.Kernel != KernelIndexed {
		return configErrorf("unknown kernel %v", c.Kernel)
	}

	return nil
}
