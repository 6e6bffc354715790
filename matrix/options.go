// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Numeric policy is explicit: validateNaNInf controls whether Set/Append
//     reject NaN/Inf. The non-zero test used by conversions is NOT an option;
//     it is always exact (v != 0).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set and Append.
	DefaultValidateNaNInf = true

	// MaxCells bounds rows*cols for a single matrix (2^28 cells ≈ 2 GiB of float64).
	// Requests above it fail with ErrAllocation instead of reaching the runtime.
	MaxCells = 1 << 28
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables rejection of NaN/±Inf in Set and Append.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = true
	}
}

// WithNoValidateNaNInf disables the finite-value guard.
// Use only for controlled ingestion where NaN/Inf carry meaning.
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = false
	}
}

// NewMatrixOptions resolves option setters against documented defaults.
// Stable for a given sequence of opts (last-writer-wins).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// ValidateNaNInf reports whether the finite-value guard is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// gatherOptions applies user-provided Option setters on top of defaults.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
