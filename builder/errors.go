// SPDX-License-Identifier: MIT
// Package: sparsebench/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Generators MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates that a size parameter is smaller than MinSize.
// Usage: if errors.Is(err, ErrTooSmall) { /* report invalid size */ }.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a density is outside the closed
// interval [0,1].
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic draw was requested but no
// *rand.Rand was configured (WithSeed/WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf wraps a sentinel with the given method context and a
// formatted detail: "<Method>: <detail>: <sentinel>".
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// --- Implementation Notes ----------------------------------------------------
//
// Priority (tie-break guidance when multiple validations fail):
//    • ErrTooSmall           - size checks first.
//    • ErrInvalidProbability - then probability ranges.
//    • ErrNeedRandSource     - then RNG presence for stochastic draws.
