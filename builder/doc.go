// Package builder generates random matrices for tests, demos and the
// benchmark harness, using "functional-options" configuration in the same
// spirit as the matrix package.
//
// The package offers the following key components:
//
//   - Constructors:
//     – RandomDense(size, density, opts...):  size×size Dense, each cell
//     independently non-zero with probability density, valued as a uniform
//     integer in [1,10] (configurable).
//     – RandomSparse(size, density, opts...): the same draw, returned in COO form.
//     – RandomPair(size, density, opts...):   two operands from one RNG stream.
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the RNG and the value range.
//     – WithSeed / WithRand / WithValueRange.
//   - Validation helpers:
//     – validateMin:         ensure integer ≥ minimum.
//     – validateProbability: ensure p ∈ [0.0,1.0].
//
// Guarantees:
//
//   - No global RNG state: randomness comes only from the injected *rand.Rand.
//     A fixed seed reproduces the same matrix bit for bit.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrTooSmall, ErrInvalidProbability,
//     ErrNeedRandSource) wrapped with the constructor name.
//   - Cells are drawn in row-major order: one Bernoulli trial per cell, one
//     value draw per non-zero cell.
package builder
