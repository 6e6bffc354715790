// Package builder provides validation helpers to enforce parameter
// contracts in the generators.
//
// Each function returns a wrapped sentinel via builderErrorf when its
// precondition is violated.
package builder

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: parameter must be ≥ <min>, got <got>: <ErrTooSmall>" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooSmall, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// NaN fails both comparisons and is rejected as well.
//
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return builderErrorf(method, ErrInvalidProbability,
			"probability must be in [%.1f,%.1f], got %f", MinProbability, MaxProbability, p)
	}

	return nil
}

// validateRand enforces the presence of an RNG when the draw is stochastic:
// 0 < p < 1 needs Bernoulli trials, and p > 0 with a non-degenerate value
// range needs value draws.
//
// Complexity: O(1) time and space.
func validateRand(method string, cfg builderConfig, p float64) error {
	if cfg.rng != nil {
		return nil
	}
	stochasticCells := p > MinProbability && p < MaxProbability
	stochasticValues := p > MinProbability && cfg.minValue != cfg.maxValue
	if stochasticCells || stochasticValues {
		return builderErrorf(method, ErrNeedRandSource, "density %g", p)
	}

	return nil
}
