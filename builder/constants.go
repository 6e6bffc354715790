// Package builder defines shared constants used by the matrix generators,
// ensuring consistent defaults and validation across constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRandomDense is the canonical name for the RandomDense constructor.
	MethodRandomDense = "RandomDense"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
)

//-----------------------------------------------------------------------------
// Size and probability domains
//-----------------------------------------------------------------------------

const (
	// MinSize is the smallest accepted matrix side length.
	MinSize = 1

	// MinProbability is the lower bound of a density, inclusive.
	MinProbability = 0.0
	// MaxProbability is the upper bound of a density, inclusive.
	MaxProbability = 1.0
)

//-----------------------------------------------------------------------------
// Value range defaults
//-----------------------------------------------------------------------------

const (
	// DefaultMinValue is the smallest value drawn for a non-zero cell.
	DefaultMinValue = 1
	// DefaultMaxValue is the largest value drawn for a non-zero cell.
	DefaultMaxValue = 10
)
