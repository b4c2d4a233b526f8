package stats

import (
	"math"

	"columnstats/column"
)

// Mean divides Sum by the column size. NaN entries are excluded from the sum
// but still counted in the size. An empty column yields NaN.
func Mean(values column.Cursor) float64 {
	return Sum(values) / float64(values.Size())
}

// Variance returns the bias-corrected sample variance, using n - 1 in the
// denominator. It is computed in two passes: one for the mean and one for the
// squared deviations from it. A single value yields NaN and an empty column
// yields NaN. NaN entries propagate into the result.
func Variance(values column.Cursor) float64 {
	n := values.Size()
	if n == 0 {
		return math.NaN()
	}
	avg := Mean(values)
	values.Reset()
	sumSquaredDiffs := 0.0
	for values.HasNext() {
		diff := values.Next() - avg
		sumSquaredDiffs += diff * diff
	}
	return sumSquaredDiffs / float64(n-1)
}

// StandardDeviation returns the square root of Variance. Unlike Variance it
// returns 0 for a single value; an empty column yields NaN.
func StandardDeviation(values column.Cursor) float64 {
	switch n := values.Size(); {
	case n == 0:
		return math.NaN()
	case n == 1:
		return 0.0
	default:
		return math.Sqrt(Variance(values))
	}
}
