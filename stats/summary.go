package stats

import (
	"fmt"
	"math"

	"columnstats/column"
)

// Summary bundles the common descriptive statistics of one column scan.
type Summary struct {
	Min      float64
	Max      float64
	Mean     float64
	Variance float64
	N        int
}

// StandardDeviation follows the same conventions as the package-level
// StandardDeviation: NaN for N == 0 and 0 for N == 1.
func (s *Summary) StandardDeviation() float64 {
	switch {
	case s.N == 0:
		return math.NaN()
	case s.N == 1:
		return 0.0
	default:
		return math.Sqrt(s.Variance)
	}
}

func (s *Summary) String() string {
	return fmt.Sprintf("<Summary: N %d Min %g Max %g Mean %g Variance %g>",
		s.N, s.Min, s.Max, s.Mean, s.Variance)
}

// Stats computes min, max, count, mean and variance of the column. Each
// statistic is an independent traversal; the cursor is reset before each.
func Stats(values column.Cursor) *Summary {
	summary := &Summary{}
	summary.Min = Min(values)
	summary.Max = Max(values)
	summary.N = values.Size()
	summary.Mean = Sum(values) / float64(summary.N)
	summary.Variance = Variance(values)
	return summary
}

// IntStats widens the column to float64 and delegates to Stats.
func IntStats(ints column.FloatConvertible) *Summary {
	return Stats(ints.ToFloatColumn())
}
