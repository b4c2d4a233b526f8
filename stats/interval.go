package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

type CI struct {
	Mean    float64
	LowerCI float64
	UpperCI float64
}

// MeanConfidenceInterval estimates a two-sided confidence interval for the
// mean with the normal approximation mean ± z·sqrt(variance/n). The interval
// never extends past [Min, Max]. With fewer than two values, or a level
// outside [0, 1), it is exactly [Min, Max].
func MeanConfidenceInterval(summary *Summary, confidenceLevel float64) *CI {
	ci := &CI{
		Mean:    summary.Mean,
		LowerCI: summary.Min,
		UpperCI: summary.Max,
	}
	if summary.N < 2 || !(confidenceLevel >= 0 && confidenceLevel < 1) {
		return ci
	}

	z := distuv.UnitNormal.Quantile((1 + confidenceLevel) / 2)
	halfWidth := z * math.Sqrt(summary.Variance/float64(summary.N))
	ci.LowerCI = math.Max(ci.Mean-halfWidth, summary.Min)
	ci.UpperCI = math.Min(ci.Mean+halfWidth, summary.Max)
	return ci
}
