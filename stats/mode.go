package stats

import (
	"fmt"
	"math"

	"columnstats/tree"
)

// Frequency is one row of a frequency table.
type Frequency struct {
	Value float64
	Count int
}

// Mode returns the most frequently occurring value(s) of sample in ascending
// order. NaN values are ignored. If sample is empty or holds only NaN, the
// result is empty. A nil sample is an error.
//
// For example, the modes of {0, 12, 5, 6, 0, 13, 5, 17} are {0, 5}.
func Mode(sample []float64) ([]float64, error) {
	if sample == nil {
		return nil, fmt.Errorf("%w: nil sample", ErrInvalidArgument)
	}
	return getMode(sample, 0, len(sample)), nil
}

// ModeRange is Mode over sample[begin : begin+length]. begin and length must
// not be negative; the range must lie within sample.
func ModeRange(sample []float64, begin, length int) ([]float64, error) {
	if sample == nil {
		return nil, fmt.Errorf("%w: nil sample", ErrInvalidArgument)
	}
	if begin < 0 {
		return nil, fmt.Errorf("%w: negative start position %d", ErrInvalidArgument, begin)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidArgument, length)
	}
	return getMode(sample, begin, length), nil
}

// Frequencies counts each distinct non-NaN value of sample, in ascending
// value order.
func Frequencies(sample []float64) []Frequency {
	freq := frequencyTable(sample)
	table := make([]Frequency, 0, freq.Count())
	freq.Map(func(key tree.RbKey, count interface{}) bool {
		table = append(table, Frequency{
			Value: float64(key.(tree.Float64Key)),
			Count: count.(int),
		})
		return false
	})
	return table
}

func frequencyTable(values []float64) *tree.RbTree {
	freq := tree.NewRbTree()
	for _, value := range values {
		if !math.IsNaN(value) {
			freq.Increment(tree.Float64Key(value))
		}
	}
	return freq
}

// getMode assumes its arguments have been validated.
func getMode(values []float64, begin, length int) []float64 {
	freq := frequencyTable(values[begin : begin+length])

	maxCount := 0
	freq.Map(func(_ tree.RbKey, count interface{}) bool {
		if count.(int) > maxCount {
			maxCount = count.(int)
		}
		return false
	})

	modes := make([]float64, 0)
	freq.Map(func(key tree.RbKey, count interface{}) bool {
		if count.(int) == maxCount {
			modes = append(modes, float64(key.(tree.Float64Key)))
		}
		return false
	})
	return modes
}
