// Package stats computes descriptive statistics over numeric columns.
//
// Every function is stateless. Functions that take a column.Cursor reset it
// before traversing and leave it exhausted on return, so a column must not be
// passed to these functions from more than one goroutine at a time. NaN marks
// a missing value; most reducers skip it.
package stats

import (
	"math"

	"columnstats/column"
)

// Sum adds every non-NaN value of the column. An empty column sums to 0.
func Sum(values column.Cursor) float64 {
	values.Reset()
	sum := 0.0
	for values.HasNext() {
		value := values.Next()
		if !math.IsNaN(value) {
			sum += value
		}
	}
	return sum
}

// Product multiplies every non-NaN value. It returns NaN when there is
// nothing to multiply.
func Product(values []float64) float64 {
	product := 1.0
	empty := true
	for _, value := range values {
		if !math.IsNaN(value) {
			empty = false
			product *= value
		}
	}
	if empty {
		return math.NaN()
	}
	return product
}

// Min returns the smallest non-NaN value, or NaN for an empty or all-NaN
// column.
func Min(values column.Cursor) float64 {
	if values.Size() == 0 {
		return math.NaN()
	}
	min := values.FirstElement()
	values.Reset()
	for values.HasNext() {
		value := values.Next()
		if math.IsNaN(value) {
			continue
		}
		if math.IsNaN(min) || value < min {
			min = value
		}
	}
	return min
}

// Max returns the largest non-NaN value, or NaN for an empty or all-NaN
// column.
func Max(values column.Cursor) float64 {
	if values.Size() == 0 {
		return math.NaN()
	}
	max := values.FirstElement()
	values.Reset()
	for values.HasNext() {
		value := values.Next()
		if math.IsNaN(value) {
			continue
		}
		if math.IsNaN(max) || value > max {
			max = value
		}
	}
	return max
}
