package utils

import (
	"math"
	"testing"
)

func AssertTrue(t *testing.T, a bool) {
	t.Helper()
	if !a {
		t.Fatalf("Expected true, got false")
	}
}

func AssertEqual(t *testing.T, a interface{}, b interface{}) {
	t.Helper()
	if a != b {
		t.Fatalf("Expected equal: %v != %v\n", a, b)
	}
}

// AssertClose fails unless |a - b| <= tolerance.
func AssertClose(t *testing.T, a, b, tolerance float64) {
	t.Helper()
	if math.IsNaN(a) || math.IsNaN(b) || math.Abs(a-b) > tolerance {
		t.Fatalf("Expected %v within %v of %v\n", a, tolerance, b)
	}
}

func AssertNaN(t *testing.T, a float64) {
	t.Helper()
	if !math.IsNaN(a) {
		t.Fatalf("Expected NaN, got %v\n", a)
	}
}
