package stats

import (
	"math"
	"math/rand"
	"testing"

	"columnstats/column"
	"columnstats/utils"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"
)

var nan = math.NaN()

func floats(values ...float64) *column.FloatColumn {
	return column.FloatColumnOf("test", values)
}

func randomColumn(r *rand.Rand, n int) *column.FloatColumn {
	c := column.NewFloatColumn("random", n)
	for i := 0; i < n; i++ {
		c.Append(r.NormFloat64()*10 + 3)
	}
	return c
}

func TestSum(t *testing.T) {
	utils.AssertEqual(t, Sum(floats(1, nan, 3)), 4.0)
	utils.AssertEqual(t, Sum(floats()), 0.0)
	utils.AssertEqual(t, Sum(floats(nan, nan)), 0.0)
	utils.AssertEqual(t, Sum(floats(-1.5, 2.5, 4)), 5.0)
}

func TestSum_ResetsCursor(t *testing.T) {
	c := floats(1, 2, 3)
	c.Next()
	c.Next()
	utils.AssertEqual(t, Sum(c), 6.0)
	utils.AssertTrue(t, !c.HasNext())
	utils.AssertEqual(t, Sum(c), 6.0)
}

func TestProduct(t *testing.T) {
	utils.AssertEqual(t, Product([]float64{2, nan, 3, 4}), 24.0)
	utils.AssertEqual(t, Product([]float64{-2}), -2.0)
	utils.AssertNaN(t, Product([]float64{nan, nan}))
	utils.AssertNaN(t, Product(nil))
	utils.AssertNaN(t, Product([]float64{}))
}

func TestMinMax(t *testing.T) {
	c := floats(1, nan, 3)
	utils.AssertEqual(t, Max(c), 3.0)
	utils.AssertEqual(t, Min(c), 1.0)

	c = floats(4, -2, 9, 0)
	utils.AssertEqual(t, Min(c), -2.0)
	utils.AssertEqual(t, Max(c), 9.0)

	// A NaN in the first position does not hide the rest of the column.
	c = floats(nan, 5, 1, 3)
	utils.AssertEqual(t, Min(c), 1.0)
	utils.AssertEqual(t, Max(c), 5.0)
}

func TestMinMax_Degenerate(t *testing.T) {
	utils.AssertNaN(t, Min(floats()))
	utils.AssertNaN(t, Max(floats()))
	utils.AssertNaN(t, Min(floats(nan, nan)))
	utils.AssertNaN(t, Max(floats(nan, nan)))
	utils.AssertEqual(t, Min(floats(7)), 7.0)
	utils.AssertEqual(t, Max(floats(7)), 7.0)
}

func TestMean(t *testing.T) {
	utils.AssertEqual(t, Mean(floats(1, 2, 3, 4, 5)), 3.0)
	utils.AssertEqual(t, Mean(floats(2)), 2.0)
	utils.AssertNaN(t, Mean(floats()))

	// NaN entries are excluded from the sum but counted in the size.
	utils.AssertEqual(t, Mean(floats(2, nan, 4, nan)), 1.5)
}

func TestVariance(t *testing.T) {
	utils.AssertEqual(t, Variance(floats(1, 2, 3, 4, 5)), 2.5)
	utils.AssertEqual(t, Variance(floats(3, 3, 3)), 0.0)
	utils.AssertNaN(t, Variance(floats()))
	utils.AssertNaN(t, Variance(floats(42)))
	utils.AssertNaN(t, Variance(floats(1, nan, 3)))
}

func TestVariance_MatchesGonum(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, n := range []int{2, 3, 10, 100, 1000} {
		c := randomColumn(r, n)
		utils.AssertClose(t, Variance(c), stat.Variance(c.Values(), nil), 1e-9)
	}
}

func TestStandardDeviation(t *testing.T) {
	utils.AssertNaN(t, StandardDeviation(floats()))
	utils.AssertEqual(t, StandardDeviation(floats(42)), 0.0)
	utils.AssertEqual(t, StandardDeviation(floats(3, 3)), 0.0)
	utils.AssertClose(t, StandardDeviation(floats(1, 2, 3, 4, 5)), math.Sqrt(2.5), 1e-12)
}

func TestProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for n := 1; n < 200; n += 7 {
		c := randomColumn(r, n)

		min, mean, max := Min(c), Mean(c), Max(c)
		assert.LessOrEqual(t, min, mean+1e-9)
		assert.LessOrEqual(t, mean, max+1e-9)

		sd := StandardDeviation(c)
		if n == 1 {
			utils.AssertEqual(t, sd, 0.0)
			continue
		}
		variance := Variance(c)
		utils.AssertClose(t, sd*sd, variance, 1e-9*math.Max(1, variance))
	}
}

func TestStats(t *testing.T) {
	expected := &Summary{Min: 1, Max: 5, Mean: 3, Variance: 2.5, N: 5}

	c := floats(1, 2, 3, 4, 5)
	c.Next()
	utils.AssertTrue(t, cmp.Equal(expected, Stats(c)))

	ints := column.IntColumnOf("ints", []int64{1, 2, 3, 4, 5})
	utils.AssertTrue(t, cmp.Equal(expected, IntStats(ints)))
}

func TestStats_Degenerate(t *testing.T) {
	empty := &Summary{Min: nan, Max: nan, Mean: nan, Variance: nan, N: 0}
	utils.AssertTrue(t, cmp.Equal(empty, Stats(floats()), cmpopts.EquateNaNs()))

	single := &Summary{Min: 8, Max: 8, Mean: 8, Variance: nan, N: 1}
	summary := Stats(floats(8))
	utils.AssertTrue(t, cmp.Equal(single, summary, cmpopts.EquateNaNs()))
	utils.AssertEqual(t, summary.StandardDeviation(), 0.0)
	utils.AssertNaN(t, Stats(floats()).StandardDeviation())
}

func TestSummary_StandardDeviation(t *testing.T) {
	summary := Stats(floats(2, 4, 4, 4, 5, 5, 7, 9))
	utils.AssertClose(t, summary.StandardDeviation(), math.Sqrt(32.0/7.0), 1e-12)
	assert.Equal(t, "<Summary: N 8 Min 2 Max 9 Mean 5 Variance 4.571428571428571>",
		summary.String())
}

func TestMeanConfidenceInterval(t *testing.T) {
	summary := Stats(floats(1, 2, 3, 4, 5))

	ci := MeanConfidenceInterval(summary, 0.95)
	utils.AssertEqual(t, ci.Mean, 3.0)
	utils.AssertClose(t, ci.LowerCI, 1.614097, 1e-5)
	utils.AssertClose(t, ci.UpperCI, 4.385903, 1e-5)

	// Wide intervals are clamped to the observed range.
	ci = MeanConfidenceInterval(summary, 0.999999)
	utils.AssertEqual(t, ci.LowerCI, 1.0)
	utils.AssertEqual(t, ci.UpperCI, 5.0)

	ci = MeanConfidenceInterval(summary, 1)
	utils.AssertEqual(t, ci.LowerCI, 1.0)
	utils.AssertEqual(t, ci.UpperCI, 5.0)

	ci = MeanConfidenceInterval(Stats(floats(6)), 0.95)
	utils.AssertEqual(t, ci.LowerCI, 6.0)
	utils.AssertEqual(t, ci.UpperCI, 6.0)
}
