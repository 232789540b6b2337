package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 5.0, Mean([]float64{5}))
	assert.Equal(t, 2.5, Mean([]float64{1, 2, 3, 4}))
}

func TestStdDevIsSampleDeviation(t *testing.T) {
	assert.Equal(t, 0.0, StdDev(nil))
	assert.Equal(t, 0.0, StdDev([]float64{42}))

	// sample variance of {2,4,4,4,5,5,7,9} is 32/7
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 2.13809, StdDev(values), 1e-4)
}

func TestCoefficientOfVariation(t *testing.T) {
	assert.Equal(t, 0.0, CoefficientOfVariation([]float64{0, 0}))
	assert.InDelta(t, 0.0, CoefficientOfVariation([]float64{100, 100, 100}), 1e-12)

	values := []float64{50, 100, 150}
	assert.InDelta(t, 0.5, CoefficientOfVariation(values), 1e-12)
}

func TestQuantileInterpolates(t *testing.T) {
	values := []float64{1, 2, 3, 4}

	tests := []struct {
		name     string
		q        float64
		expected float64
	}{
		{"minimum", 0, 1},
		{"q25 interpolated", 0.25, 1.75},
		{"median interpolated", 0.5, 2.5},
		{"q75 interpolated", 0.75, 3.25},
		{"maximum", 1, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, Quantile(values, tc.q), 1e-12)
		})
	}
}

func TestQuantileDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Quantile(values, 0.5)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 2.0, Median([]float64{1, 2, 3}))
	assert.Equal(t, 2.5, Median([]float64{1, 2, 3, 4}))
	assert.Equal(t, 0.0, Median(nil))
}
