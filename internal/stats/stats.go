// Package stats provides the handful of descriptive statistics the analyzers
// share: mean, sample standard deviation, linear-interpolation quantiles and
// the coefficient of variation.
package stats

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the sample standard deviation (n-1 denominator), or 0 when
// fewer than two values are present.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

// CoefficientOfVariation returns StdDev/Mean, or 0 when the mean is zero.
func CoefficientOfVariation(values []float64) float64 {
	mean := Mean(values)
	if mean == 0 {
		return 0
	}
	return StdDev(values) / mean
}

// Quantile returns the q-th quantile (0 <= q <= 1) using linear
// interpolation between closest ranks. Returns 0 for an empty slice.
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}

	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}
	frac := pos - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}

// Median returns the 50th percentile.
func Median(values []float64) float64 {
	return Quantile(values, 0.5)
}
