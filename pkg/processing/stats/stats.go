// Package stats bundles the descriptive statistics shared by the
// normalization and feature stages. All variances and standard deviations
// are population values (divide by n, not n-1), matching the standardization
// contract of the pipeline.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func Mean(xs []float64) float64 {
	return stat.Mean(xs, nil)
}

func PopVariance(xs []float64) float64 {
	return stat.PopVariance(xs, nil)
}

func PopStdDev(xs []float64) float64 {
	return stat.PopStdDev(xs, nil)
}

func Min(xs []float64) float64 {
	return floats.Min(xs)
}

func Max(xs []float64) float64 {
	return floats.Max(xs)
}

// Median averages the two middle order statistics for even-length input.
// gonum's quantile kinds interpolate differently, so this stays explicit.
func Median(xs []float64) float64 {
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// OLSSlope fits ys against the 0-based index by ordinary least squares and
// returns the slope. Callers must pass at least two points.
func OLSSlope(ys []float64) float64 {
	xs := make([]float64, len(ys))
	floats.Span(xs, 0, float64(len(ys)-1))
	_, beta := stat.LinearRegression(xs, ys, nil, false)
	return beta
}

// RSquared is the coefficient of determination of predictions against
// observed values.
func RSquared(estimates, values []float64) float64 {
	return stat.RSquaredFrom(estimates, values, nil)
}
