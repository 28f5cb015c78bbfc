package normalize

import (
	"github.com/avelsner/crossrank/pkg/processing/stats"
)

// ZScores standardizes the deltas of one comparison group to zero mean and
// unit variance using the population standard deviation. Degenerate groups
// (all deltas identical, including single-member groups) standardize to 0
// for every member instead of propagating a division by zero.
func ZScores(deltas map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(deltas))
	if len(deltas) == 0 {
		return out
	}
	values := make([]float64, 0, len(deltas))
	for _, d := range deltas {
		values = append(values, d)
	}
	mean := stats.Mean(values)
	std := stats.PopStdDev(values)
	for key, d := range deltas {
		if std == 0 {
			out[key] = 0
			continue
		}
		out[key] = (d - mean) / std
	}
	return out
}

// Degenerate reports whether a group of deltas has zero population variance.
func Degenerate(deltas map[string]float64) bool {
	if len(deltas) < 2 {
		return true
	}
	values := make([]float64, 0, len(deltas))
	for _, d := range deltas {
		values = append(values, d)
	}
	return stats.PopStdDev(values) == 0
}
