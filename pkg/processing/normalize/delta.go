// Package normalize implements the two-stage normalization that makes timing
// records comparable across eras: the relative delta against the best time of
// a comparison group, followed by a z-score standardization within the group.
package normalize

import (
	"github.com/avelsner/crossrank/pkg/processing/era"
)

// RelativeDeltas computes (value - best) / best for every member of the
// group, best being the smallest value. Group values are positive by
// construction (era.Strategy excludes non-positive times); an empty group
// yields an empty map.
func RelativeDeltas(g era.Group) map[string]float64 {
	if len(g.Values) == 0 {
		return map[string]float64{}
	}
	best := 0.0
	for _, v := range g.Values {
		if best == 0 || v < best {
			best = v
		}
	}
	deltas := make(map[string]float64, len(g.Values))
	for key, v := range g.Values {
		deltas[key] = (v - best) / best
	}
	return deltas
}
