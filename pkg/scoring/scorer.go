// Package scoring applies trained ranking weights to fingerprints and
// produces the cross-era ranking.
package scoring

import (
	"sort"

	"github.com/samber/lo"

	"github.com/avelsner/crossrank/pkg/model"
)

// Score is the dot product over every feature present in both the
// fingerprint and the weights; features absent from either side contribute
// nothing. All-zero weights therefore score exactly 0 regardless of the
// fingerprint.
func Score(fp model.Fingerprint, weights model.RankingWeights) float64 {
	score := 0.0
	for feature, value := range fp {
		if w, ok := weights[feature]; ok {
			score += value * w
		}
	}
	return score
}

// Rank orders competitors ascending by score: the z-score sign convention
// makes lower scores the stronger performances. Ties keep their input order.
func Rank(fingerprints []model.CompetitorFingerprint, weights model.RankingWeights) []model.RankingEntry {
	entries := lo.Map(fingerprints,
		func(cf model.CompetitorFingerprint, _ int) model.RankingEntry {
			return model.RankingEntry{
				CompetitorKey: cf.CompetitorKey,
				Score:         Score(cf.Fingerprint, weights),
			}
		})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score < entries[j].Score
	})
	for i := range entries {
		entries[i].Pos = i + 1
	}
	return entries
}
