package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelsner/crossrank/pkg/model"
)

func TestScore(t *testing.T) {
	fp := model.Fingerprint{
		model.FeatMeanZScore: -1.5,
		model.FeatMeanDelta:  0.02,
		model.FeatFinishRate: 0.8,
	}
	weights := model.RankingWeights{
		model.FeatMeanZScore: 2.0,
		model.FeatMeanDelta:  10.0,
		// no weight for finish_rate
	}
	assert.InDelta(t, -1.5*2.0+0.02*10.0, Score(fp, weights), 1e-12)
}

func TestScoreZeroWeights(t *testing.T) {
	fp := model.Fingerprint{
		model.FeatMeanZScore: -1.5,
		model.FeatMeanDelta:  0.02,
	}
	assert.Zero(t, Score(fp, model.RankingWeights{}))
	assert.Zero(t, Score(fp, model.RankingWeights{
		model.FeatMeanZScore: 0,
		model.FeatMeanDelta:  0,
	}))
}

func TestScoreDisjointFeatures(t *testing.T) {
	fp := model.Fingerprint{model.FeatMeanZScore: 5}
	weights := model.RankingWeights{model.FeatMeanDelta: 3}
	assert.Zero(t, Score(fp, weights))
}

func TestRank(t *testing.T) {
	weights := model.RankingWeights{model.FeatMeanZScore: 1}
	fingerprints := []model.CompetitorFingerprint{
		{CompetitorKey: "midfield", Fingerprint: model.Fingerprint{model.FeatMeanZScore: 0.2}},
		{CompetitorKey: "champion", Fingerprint: model.Fingerprint{model.FeatMeanZScore: -1.4}},
		{CompetitorKey: "backmarker", Fingerprint: model.Fingerprint{model.FeatMeanZScore: 1.9}},
	}

	entries := Rank(fingerprints, weights)
	require.Len(t, entries, 3)
	// ascending: the most negative mean z-score ranks first
	assert.Equal(t, "champion", entries[0].CompetitorKey)
	assert.Equal(t, "midfield", entries[1].CompetitorKey)
	assert.Equal(t, "backmarker", entries[2].CompetitorKey)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Pos)
	}
}

func TestRankStableTies(t *testing.T) {
	fingerprints := []model.CompetitorFingerprint{
		{CompetitorKey: "first_in", Fingerprint: model.Fingerprint{model.FeatMeanZScore: 1}},
		{CompetitorKey: "second_in", Fingerprint: model.Fingerprint{model.FeatMeanZScore: 2}},
	}
	// all scores are zero, the input order decides
	entries := Rank(fingerprints, model.RankingWeights{})
	require.Len(t, entries, 2)
	assert.Equal(t, "first_in", entries[0].CompetitorKey)
	assert.Equal(t, "second_in", entries[1].CompetitorKey)
	assert.Equal(t, 1, entries[0].Pos)
	assert.Equal(t, 2, entries[1].Pos)
}
