package model

// Feature names of the statistical fingerprint. The order of FeatureOrder is
// the declared feature ordering used by the training stage and must not be
// reshuffled without retraining.
const (
	FeatMeanZScore      = "mean_z_score"
	FeatVarZScore       = "var_z_score"
	FeatBestZScore      = "best_z_score"
	FeatWorstZScore     = "worst_z_score"
	FeatZScoreRange     = "z_score_range"
	FeatMedianZScore    = "median_z_score"
	FeatZScoreDecayRate = "z_score_decay_rate"
	FeatMeanDelta       = "mean_delta"
	FeatVarDelta        = "var_delta"
	FeatBestDelta       = "best_delta"
	FeatWorstDelta      = "worst_delta"
	FeatDeltaRange      = "delta_range"
	FeatMedianDelta     = "median_delta"
	FeatDeltaDecayRate  = "delta_decay_rate"
	FeatOutlierCount    = "outlier_count"
	FeatOutlierRatio    = "outlier_ratio"
	FeatFinishRate      = "finish_rate"
)

var FeatureOrder = []string{
	FeatMeanZScore, FeatVarZScore, FeatBestZScore, FeatWorstZScore,
	FeatZScoreRange, FeatMedianZScore, FeatZScoreDecayRate,
	FeatMeanDelta, FeatVarDelta, FeatBestDelta, FeatWorstDelta,
	FeatDeltaRange, FeatMedianDelta, FeatDeltaDecayRate,
	FeatOutlierRatio,
}

// Fingerprint is the fixed-shape statistical summary of a competitor's
// normalized performance history. Statistics that could not be computed are
// absent from the map, never zero-filled.
type Fingerprint map[string]float64

// Has reports whether every named feature is present.
func (f Fingerprint) Has(features ...string) bool {
	for _, name := range features {
		if _, ok := f[name]; !ok {
			return false
		}
	}
	return true
}

// Clone returns a copy; Fingerprints handed across stage boundaries are
// treated as immutable.
func (f Fingerprint) Clone() Fingerprint {
	out := make(Fingerprint, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// CompetitorFingerprint pairs a career fingerprint with its owner.
type CompetitorFingerprint struct {
	CompetitorKey string      `json:"competitorKey"`
	Fingerprint   Fingerprint `json:"fingerprint"`
}

// SeasonFingerprint is a single-season fingerprint used as a training row.
type SeasonFingerprint struct {
	CompetitorKey string      `json:"competitorKey"`
	Season        int         `json:"season"`
	Fingerprint   Fingerprint `json:"fingerprint"`
}

// OutcomeLabel is an externally supplied ground-truth value for one
// (competitor, season) pair.
type OutcomeLabel struct {
	CompetitorKey string  `json:"competitorKey"`
	Season        int     `json:"season"`
	Value         float64 `json:"value"`
}
