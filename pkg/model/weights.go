package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// RankingWeights maps a feature name to its learned coefficient. Consumed
// read-only by the scoring stage.
type RankingWeights map[string]float64

// WeightsArtifact is the versioned training output persisted for inference.
type WeightsArtifact struct {
	ID        uuid.UUID      `json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	Alpha     float64        `json:"alpha"`
	L1Ratio   float64        `json:"l1Ratio"`
	TrainR2   float64        `json:"trainR2"`
	TestR2    float64        `json:"testR2"`
	Weights   RankingWeights `json:"weights"`
}

// RankingEntry is one row of the final ranking (ascending score order;
// a lower score denotes stronger relative performance).
type RankingEntry struct {
	Pos           int     `json:"pos"`
	CompetitorKey string  `json:"competitorKey"`
	Score         float64 `json:"score"`
}
