package basedata

import (
	"context"
	"log"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avelsner/crossrank/pkg/model"
	eventrepos "github.com/avelsner/crossrank/pkg/repository/event"
	weightsrepos "github.com/avelsner/crossrank/pkg/repository/weights"
)

func TestTime() time.Time {
	t, _ := time.Parse(time.RFC3339, "2026-04-28T11:10:12Z")
	return t
}

// SampleEvent is a small per-lap era event: two finishers, one DNF.
func SampleEvent() *model.Event {
	return &model.Event{
		Season:         2001,
		Circuit:        "monaco",
		LapGranularity: true,
		Results: map[string]*model.CompetitorResult{
			"m_schumacher": {
				CompetitorKey: "m_schumacher",
				Laps:          map[int]float64{1: 80.1, 2: 79.8, 3: 79.9},
			},
			"hakkinen": {
				CompetitorKey: "hakkinen",
				Laps:          map[int]float64{1: 80.5, 2: 80.2, 3: 80.0},
			},
			"barrichello": {
				CompetitorKey: "barrichello",
				Laps:          map[int]float64{1: 81.0},
			},
		},
	}
}

// SampleTotalTimeEvent is a whole-race era event of the same circuit.
func SampleTotalTimeEvent() *model.Event {
	return &model.Event{
		Season:         1960,
		Circuit:        "monaco",
		LapGranularity: false,
		Results: map[string]*model.CompetitorResult{
			"moss":    {CompetitorKey: "moss", TotalTime: 5400},
			"brabham": {CompetitorKey: "brabham", TotalTime: 5450},
			"hill":    {CompetitorKey: "hill", TotalTime: 0},
		},
	}
}

func SampleNormalizedEvent() *model.NormalizedEvent {
	return &model.NormalizedEvent{
		Season:         2001,
		Circuit:        "monaco",
		LapGranularity: true,
		Results: map[string]*model.NormalizedResult{
			"m_schumacher": {
				CompetitorKey: "m_schumacher",
				ByLap: map[int]*model.NormalizedValue{
					1: {RelativeDelta: 0, ZScore: -1},
					2: {RelativeDelta: 0, ZScore: -1},
				},
			},
			"hakkinen": {
				CompetitorKey: "hakkinen",
				ByLap: map[int]*model.NormalizedValue{
					1: {RelativeDelta: 0.005, ZScore: 1},
					2: {RelativeDelta: 0.005, ZScore: 1},
				},
			},
		},
	}
}

func SampleWeightsArtifact() *model.WeightsArtifact {
	id, _ := uuid.FromString("018f9f2c-0000-7000-8000-000000000001")
	return &model.WeightsArtifact{
		ID:        id,
		CreatedAt: TestTime(),
		Alpha:     0.01,
		L1Ratio:   0.5,
		TrainR2:   0.91,
		TestR2:    0.87,
		Weights: model.RankingWeights{
			model.FeatMeanZScore: 0.6,
			model.FeatVarZScore:  0.2,
			model.FeatMeanDelta:  0.2,
		},
	}
}

func CreateSampleEvent(db *pgxpool.Pool) (eventID int, event *model.Event) {
	ctx := context.Background()
	event = SampleEvent()
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		var err error
		eventID, err = eventrepos.Save(ctx, tx, event)
		return err
	})
	if err != nil {
		log.Fatalf("createSampleEvent: %v\n", err)
	}

	return eventID, event
}

func CreateSampleWeights(db *pgxpool.Pool) *model.WeightsArtifact {
	ctx := context.Background()
	artifact := SampleWeightsArtifact()
	err := pgx.BeginFunc(ctx, db, func(tx pgx.Tx) error {
		return weightsrepos.Create(ctx, tx, artifact)
	})
	if err != nil {
		log.Fatalf("createSampleWeights: %v\n", err)
	}
	return artifact
}
