package training

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"gonum.org/v1/gonum/mat"

	"github.com/avelsner/crossrank/log"
	"github.com/avelsner/crossrank/pkg/model"
	"github.com/avelsner/crossrank/pkg/processing/stats"
)

// TrainConfig bundles everything the offline training run needs besides the
// data itself.
type TrainConfig struct {
	FeatureOrder []string
	TestFraction float64
	Seed         int64
	Grid         *GridSearch
}

func DefaultTrainConfig() *TrainConfig {
	return &TrainConfig{
		FeatureOrder: model.FeatureOrder,
		TestFraction: 0.2,
		Seed:         42,
		Grid:         DefaultGridSearch(),
	}
}

// BuildDesign joins season fingerprints with their outcome labels into a
// design matrix over the declared feature ordering. Rows lacking a label or
// any feature of the ordering are skipped and counted, not zero-filled.
//nolint:whitespace // can't make both editor and linter happy
func BuildDesign(
	fingerprints []model.SeasonFingerprint,
	labels []model.OutcomeLabel,
	featureOrder []string,
) (x *mat.Dense, y []float64, skipped int, err error) {
	labelFor := make(map[string]float64, len(labels))
	for _, l := range labels {
		labelFor[labelKey(l.CompetitorKey, l.Season)] = l.Value
	}

	rows := make([][]float64, 0, len(fingerprints))
	y = make([]float64, 0, len(fingerprints))
	for _, sf := range fingerprints {
		label, ok := labelFor[labelKey(sf.CompetitorKey, sf.Season)]
		if !ok || !sf.Fingerprint.Has(featureOrder...) {
			skipped++
			continue
		}
		row := make([]float64, len(featureOrder))
		for j, name := range featureOrder {
			row[j] = sf.Fingerprint[name]
		}
		rows = append(rows, row)
		y = append(y, label)
	}
	if len(rows) == 0 {
		return nil, nil, skipped, fmt.Errorf("no usable training rows (%d skipped)", skipped)
	}
	x = mat.NewDense(len(rows), len(featureOrder), nil)
	for i, row := range rows {
		x.SetRow(i, row)
	}
	return x, y, skipped, nil
}

// Train runs the full offline path: standardize features, hold out a
// validation split, grid-search hyperparameters by cross-validation on the
// training part, refit the best model, and emit the weights artifact.
//nolint:whitespace // can't make both editor and linter happy
func Train(
	ctx context.Context,
	fingerprints []model.SeasonFingerprint,
	labels []model.OutcomeLabel,
	cfg *TrainConfig,
) (*model.WeightsArtifact, error) {
	logger := log.GetLogger("training")

	x, y, skipped, err := BuildDesign(fingerprints, labels, cfg.FeatureOrder)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		logger.Warn("skipped incomplete training rows", log.Int("skipped", skipped))
	}

	scaled, err := FitScaler(x).Transform(x)
	if err != nil {
		return nil, err
	}
	n, _ := scaled.Dims()
	trainIdx, testIdx, err := TrainTestSplit(n, cfg.TestFraction, cfg.Seed)
	if err != nil {
		return nil, err
	}
	xTrain, yTrain := subset(scaled, y, trainIdx)
	xTest, yTest := subset(scaled, y, testIdx)

	best, grid, err := cfg.Grid.Run(ctx, xTrain, yTrain)
	if err != nil {
		return nil, err
	}
	logger.Info("grid search finished",
		log.Float64("alpha", best.Alpha),
		log.Float64("l1Ratio", best.L1Ratio),
		log.Float64("cvR2", grid[0].MeanR2),
		log.Int("combinations", len(grid)))

	net := NewElasticNet(best.Alpha, best.L1Ratio)
	if err := net.Fit(xTrain, yTrain); err != nil {
		return nil, err
	}

	weights := make(model.RankingWeights, len(cfg.FeatureOrder))
	for j, name := range cfg.FeatureOrder {
		weights[name] = net.Coef()[j]
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	artifact := &model.WeightsArtifact{
		ID:        id,
		CreatedAt: time.Now().UTC(),
		Alpha:     best.Alpha,
		L1Ratio:   best.L1Ratio,
		TrainR2:   stats.RSquared(net.Predict(xTrain), yTrain),
		TestR2:    stats.RSquared(net.Predict(xTest), yTest),
		Weights:   weights,
	}
	logger.Info("trained ranking weights",
		log.String("id", artifact.ID.String()),
		log.Float64("trainR2", artifact.TrainR2),
		log.Float64("testR2", artifact.TestR2))
	return artifact, nil
}

func labelKey(competitor string, season int) string {
	return fmt.Sprintf("%s/%d", competitor, season)
}
