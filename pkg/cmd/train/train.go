package train

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avelsner/crossrank/log"
	"github.com/avelsner/crossrank/pkg/config"
	"github.com/avelsner/crossrank/pkg/db/postgres"
	"github.com/avelsner/crossrank/pkg/ingest"
	fprepos "github.com/avelsner/crossrank/pkg/repository/fingerprint"
	weightsrepos "github.com/avelsner/crossrank/pkg/repository/weights"
	"github.com/avelsner/crossrank/pkg/training"
)

var (
	testFraction float64
	seed         int64
)

func NewTrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "trains ranking weights from stored season fingerprints",
		Long: `Joins the stored per-season fingerprints with external outcome
labels, grid-searches the elastic net hyperparameters by cross-validation
and stores the resulting weights artifact.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrain(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&config.LabelsFile,
		"labels",
		"l",
		"",
		"path to the outcome labels file (json)")
	//nolint:errcheck // flag is declared above
	cmd.MarkFlagRequired("labels")
	cmd.Flags().Float64Var(&testFraction,
		"test-fraction",
		0.2,
		"fraction of rows held out for validation")
	cmd.Flags().Int64Var(&seed,
		"seed",
		42,
		"seed for the train/test split and fold assignment")

	return cmd
}

func runTrain(ctx context.Context) error {
	labels, err := ingest.LoadLabels(config.LabelsFile)
	if err != nil {
		return err
	}

	pool := postgres.InitWithURL(config.DB)
	defer postgres.CloseDB()

	fingerprints, err := fprepos.LoadSeasons(ctx, pool)
	if err != nil {
		return err
	}
	if len(fingerprints) == 0 {
		return fmt.Errorf("no season fingerprints stored, run process first")
	}

	cfg := training.DefaultTrainConfig()
	cfg.TestFraction = testFraction
	cfg.Seed = seed
	artifact, err := training.Train(ctx, fingerprints, labels, cfg)
	if err != nil {
		return err
	}

	if err := weightsrepos.Create(ctx, pool, artifact); err != nil {
		return err
	}
	log.Info("stored weights artifact", log.String("id", artifact.ID.String()))
	return nil
}
