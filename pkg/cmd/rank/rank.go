package rank

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gofrs/uuid/v5"
	"github.com/spf13/cobra"

	"github.com/avelsner/crossrank/log"
	"github.com/avelsner/crossrank/pkg/config"
	"github.com/avelsner/crossrank/pkg/db/postgres"
	"github.com/avelsner/crossrank/pkg/model"
	fprepos "github.com/avelsner/crossrank/pkg/repository/fingerprint"
	rankingrepos "github.com/avelsner/crossrank/pkg/repository/ranking"
	weightsrepos "github.com/avelsner/crossrank/pkg/repository/weights"
	"github.com/avelsner/crossrank/pkg/scoring"
)

var weightsID string

func NewRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "computes and prints the cross-era ranking",
		Long: `Scores the stored career fingerprints with a trained weights
artifact (the latest one unless --weights-id is given), stores the ranking
and prints it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&weightsID,
		"weights-id",
		"",
		"id of the weights artifact to use (default: latest)")

	return cmd
}

func runRank(ctx context.Context) error {
	pool := postgres.InitWithURL(config.DB)
	defer postgres.CloseDB()

	artifact, err := loadArtifact(ctx)
	if err != nil {
		return err
	}
	fingerprints, err := fprepos.LoadCareer(ctx, pool)
	if err != nil {
		return err
	}
	if len(fingerprints) == 0 {
		return fmt.Errorf("no career fingerprints stored, run process first")
	}

	entries := scoring.Rank(fingerprints, artifact.Weights)
	if err := rankingrepos.Save(ctx, pool, artifact.ID, entries); err != nil {
		return err
	}
	log.Info("stored ranking",
		log.String("weightsId", artifact.ID.String()),
		log.Int("entries", len(entries)))

	printReport(artifact, entries)
	return nil
}

func loadArtifact(ctx context.Context) (*model.WeightsArtifact, error) {
	if weightsID == "" {
		return weightsrepos.LoadLatest(ctx, postgres.DbPool)
	}
	id, err := uuid.FromString(weightsID)
	if err != nil {
		return nil, fmt.Errorf("invalid weights id %q: %w", weightsID, err)
	}
	return weightsrepos.LoadByID(ctx, postgres.DbPool, id)
}

func printReport(artifact *model.WeightsArtifact, entries []model.RankingEntry) {
	fmt.Printf("Ranking (weights %s, alpha=%g l1=%g, test R2=%.4f)\n",
		artifact.ID, artifact.Alpha, artifact.L1Ratio, artifact.TestR2)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POS\tCOMPETITOR\tSCORE")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%.6f\n", e.Pos, e.CompetitorKey, e.Score)
	}
	//nolint:errcheck // stdout
	w.Flush()
}
