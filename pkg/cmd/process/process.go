package process

import (
	"context"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/avelsner/crossrank/log"
	"github.com/avelsner/crossrank/pkg/config"
	"github.com/avelsner/crossrank/pkg/db/postgres"
	"github.com/avelsner/crossrank/pkg/identity"
	"github.com/avelsner/crossrank/pkg/ingest"
	"github.com/avelsner/crossrank/pkg/model"
	"github.com/avelsner/crossrank/pkg/processing"
	eventrepos "github.com/avelsner/crossrank/pkg/repository/event"
	fprepos "github.com/avelsner/crossrank/pkg/repository/fingerprint"
	normalizedrepos "github.com/avelsner/crossrank/pkg/repository/normalized"
)

var pipelineCfg = config.DefaultPipeline()

func NewProcessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process <resultsDir>",
		Short: "runs the normalization pipeline over raw season results",
		Long: `Reads the raw season result files of one circuit, harmonizes and
normalizes them and stores events, normalized results and career plus
per-season fingerprints in the database.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd.Context(), args[0])
		},
	}

	cmd.Flags().StringVarP(&config.Circuit,
		"circuit",
		"c",
		"monaco",
		"circuit key of the season result files")
	cmd.Flags().StringVar(&config.IdentityFile,
		"identity-file",
		"",
		"competitor reference table (yaml), uses the built-in table when empty")
	cmd.Flags().IntVar(&pipelineCfg.EraCutoffSeason,
		"era-cutoff-season",
		pipelineCfg.EraCutoffSeason,
		"first season with per-lap timing")
	cmd.Flags().IntVar(&pipelineCfg.ScheduledLaps,
		"scheduled-laps",
		pipelineCfg.ScheduledLaps,
		"scheduled race distance in laps (per-lap era)")
	cmd.Flags().Float64Var(&pipelineCfg.OutlierSigma,
		"outlier-sigma",
		pipelineCfg.OutlierSigma,
		"standard deviation multiplier for outlier detection")
	cmd.Flags().IntVar(&pipelineCfg.ImputeMinSeasons,
		"impute-min-seasons",
		pipelineCfg.ImputeMinSeasons,
		"competitors with fewer seasons get outlier stats imputed from the cohort")

	return cmd
}

func runProcess(ctx context.Context, dir string) error {
	registry, err := buildRegistry()
	if err != nil {
		return err
	}
	raw, err := ingest.LoadSeasonDir(dir, config.Circuit)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return fmt.Errorf("no season result files for circuit %q in %s",
			config.Circuit, dir)
	}

	proc := processing.NewProcessor(
		processing.WithConfig(pipelineCfg),
		processing.WithRegistry(registry),
	)
	res := proc.ProcessSeasons(config.Circuit, raw)
	seasonFps := proc.SeasonFingerprints(res.Normalized)

	pool := postgres.InitWithURL(config.DB)
	defer postgres.CloseDB()

	if err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		for i, ev := range res.Events {
			id, err := eventrepos.Save(ctx, tx, ev)
			if err != nil {
				return err
			}
			if err := normalizedrepos.Save(ctx, tx, id, res.Normalized[i]); err != nil {
				return err
			}
		}
		careerKeys := lo.Keys(res.Fingerprints)
		sort.Strings(careerKeys)
		for _, key := range careerKeys {
			item := model.CompetitorFingerprint{
				CompetitorKey: key,
				Fingerprint:   res.Fingerprints[key],
			}
			if err := fprepos.SaveCareer(ctx, tx, item); err != nil {
				return err
			}
		}
		for _, sf := range seasonFps {
			if err := fprepos.SaveSeason(ctx, tx, sf); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	if !res.Report.Clean() {
		log.Warn("pipeline skipped or defaulted records",
			log.Any("report", res.Report))
	}
	log.Info("stored pipeline output",
		log.Int("events", len(res.Events)),
		log.Int("careerFingerprints", len(res.Fingerprints)),
		log.Int("seasonFingerprints", len(seasonFps)),
		log.Any("report", res.Report))
	return nil
}

func buildRegistry() (*identity.Registry, error) {
	if config.IdentityFile == "" {
		return identity.DefaultRegistry(), nil
	}
	entries, err := identity.LoadEntries(config.IdentityFile)
	if err != nil {
		return nil, err
	}
	return identity.NewRegistry(entries)
}
