package config

// this holds the resolved configuration values from CLI
var (
	DB                 string // connection string for the database
	LogLevel           string // sets the log level (zap log level values)
	LogFormat          string // text vs json
	LogFilters         string // zapfilter rules ("debug:processing.* info:*")
	WaitForServices    string // duration to wait for other services to be ready
	MigrationSourceURL string // location of migration files
	IdentityFile       string // path to the competitor reference table (yaml)
	LabelsFile         string // path to the training labels file (json)
	Circuit            string // circuit key the raw season files belong to
)

// Pipeline holds the tunables of the normalization and feature pipeline.
// They are passed explicitly into the pipeline entry points so the core can
// be exercised with small synthetic inputs.
type Pipeline struct {
	// EraCutoffSeason separates the whole-race-total era from the
	// per-lap era: seasons before the cutoff carry one total time,
	// seasons at or after it carry individual lap times.
	EraCutoffSeason int
	// ScheduledLaps is the full race distance; in the per-lap era a
	// competitor not reaching it counts as DNF.
	ScheduledLaps int
	// OutlierSigma is the standard-deviation multiplier for outlier
	// detection in the feature aggregator.
	OutlierSigma float64
	// ImputeMinSeasons: competitors with fewer qualifying seasons get
	// their outlier statistics imputed from the cohort median.
	ImputeMinSeasons int
}

func DefaultPipeline() *Pipeline {
	return &Pipeline{
		EraCutoffSeason:  1995,
		ScheduledLaps:    53,
		OutlierSigma:     3.0,
		ImputeMinSeasons: 2,
	}
}
