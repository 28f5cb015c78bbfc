package processing

import (
	"sort"

	"github.com/avelsner/crossrank/log"
	"github.com/avelsner/crossrank/pkg/config"
	"github.com/avelsner/crossrank/pkg/identity"
	"github.com/avelsner/crossrank/pkg/model"
	"github.com/avelsner/crossrank/pkg/processing/era"
	"github.com/avelsner/crossrank/pkg/processing/features"
	"github.com/avelsner/crossrank/pkg/processing/harmonize"
	"github.com/avelsner/crossrank/pkg/processing/normalize"
)

// Processor runs the batch pipeline
// harmonize -> delta -> z-score -> aggregate (+completion)
// over raw season tables. Each stage fully consumes its input before the
// next starts.
type Processor struct {
	cfg        *config.Pipeline
	registry   *identity.Registry
	harmonizer *harmonize.Harmonizer
	aggregator *features.Aggregator
	annotator  *features.Annotator
	logger     *log.Logger
}

type Option func(p *Processor)

func WithConfig(cfg *config.Pipeline) Option {
	return func(p *Processor) { p.cfg = cfg }
}

func WithRegistry(reg *identity.Registry) Option {
	return func(p *Processor) { p.registry = reg }
}

func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		cfg:      config.DefaultPipeline(),
		registry: identity.DefaultRegistry(),
		logger:   log.GetLogger("processing"),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.harmonizer = harmonize.NewHarmonizer(
		harmonize.WithConfig(p.cfg),
		harmonize.WithRegistry(p.registry),
	)
	p.aggregator = features.NewAggregator(features.WithConfig(p.cfg))
	p.annotator = features.NewAnnotator(
		features.WithAnnotatorConfig(p.cfg),
		features.WithAnnotatorRegistry(p.registry),
	)
	return p
}

// PipelineResult is the full output of one batch run.
type PipelineResult struct {
	Events       []*model.Event
	Normalized   []*model.NormalizedEvent
	Fingerprints map[string]model.Fingerprint
	Completion   map[string]*model.CompletionStats
	Report       Report
}

// ProcessSeasons runs the whole pipeline over raw season tables keyed by
// season year for one circuit. Career fingerprints cover each competitor's
// complete history across all given seasons.
func (p *Processor) ProcessSeasons(circuit string, raw map[int]model.RawEventRecords) *PipelineResult {
	res := &PipelineResult{
		Fingerprints: make(map[string]model.Fingerprint),
	}

	for _, season := range sortedSeasons(raw) {
		hr := p.harmonizer.Event(season, circuit, raw[season])
		res.Events = append(res.Events, hr.Event)

		nr := normalize.Event(hr.Event, era.ForSeason(season, p.cfg))
		res.Normalized = append(res.Normalized, nr.Event)

		res.Report.Merge(Report{
			MalformedRecords:     hr.MalformedRecords,
			UnresolvedIdentities: hr.UnresolvedIdentities,
			OutOfCareerRecords:   hr.OutOfCareerRecords,
			EmptyGroups:          nr.EmptyGroups,
			DegenerateGroups:     nr.DegenerateGroups,
		})
	}

	// events are already career-bounded by the harmonizer; the annotator's
	// own bound only matters when it is fed events from elsewhere
	var outOfCareer int
	res.Completion, outOfCareer = p.annotator.FromEvents(res.Events)
	res.Report.OutOfCareerRecords += outOfCareer

	histories := p.aggregator.Histories(res.Normalized)
	for key, h := range histories {
		res.Fingerprints[key] = p.aggregator.Fingerprint(h)
	}
	res.Report.ImputedCompetitors = p.aggregator.CohortImpute(res.Fingerprints, histories)

	for key, cs := range res.Completion {
		if fp, ok := res.Fingerprints[key]; ok {
			fp[model.FeatFinishRate] = cs.FinishRate
		}
	}

	p.logger.Info("pipeline run complete",
		log.Int("events", len(res.Events)),
		log.Int("competitors", len(res.Fingerprints)),
		log.Any("report", res.Report))
	return res
}

// SeasonFingerprints computes one single-season fingerprint per competitor
// for every season, keeping only competitors whose season has at least
// minObservations normalized values (in the per-lap era: the scheduled race
// distance). These rows feed the training stage.
func (p *Processor) SeasonFingerprints(normalized []*model.NormalizedEvent) []model.SeasonFingerprint {
	out := make([]model.SeasonFingerprint, 0)
	for _, ev := range normalized {
		histories := p.aggregator.Histories([]*model.NormalizedEvent{ev})
		minObs := 1
		if ev.LapGranularity {
			minObs = p.cfg.ScheduledLaps
		}
		for _, key := range sortedHistoryKeys(histories) {
			h := histories[key]
			if len(h.ZScores) < minObs {
				continue
			}
			out = append(out, model.SeasonFingerprint{
				CompetitorKey: key,
				Season:        ev.Season,
				Fingerprint:   p.aggregator.Fingerprint(h),
			})
		}
	}
	return out
}

func sortedSeasons(raw map[int]model.RawEventRecords) []int {
	seasons := make([]int, 0, len(raw))
	for season := range raw {
		seasons = append(seasons, season)
	}
	sort.Ints(seasons)
	return seasons
}

func sortedHistoryKeys(m map[string]*features.History) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
