// Package features reduces a competitor's normalized history to the fixed
// statistical fingerprint and annotates it with the completion rate.
package features

import (
	"sort"

	"github.com/samber/lo"

	"github.com/avelsner/crossrank/log"
	"github.com/avelsner/crossrank/pkg/config"
	"github.com/avelsner/crossrank/pkg/model"
	"github.com/avelsner/crossrank/pkg/processing/stats"
)

// History is one competitor's normalized observations in time order
// (season ascending, lap ascending within a season).
type History struct {
	CompetitorKey string
	ZScores       []float64
	Deltas        []float64
	Seasons       []int // distinct seasons contributing, ascending
}

type Aggregator struct {
	sigma     float64
	imputeMin int
	logger    *log.Logger
}

type AggregatorOption func(a *Aggregator)

func WithConfig(cfg *config.Pipeline) AggregatorOption {
	return func(a *Aggregator) {
		a.sigma = cfg.OutlierSigma
		a.imputeMin = cfg.ImputeMinSeasons
	}
}

func NewAggregator(opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		sigma:     3.0,
		imputeMin: 2,
		logger:    log.GetLogger("processing.features"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Histories collects per-competitor observation sequences from normalized
// events. Events are consumed in season order regardless of input order.
func (a *Aggregator) Histories(events []*model.NormalizedEvent) map[string]*History {
	ordered := make([]*model.NormalizedEvent, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Season < ordered[j].Season
	})

	histories := make(map[string]*History)
	for _, ev := range ordered {
		for _, key := range sortedKeys(ev.Results) {
			res := ev.Results[key]
			h, ok := histories[key]
			if !ok {
				h = &History{CompetitorKey: key}
				histories[key] = h
			}
			if !lo.Contains(h.Seasons, ev.Season) {
				h.Seasons = append(h.Seasons, ev.Season)
			}
			if ev.LapGranularity {
				for _, lap := range sortedLaps(res.ByLap) {
					nv := res.ByLap[lap]
					h.ZScores = append(h.ZScores, nv.ZScore)
					h.Deltas = append(h.Deltas, nv.RelativeDelta)
				}
			} else if res.Overall != nil {
				h.ZScores = append(h.ZScores, res.Overall.ZScore)
				h.Deltas = append(h.Deltas, res.Overall.RelativeDelta)
			}
		}
	}
	return histories
}

// Fingerprint computes the statistical summary of one history. Statistics
// whose minimum observation count is not met are omitted, not zero-filled.
func (a *Aggregator) Fingerprint(h *History) model.Fingerprint {
	fp := make(model.Fingerprint)
	describe(fp, h.ZScores,
		model.FeatMeanZScore, model.FeatVarZScore, model.FeatBestZScore,
		model.FeatWorstZScore, model.FeatZScoreRange, model.FeatMedianZScore,
		model.FeatZScoreDecayRate)
	describe(fp, h.Deltas,
		model.FeatMeanDelta, model.FeatVarDelta, model.FeatBestDelta,
		model.FeatWorstDelta, model.FeatDeltaRange, model.FeatMedianDelta,
		model.FeatDeltaDecayRate)
	a.outlierStats(fp, h.ZScores)
	return fp
}

//nolint:whitespace // can't make both editor and linter happy
func describe(
	fp model.Fingerprint, seq []float64,
	meanKey, varKey, bestKey, worstKey, rangeKey, medianKey, decayKey string,
) {
	if len(seq) == 0 {
		return
	}
	fp[meanKey] = stats.Mean(seq)
	fp[varKey] = stats.PopVariance(seq)
	fp[bestKey] = stats.Min(seq)
	fp[worstKey] = stats.Max(seq)
	fp[rangeKey] = fp[worstKey] - fp[bestKey]
	fp[medianKey] = stats.Median(seq)
	if len(seq) > 1 {
		fp[decayKey] = stats.OLSSlope(seq)
	}
}

// outlierStats flags observations deviating more than sigma standard
// deviations from the sequence's own mean.
func (a *Aggregator) outlierStats(fp model.Fingerprint, zscores []float64) {
	if len(zscores) == 0 {
		return
	}
	mean := stats.Mean(zscores)
	std := stats.PopStdDev(zscores)
	count := lo.CountBy(zscores, func(z float64) bool {
		dev := z - mean
		if dev < 0 {
			dev = -dev
		}
		return dev > a.sigma*std
	})
	fp[model.FeatOutlierCount] = float64(count)
	fp[model.FeatOutlierRatio] = float64(count) / float64(len(zscores))
}

// CohortImpute replaces the outlier statistics of competitors whose
// qualifying history is shorter than the configured minimum of seasons with
// the cohort median of everyone else. Returns how many fingerprints were
// patched. This is a data-quality patch for competitors that predate the
// per-lap era, not a general smoothing rule.
//nolint:whitespace // can't make both editor and linter happy
func (a *Aggregator) CohortImpute(
	fingerprints map[string]model.Fingerprint,
	histories map[string]*History,
) int {
	short := make([]string, 0)
	counts := make([]float64, 0, len(fingerprints))
	ratios := make([]float64, 0, len(fingerprints))
	for _, key := range sortedKeys(fingerprints) {
		fp := fingerprints[key]
		h := histories[key]
		if h != nil && len(h.Seasons) < a.imputeMin {
			short = append(short, key)
			continue
		}
		if fp.Has(model.FeatOutlierCount, model.FeatOutlierRatio) {
			counts = append(counts, fp[model.FeatOutlierCount])
			ratios = append(ratios, fp[model.FeatOutlierRatio])
		}
	}
	if len(short) == 0 || len(counts) == 0 {
		return 0
	}
	medianCount := stats.Median(counts)
	medianRatio := stats.Median(ratios)
	for _, key := range short {
		fingerprints[key][model.FeatOutlierCount] = medianCount
		fingerprints[key][model.FeatOutlierRatio] = medianRatio
		a.logger.Info("imputed outlier statistics from cohort median",
			log.String("competitor", key),
			log.Int("seasons", len(histories[key].Seasons)),
			log.Float64("outlierCount", medianCount),
			log.Float64("outlierRatio", medianRatio))
	}
	return len(short)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}

func sortedLaps(m map[int]*model.NormalizedValue) []int {
	laps := lo.Keys(m)
	sort.Ints(laps)
	return laps
}
