// Package harmonize turns raw per-event result tables of either era into the
// single internal Event representation.
package harmonize

import (
	"errors"
	"fmt"

	"github.com/avelsner/crossrank/log"
	"github.com/avelsner/crossrank/pkg/config"
	"github.com/avelsner/crossrank/pkg/identity"
	"github.com/avelsner/crossrank/pkg/model"
	"github.com/avelsner/crossrank/pkg/processing/era"
)

// ErrMalformedRecord marks a raw record whose shape doesn't fit its era.
var ErrMalformedRecord = errors.New("malformed record")

type Harmonizer struct {
	cfg      *config.Pipeline
	registry *identity.Registry
	logger   *log.Logger
}

type Option func(h *Harmonizer)

func WithConfig(cfg *config.Pipeline) Option {
	return func(h *Harmonizer) { h.cfg = cfg }
}

func WithRegistry(reg *identity.Registry) Option {
	return func(h *Harmonizer) { h.registry = reg }
}

func NewHarmonizer(opts ...Option) *Harmonizer {
	h := &Harmonizer{
		cfg:      config.DefaultPipeline(),
		registry: identity.DefaultRegistry(),
		logger:   log.GetLogger("processing.harmonize"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Result carries the harmonized event plus the per-record skip counts.
type Result struct {
	Event                *model.Event
	MalformedRecords     int
	UnresolvedIdentities int
	OutOfCareerRecords   int
}

// Event builds one immutable Event from a raw result table. The era is fixed
// here, once, by the season cutoff. Records that cannot be attributed to a
// known competitor, whose shape does not fit the era, or whose season falls
// outside the competitor's active career range are dropped with a warning.
// Career bounding happens here so that no later stage ever sees the record.
func (h *Harmonizer) Event(season int, circuit string, raw model.RawEventRecords) *Result {
	strategy := era.ForSeason(season, h.cfg)
	res := &Result{
		Event: &model.Event{
			Season:         season,
			Circuit:        circuit,
			LapGranularity: strategy.LapGranularity(),
			Results:        make(map[string]*model.CompetitorResult),
		},
	}
	for rawName, record := range raw {
		key, err := h.registry.Resolve(rawName)
		if err != nil {
			res.UnresolvedIdentities++
			h.logger.Warn("dropping unresolvable competitor",
				log.String("name", rawName),
				log.Int("season", season),
				log.ErrorField(err))
			continue
		}
		if from, to, known := h.registry.CareerRange(key); known &&
			(season < from || season > to) {
			res.OutOfCareerRecords++
			h.logger.Warn("dropping record outside active career range",
				log.String("competitor", key),
				log.Int("season", season),
				log.Int("careerFrom", from),
				log.Int("careerTo", to))
			continue
		}
		cr, err := h.harmonizeRecord(key, record, strategy.LapGranularity())
		if err != nil {
			res.MalformedRecords++
			h.logger.Warn("dropping malformed record",
				log.String("competitor", key),
				log.Int("season", season),
				log.ErrorField(err))
			continue
		}
		res.Event.Results[key] = cr
	}
	return res
}

//nolint:whitespace // can't make both editor and linter happy
func (h *Harmonizer) harmonizeRecord(
	key string,
	record model.RawResult,
	lapGranularity bool,
) (*model.CompetitorResult, error) {
	if lapGranularity {
		if record.HasTotal || record.Laps == nil {
			return nil, fmt.Errorf("%w: expected per-lap times", ErrMalformedRecord)
		}
		laps := make(map[int]float64, len(record.Laps))
		for lap, t := range record.Laps {
			if lap <= 0 || t < 0 {
				return nil, fmt.Errorf("%w: lap %d time %g", ErrMalformedRecord, lap, t)
			}
			laps[lap] = t
		}
		return &model.CompetitorResult{CompetitorKey: key, Laps: laps}, nil
	}
	if !record.HasTotal || record.TotalTime < 0 || len(record.Laps) > 0 {
		return nil, fmt.Errorf("%w: expected a race total", ErrMalformedRecord)
	}
	return &model.CompetitorResult{CompetitorKey: key, TotalTime: record.TotalTime}, nil
}
