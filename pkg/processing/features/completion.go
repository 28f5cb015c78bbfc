package features

import (
	"sort"

	"github.com/samber/lo"

	"github.com/avelsner/crossrank/log"
	"github.com/avelsner/crossrank/pkg/config"
	"github.com/avelsner/crossrank/pkg/identity"
	"github.com/avelsner/crossrank/pkg/model"
	"github.com/avelsner/crossrank/pkg/processing/era"
)

// Annotate builds the completion statistics for one competitor from its
// participated and not-finished event sets. Finished is the set difference
// participated minus dnf, never an arithmetic subtraction.
func Annotate(key string, participated, dnf []int) *model.CompletionStats {
	part := sortedUnique(participated)
	notFinished := lo.Intersect(sortedUnique(dnf), part)
	finished, _ := lo.Difference(part, notFinished)
	cs := &model.CompletionStats{
		CompetitorKey: key,
		Participated:  part,
		Finished:      finished,
		DNF:           notFinished,
	}
	if len(part) > 0 {
		cs.FinishRate = float64(len(finished)) / float64(len(part))
	}
	return cs
}

// Annotator derives completion statistics from harmonized events, bounding
// every competitor's record by its known active-career range.
type Annotator struct {
	cfg      *config.Pipeline
	registry *identity.Registry
	logger   *log.Logger
}

type AnnotatorOption func(an *Annotator)

func WithAnnotatorConfig(cfg *config.Pipeline) AnnotatorOption {
	return func(an *Annotator) { an.cfg = cfg }
}

func WithAnnotatorRegistry(reg *identity.Registry) AnnotatorOption {
	return func(an *Annotator) { an.registry = reg }
}

func NewAnnotator(opts ...AnnotatorOption) *Annotator {
	an := &Annotator{
		cfg:      config.DefaultPipeline(),
		registry: identity.DefaultRegistry(),
		logger:   log.GetLogger("processing.completion"),
	}
	for _, opt := range opts {
		opt(an)
	}
	return an
}

// FromEvents computes completion statistics per competitor. Events outside a
// competitor's career range are excluded entirely, even from the
// participated set: a stray record for a season the competitor never raced
// is identity misattribution, not data.
//nolint:whitespace // can't make both editor and linter happy
func (an *Annotator) FromEvents(events []*model.Event) (
	map[string]*model.CompletionStats, int,
) {
	participated := make(map[string][]int)
	dnf := make(map[string][]int)
	outOfCareer := 0
	for _, ev := range events {
		strategy := era.ForSeason(ev.Season, an.cfg)
		for key, res := range ev.Results {
			from, to, known := an.registry.CareerRange(key)
			if known && (ev.Season < from || ev.Season > to) {
				outOfCareer++
				an.logger.Warn("record outside active career range",
					log.String("competitor", key),
					log.Int("season", ev.Season),
					log.Int("careerFrom", from),
					log.Int("careerTo", to))
				continue
			}
			participated[key] = append(participated[key], ev.Season)
			if strategy.IsDNF(res) {
				dnf[key] = append(dnf[key], ev.Season)
			}
		}
	}
	out := make(map[string]*model.CompletionStats, len(participated))
	for key, part := range participated {
		out[key] = Annotate(key, part, dnf[key])
	}
	return out, outOfCareer
}

func sortedUnique(xs []int) []int {
	out := lo.Uniq(xs)
	sort.Ints(out)
	return out
}
