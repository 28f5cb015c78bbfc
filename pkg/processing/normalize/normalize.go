package normalize

import (
	"github.com/avelsner/crossrank/pkg/model"
	"github.com/avelsner/crossrank/pkg/processing/era"
)

// Result of normalizing one event, with the group-level issue counts the
// caller folds into its batch report.
type Result struct {
	Event            *model.NormalizedEvent
	EmptyGroups      int
	DegenerateGroups int
}

// Event runs both normalization stages over every comparison group of ev.
// Groups are independent: a lap's spread never influences another lap's
// z-scores.
func Event(ev *model.Event, strategy era.Strategy) *Result {
	res := &Result{
		Event: &model.NormalizedEvent{
			Season:         ev.Season,
			Circuit:        ev.Circuit,
			LapGranularity: ev.LapGranularity,
			Results:        make(map[string]*model.NormalizedResult),
		},
	}
	for _, g := range strategy.Groups(ev) {
		deltas := RelativeDeltas(g)
		if len(deltas) == 0 {
			res.EmptyGroups++
			continue
		}
		if Degenerate(deltas) {
			res.DegenerateGroups++
		}
		zscores := ZScores(deltas)
		for key, delta := range deltas {
			nv := &model.NormalizedValue{RelativeDelta: delta, ZScore: zscores[key]}
			entry, ok := res.Event.Results[key]
			if !ok {
				entry = &model.NormalizedResult{CompetitorKey: key}
				res.Event.Results[key] = entry
			}
			if strategy.LapGranularity() {
				if entry.ByLap == nil {
					entry.ByLap = make(map[int]*model.NormalizedValue)
				}
				entry.ByLap[g.Lap] = nv
			} else {
				entry.Overall = nv
			}
		}
	}
	return res
}
