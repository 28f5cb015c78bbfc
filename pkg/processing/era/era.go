// Package era fixes the era-dependent behavior of the pipeline in one
// strategy selected once per event: how comparison groups are formed and
// what counts as a DNF.
package era

import (
	"sort"

	"github.com/avelsner/crossrank/pkg/config"
	"github.com/avelsner/crossrank/pkg/model"
)

// Group is one comparison group: the values that are normalized and
// standardized together. Lap is 0 for a whole-race group.
type Group struct {
	Lap    int
	Values map[string]float64 // competitor key -> time in seconds
}

// Strategy is the per-era behavior of the normalizer and the completion
// annotator.
type Strategy interface {
	// LapGranularity reports whether records carry per-lap times.
	LapGranularity() bool
	// Groups extracts the comparison groups of an event. Competitors
	// with zero or missing values are excluded, never substituted.
	Groups(ev *model.Event) []Group
	// IsDNF reports whether the result counts as not finished.
	IsDNF(res *model.CompetitorResult) bool
}

// ForSeason picks the strategy for a season: whole-race totals before the
// cutoff, per-lap times at or after it.
func ForSeason(season int, cfg *config.Pipeline) Strategy {
	if season < cfg.EraCutoffSeason {
		return &totalTimeEra{}
	}
	return &lapTimeEra{scheduledLaps: cfg.ScheduledLaps}
}

type totalTimeEra struct{}

func (e *totalTimeEra) LapGranularity() bool { return false }

// Groups returns one group: all finishers of the race.
func (e *totalTimeEra) Groups(ev *model.Event) []Group {
	values := make(map[string]float64)
	for key, res := range ev.Results {
		if res.TotalTime > 0 {
			values[key] = res.TotalTime
		}
	}
	return []Group{{Lap: 0, Values: values}}
}

func (e *totalTimeEra) IsDNF(res *model.CompetitorResult) bool {
	return res.TotalTime == 0
}

type lapTimeEra struct {
	scheduledLaps int
}

func (e *lapTimeEra) LapGranularity() bool { return true }

// Groups returns one group per lap number recorded by anyone in the event,
// in ascending lap order. Each lap is normalized independently.
func (e *lapTimeEra) Groups(ev *model.Event) []Group {
	byLap := make(map[int]map[string]float64)
	for key, res := range ev.Results {
		for lap, t := range res.Laps {
			if byLap[lap] == nil {
				byLap[lap] = make(map[string]float64)
			}
			// a lap someone recorded is a group even if no time in it
			// is usable; non-positive times are excluded, not defaulted
			if t > 0 {
				byLap[lap][key] = t
			}
		}
	}
	laps := make([]int, 0, len(byLap))
	for lap := range byLap {
		laps = append(laps, lap)
	}
	sort.Ints(laps)
	groups := make([]Group, 0, len(laps))
	for _, lap := range laps {
		groups = append(groups, Group{Lap: lap, Values: byLap[lap]})
	}
	return groups
}

func (e *lapTimeEra) IsDNF(res *model.CompetitorResult) bool {
	return res.MaxLap() < e.scheduledLaps
}
