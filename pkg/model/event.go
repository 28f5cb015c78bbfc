package model

import "fmt"

// RawResult is one competitor's entry of a raw per-event result table as
// delivered by the upstream acquisition stage. Exactly one of the two shapes
// is populated: TotalTime for the whole-race era, Laps for the per-lap era.
type RawResult struct {
	TotalTime float64         `json:"total_time,omitempty"`
	HasTotal  bool            `json:"-"`
	Laps      map[int]float64 `json:"laps,omitempty"` // lap number -> seconds
}

// RawEventRecords maps the raw (uncanonicalized) competitor name to its entry.
type RawEventRecords map[string]RawResult

// Event is one (season, circuit) race after harmonization. Events are
// immutable once built.
type Event struct {
	Season         int                          `json:"season"`
	Circuit        string                       `json:"circuit"`
	LapGranularity bool                         `json:"lapGranularity"`
	Results        map[string]*CompetitorResult `json:"results"` // canonical key
}

// Key identifies the event within a season series.
func (e *Event) Key() string {
	return fmt.Sprintf("%d_%s", e.Season, e.Circuit)
}

// CompetitorResult is one competitor's timing record within one Event.
// TotalTime carries the whole-race total in seconds with 0 meaning DNF;
// Laps carries per-lap times with absent laps meaning not completed.
type CompetitorResult struct {
	CompetitorKey string          `json:"competitorKey"`
	TotalTime     float64         `json:"totalTime,omitempty"`
	Laps          map[int]float64 `json:"laps,omitempty"`
}

// MaxLap returns the highest completed lap number (0 when none).
func (r *CompetitorResult) MaxLap() int {
	maxLap := 0
	for lap := range r.Laps {
		if lap > maxLap {
			maxLap = lap
		}
	}
	return maxLap
}
