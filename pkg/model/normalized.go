package model

// NormalizedValue carries the two derived performance units for one
// observation. RelativeDelta is the fractional gap to the best time of the
// comparison group (>= 0); ZScore is that delta standardized within the group.
type NormalizedValue struct {
	RelativeDelta float64 `json:"relative_delta"`
	ZScore        float64 `json:"z_score"`
}

// NormalizedResult holds one competitor's normalized values within one event.
// Overall is set in the whole-race era, ByLap in the per-lap era.
type NormalizedResult struct {
	CompetitorKey string                   `json:"competitorKey"`
	Overall       *NormalizedValue         `json:"overall,omitempty"`
	ByLap         map[int]*NormalizedValue `json:"byLap,omitempty"`
}

// NormalizedEvent is the per-event output of the delta + z-score stages.
type NormalizedEvent struct {
	Season         int                          `json:"season"`
	Circuit        string                       `json:"circuit"`
	LapGranularity bool                         `json:"lapGranularity"`
	Results        map[string]*NormalizedResult `json:"results"`
}
