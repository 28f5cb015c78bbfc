package model

// CompletionStats describes a competitor's participation record over the
// historical window. Finished is always exactly Participated minus DNF as a
// set; FinishRate is |Finished|/|Participated| with 0 for an empty record.
type CompletionStats struct {
	CompetitorKey string  `json:"competitorKey"`
	Participated  []int   `json:"participated"`
	Finished      []int   `json:"finished"`
	DNF           []int   `json:"dnf"`
	FinishRate    float64 `json:"finishRate"`
}
