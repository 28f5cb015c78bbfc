// Package processing wires the pipeline stages together: harmonization,
// normalization, feature aggregation and completion annotation. Failures are
// per record, not per run; the batch always completes and reports what it
// skipped.
package processing

// Report counts the records and groups the pipeline skipped or defaulted.
// Surfaced to the caller for observability; the batch never aborts on them.
type Report struct {
	MalformedRecords     int `json:"malformedRecords"`
	UnresolvedIdentities int `json:"unresolvedIdentities"`
	EmptyGroups          int `json:"emptyGroups"`
	DegenerateGroups     int `json:"degenerateGroups"`
	OutOfCareerRecords   int `json:"outOfCareerRecords"`
	ImputedCompetitors   int `json:"imputedCompetitors"`
}

func (r *Report) Merge(other Report) {
	r.MalformedRecords += other.MalformedRecords
	r.UnresolvedIdentities += other.UnresolvedIdentities
	r.EmptyGroups += other.EmptyGroups
	r.DegenerateGroups += other.DegenerateGroups
	r.OutOfCareerRecords += other.OutOfCareerRecords
	r.ImputedCompetitors += other.ImputedCompetitors
}

// Clean reports whether nothing was skipped or defaulted.
func (r *Report) Clean() bool {
	return *r == Report{}
}
