package processing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportMerge(t *testing.T) {
	var r Report
	r.Merge(Report{MalformedRecords: 1, EmptyGroups: 2})
	r.Merge(Report{MalformedRecords: 1, OutOfCareerRecords: 3})

	assert.Equal(t, Report{
		MalformedRecords:   2,
		EmptyGroups:        2,
		OutOfCareerRecords: 3,
	}, r)
}

func TestReportClean(t *testing.T) {
	var r Report
	assert.True(t, r.Clean())

	r.Merge(Report{DegenerateGroups: 1})
	assert.False(t, r.Clean())
}
