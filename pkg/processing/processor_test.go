//nolint:funlen // ok for tests
package processing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelsner/crossrank/pkg/config"
	"github.com/avelsner/crossrank/pkg/model"
)

func sampleRawSeasons() map[int]model.RawEventRecords {
	return map[int]model.RawEventRecords{
		1992: {
			"Ayrton Senna":  {TotalTime: 5400, HasTotal: true},
			"Damon Hill":    {TotalTime: 5450, HasTotal: true},
			"Nigel Mansell": {TotalTime: 5380, HasTotal: true}, // not in the table
		},
		1996: {
			"Mika Häkkinen":      {Laps: map[int]float64{1: 90, 2: 91}},
			"David Coulthard":    {Laps: map[int]float64{1: 91, 2: 92}},
			"Jacques Villeneuve": {Laps: map[int]float64{1: 95}}, // retired
		},
	}
}

func testPipelineConfig() *config.Pipeline {
	cfg := config.DefaultPipeline()
	cfg.ScheduledLaps = 2
	return cfg
}

func TestProcessSeasons(t *testing.T) {
	p := NewProcessor(WithConfig(testPipelineConfig()))
	res := p.ProcessSeasons("monaco", sampleRawSeasons())

	require.Len(t, res.Events, 2)
	// seasons are consumed in ascending order
	assert.Equal(t, 1992, res.Events[0].Season)
	assert.Equal(t, 1996, res.Events[1].Season)
	assert.False(t, res.Events[0].LapGranularity)
	assert.True(t, res.Events[1].LapGranularity)

	assert.Equal(t, 1, res.Report.UnresolvedIdentities)
	assert.Zero(t, res.Report.MalformedRecords)
	assert.Zero(t, res.Report.EmptyGroups)
	assert.Zero(t, res.Report.OutOfCareerRecords)
	// everyone here has a single season, so there is no cohort to impute from
	assert.Zero(t, res.Report.ImputedCompetitors)

	require.Len(t, res.Fingerprints, 5)
	senna := res.Fingerprints["senna"]
	require.NotNil(t, senna)
	assert.InDelta(t, -1.0, senna[model.FeatMeanZScore], 1e-12)
	assert.InDelta(t, 1.0, senna[model.FeatFinishRate], 1e-12)

	villeneuve := res.Fingerprints["villeneuve"]
	require.NotNil(t, villeneuve)
	assert.Zero(t, villeneuve[model.FeatFinishRate])

	hill := res.Completion["hill"]
	require.NotNil(t, hill)
	assert.Equal(t, []int{1992}, hill.Participated)
	assert.Equal(t, []int{1992}, hill.Finished)
}

func TestProcessSeasonsCareerBounds(t *testing.T) {
	raw := sampleRawSeasons()
	raw[2005] = model.RawEventRecords{
		"Ayrton Senna":    {Laps: map[int]float64{1: 120, 2: 121}}, // career ended 1994
		"Fernando Alonso": {Laps: map[int]float64{1: 89, 2: 90}},
	}
	p := NewProcessor(WithConfig(testPipelineConfig()))
	res := p.ProcessSeasons("monaco", raw)

	assert.Equal(t, 1, res.Report.OutOfCareerRecords)

	// the stray record never reaches the 2005 event
	require.Len(t, res.Events, 3)
	require.Equal(t, 2005, res.Events[2].Season)
	assert.NotContains(t, res.Events[2].Results, "senna")

	// the fingerprint covers only the in-career 1992 observation
	senna := res.Fingerprints["senna"]
	require.NotNil(t, senna)
	assert.InDelta(t, -1.0, senna[model.FeatMeanZScore], 1e-12)

	completion := res.Completion["senna"]
	require.NotNil(t, completion)
	assert.Equal(t, []int{1992}, completion.Participated)

	// no stray training row either
	for _, sf := range p.SeasonFingerprints(res.Normalized) {
		if sf.CompetitorKey == "senna" {
			assert.Equal(t, 1992, sf.Season)
		}
	}
}

func TestSeasonFingerprints(t *testing.T) {
	p := NewProcessor(WithConfig(testPipelineConfig()))
	res := p.ProcessSeasons("monaco", sampleRawSeasons())

	seasonFps := p.SeasonFingerprints(res.Normalized)
	// 1992: senna and hill; 1996: hakkinen and coulthard reached the full
	// distance, villeneuve's single lap is below the observation minimum
	require.Len(t, seasonFps, 4)

	keys := make([]string, 0, len(seasonFps))
	byKey := make(map[string]model.SeasonFingerprint, len(seasonFps))
	for _, sf := range seasonFps {
		keys = append(keys, sf.CompetitorKey)
		byKey[sf.CompetitorKey] = sf
	}
	assert.ElementsMatch(t, []string{"senna", "hill", "hakkinen", "coulthard"}, keys)
	assert.Equal(t, 1992, byKey["senna"].Season)
	assert.Equal(t, 1996, byKey["hakkinen"].Season)
	assert.True(t, byKey["hakkinen"].Fingerprint.Has(
		model.FeatMeanZScore, model.FeatZScoreDecayRate, model.FeatOutlierRatio))
}
