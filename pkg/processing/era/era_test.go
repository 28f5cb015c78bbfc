package era

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelsner/crossrank/pkg/config"
	"github.com/avelsner/crossrank/pkg/model"
)

func TestForSeason(t *testing.T) {
	cfg := config.DefaultPipeline()
	assert.False(t, ForSeason(1960, cfg).LapGranularity())
	assert.False(t, ForSeason(1994, cfg).LapGranularity())
	assert.True(t, ForSeason(1995, cfg).LapGranularity())
	assert.True(t, ForSeason(2001, cfg).LapGranularity())
}

func TestTotalTimeEraGroups(t *testing.T) {
	ev := &model.Event{
		Season:  1960,
		Circuit: "monaco",
		Results: map[string]*model.CompetitorResult{
			"a": {CompetitorKey: "a", TotalTime: 5400},
			"b": {CompetitorKey: "b", TotalTime: 5450},
			"c": {CompetitorKey: "c", TotalTime: 0}, // DNF
		},
	}
	strategy := ForSeason(1960, config.DefaultPipeline())
	groups := strategy.Groups(ev)
	require.Len(t, groups, 1)
	assert.Equal(t, 0, groups[0].Lap)
	// the DNF is excluded from the comparison group, never substituted
	assert.Equal(t, map[string]float64{"a": 5400, "b": 5450}, groups[0].Values)
}

func TestTotalTimeEraAllDNF(t *testing.T) {
	ev := &model.Event{
		Season: 1960,
		Results: map[string]*model.CompetitorResult{
			"a": {CompetitorKey: "a", TotalTime: 0},
		},
	}
	groups := ForSeason(1960, config.DefaultPipeline()).Groups(ev)
	require.Len(t, groups, 1)
	assert.Empty(t, groups[0].Values)
}

func TestTotalTimeEraIsDNF(t *testing.T) {
	strategy := ForSeason(1960, config.DefaultPipeline())
	assert.True(t, strategy.IsDNF(&model.CompetitorResult{TotalTime: 0}))
	assert.False(t, strategy.IsDNF(&model.CompetitorResult{TotalTime: 5400}))
}

func TestLapTimeEraGroups(t *testing.T) {
	ev := &model.Event{
		Season: 2001,
		Results: map[string]*model.CompetitorResult{
			"a": {CompetitorKey: "a", Laps: map[int]float64{1: 90, 2: 89.5}},
			"b": {CompetitorKey: "b", Laps: map[int]float64{1: 91, 2: 0}},
			"c": {CompetitorKey: "c", Laps: map[int]float64{3: 92}},
		},
	}
	groups := ForSeason(2001, config.DefaultPipeline()).Groups(ev)
	require.Len(t, groups, 3)
	// ascending lap order
	assert.Equal(t, 1, groups[0].Lap)
	assert.Equal(t, 2, groups[1].Lap)
	assert.Equal(t, 3, groups[2].Lap)
	assert.Equal(t, map[string]float64{"a": 90, "b": 91}, groups[0].Values)
	// the zero time on lap 2 is excluded, the lap itself remains a group
	assert.Equal(t, map[string]float64{"a": 89.5}, groups[1].Values)
	assert.Equal(t, map[string]float64{"c": 92}, groups[2].Values)
}

func TestLapTimeEraIsDNF(t *testing.T) {
	cfg := config.DefaultPipeline()
	cfg.ScheduledLaps = 3
	strategy := ForSeason(2001, cfg)

	full := &model.CompetitorResult{Laps: map[int]float64{1: 90, 2: 90, 3: 90}}
	assert.False(t, strategy.IsDNF(full))

	retired := &model.CompetitorResult{Laps: map[int]float64{1: 90, 2: 90}}
	assert.True(t, strategy.IsDNF(retired))

	noLaps := &model.CompetitorResult{}
	assert.True(t, strategy.IsDNF(noLaps))
}
