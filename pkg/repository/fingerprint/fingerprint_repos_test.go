//nolint:dupl,funlen,errcheck //ok for this test code
package fingerprint

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/avelsner/crossrank/pkg/model"
	"github.com/avelsner/crossrank/testsupport/testdb"
)

func sampleCareer() model.CompetitorFingerprint {
	return model.CompetitorFingerprint{
		CompetitorKey: "senna",
		Fingerprint: model.Fingerprint{
			model.FeatMeanZScore: -1.2,
			model.FeatMeanDelta:  0.01,
			model.FeatFinishRate: 0.8,
		},
	}
}

func sampleSeason() model.SeasonFingerprint {
	return model.SeasonFingerprint{
		CompetitorKey: "senna",
		Season:        1990,
		Fingerprint: model.Fingerprint{
			model.FeatMeanZScore: -1.4,
			model.FeatMeanDelta:  0.008,
		},
	}
}

func TestSaveCareerUpsert(t *testing.T) {
	pool := testdb.InitTestDb()
	ctx := context.Background()

	item := sampleCareer()
	if err := SaveCareer(ctx, pool, item); err != nil {
		t.Fatalf("SaveCareer() error = %v", err)
	}

	item.Fingerprint[model.FeatMeanZScore] = -1.3
	if err := SaveCareer(ctx, pool, item); err != nil {
		t.Fatalf("SaveCareer() upsert error = %v", err)
	}

	got, err := LoadCareer(ctx, pool)
	if err != nil {
		t.Fatalf("LoadCareer() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("LoadCareer() returned %d entries, want 1", len(got))
	}
	if diff := cmp.Diff(item, got[0]); diff != "" {
		t.Errorf("LoadCareer() mismatch (-want +got):\n%s", diff)
	}
}

func TestSeasonAndCareerRowsAreSeparate(t *testing.T) {
	pool := testdb.InitTestDb()
	ctx := context.Background()

	if err := SaveCareer(ctx, pool, sampleCareer()); err != nil {
		t.Fatalf("SaveCareer() error = %v", err)
	}
	if err := SaveSeason(ctx, pool, sampleSeason()); err != nil {
		t.Fatalf("SaveSeason() error = %v", err)
	}
	other := sampleSeason()
	other.Season = 1991
	if err := SaveSeason(ctx, pool, other); err != nil {
		t.Fatalf("SaveSeason() error = %v", err)
	}

	career, err := LoadCareer(ctx, pool)
	if err != nil || len(career) != 1 {
		t.Errorf("LoadCareer() = %d entries, %v, want 1", len(career), err)
	}

	seasons, err := LoadSeasons(ctx, pool)
	if err != nil {
		t.Fatalf("LoadSeasons() error = %v", err)
	}
	if len(seasons) != 2 {
		t.Fatalf("LoadSeasons() returned %d entries, want 2", len(seasons))
	}
	// ascending season order
	if seasons[0].Season != 1990 || seasons[1].Season != 1991 {
		t.Errorf("LoadSeasons() order = %d,%d", seasons[0].Season, seasons[1].Season)
	}
	if diff := cmp.Diff(sampleSeason(), seasons[0]); diff != "" {
		t.Errorf("LoadSeasons() mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteByCompetitor(t *testing.T) {
	pool := testdb.InitTestDb()
	ctx := context.Background()

	if err := SaveCareer(ctx, pool, sampleCareer()); err != nil {
		t.Fatalf("SaveCareer() error = %v", err)
	}
	if err := SaveSeason(ctx, pool, sampleSeason()); err != nil {
		t.Fatalf("SaveSeason() error = %v", err)
	}

	got, err := DeleteByCompetitor(ctx, pool, "senna")
	if err != nil {
		t.Fatalf("DeleteByCompetitor() error = %v", err)
	}
	if got != 2 {
		t.Errorf("DeleteByCompetitor() = %d, want 2", got)
	}
	if got, err = DeleteByCompetitor(ctx, pool, "senna"); err != nil || got != 0 {
		t.Errorf("DeleteByCompetitor() second run = %d, %v, want 0", got, err)
	}
}
