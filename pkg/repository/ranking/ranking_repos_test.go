//nolint:dupl,funlen,errcheck //ok for this test code
package ranking

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/avelsner/crossrank/pkg/model"
	"github.com/avelsner/crossrank/testsupport/basedata"
	"github.com/avelsner/crossrank/testsupport/testdb"
)

func sampleEntries() []model.RankingEntry {
	return []model.RankingEntry{
		{Pos: 1, CompetitorKey: "senna", Score: -1.4},
		{Pos: 2, CompetitorKey: "hakkinen", Score: -0.2},
		{Pos: 3, CompetitorKey: "hill", Score: 0.7},
	}
}

func TestSaveAndLoad(t *testing.T) {
	pool := testdb.InitTestDb()
	ctx := context.Background()
	artifact := basedata.CreateSampleWeights(pool)

	if err := Save(ctx, pool, artifact.ID, sampleEntries()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := LoadByWeightsID(ctx, pool, artifact.ID)
	if err != nil {
		t.Fatalf("LoadByWeightsID() error = %v", err)
	}
	if diff := cmp.Diff(sampleEntries(), got); diff != "" {
		t.Errorf("LoadByWeightsID() mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveReplaces(t *testing.T) {
	pool := testdb.InitTestDb()
	ctx := context.Background()
	artifact := basedata.CreateSampleWeights(pool)

	if err := Save(ctx, pool, artifact.ID, sampleEntries()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	shorter := sampleEntries()[:2]
	if err := Save(ctx, pool, artifact.ID, shorter); err != nil {
		t.Fatalf("Save() again error = %v", err)
	}

	got, err := LoadByWeightsID(ctx, pool, artifact.ID)
	if err != nil {
		t.Fatalf("LoadByWeightsID() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("LoadByWeightsID() returned %d entries, want 2", len(got))
	}
}
