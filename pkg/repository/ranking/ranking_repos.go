//nolint:whitespace // can't make both editor and linter happy
package ranking

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/avelsner/crossrank/pkg/model"
	"github.com/avelsner/crossrank/pkg/repository"
)

// Save replaces the ranking computed from the given weights artifact.
func Save(
	ctx context.Context,
	conn repository.Querier,
	weightsID uuid.UUID,
	entries []model.RankingEntry,
) error {
	if _, err := conn.Exec(ctx,
		"delete from ranking where weights_id=$1", weightsID); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := conn.Exec(ctx, `
		insert into ranking (weights_id, pos, competitor_key, score)
		values ($1,$2,$3,$4)
			`,
			weightsID, e.Pos, e.CompetitorKey, e.Score,
		); err != nil {
			return err
		}
	}
	return nil
}

func LoadByWeightsID(ctx context.Context, conn repository.Querier, weightsID uuid.UUID) (
	[]model.RankingEntry, error,
) {
	row, err := conn.Query(ctx, `
	select pos, competitor_key, score from ranking
	where weights_id=$1 order by pos asc
		`, weightsID)
	if err != nil {
		return nil, err
	}
	ret := make([]model.RankingEntry, 0)
	for row.Next() {
		var item model.RankingEntry
		if err := row.Scan(&item.Pos, &item.CompetitorKey, &item.Score); err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, nil
}
