//nolint:whitespace // can't make both editor and linter happy
package normalized

import (
	"context"

	"github.com/avelsner/crossrank/pkg/model"
	"github.com/avelsner/crossrank/pkg/repository"
)

// Save replaces the normalized results of an event with the given ones.
func Save(
	ctx context.Context,
	conn repository.Querier,
	eventID int,
	data *model.NormalizedEvent,
) error {
	if _, err := conn.Exec(ctx,
		"delete from normalized_result where event_id=$1", eventID); err != nil {
		return err
	}
	for _, res := range data.Results {
		if _, err := conn.Exec(ctx, `
		insert into normalized_result (event_id, competitor_key, overall, by_lap)
		values ($1,$2,$3,$4)
			`,
			eventID, res.CompetitorKey, res.Overall, res.ByLap,
		); err != nil {
			return err
		}
	}
	return nil
}

func LoadByEventID(ctx context.Context, conn repository.Querier, eventID int) (
	[]*model.NormalizedResult, error,
) {
	row, err := conn.Query(ctx, `
	select competitor_key, overall, by_lap from normalized_result
	where event_id=$1 order by competitor_key asc
		`, eventID)
	if err != nil {
		return nil, err
	}
	ret := make([]*model.NormalizedResult, 0)
	for row.Next() {
		var item model.NormalizedResult
		if err := row.Scan(&item.CompetitorKey, &item.Overall, &item.ByLap); err != nil {
			return nil, err
		}
		ret = append(ret, &item)
	}
	return ret, nil
}

// deletes the normalized results of an event, returns number of rows deleted.
func DeleteByEventID(ctx context.Context, conn repository.Querier, eventID int) (
	int, error,
) {
	cmdTag, err := conn.Exec(ctx,
		"delete from normalized_result where event_id=$1", eventID)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}
