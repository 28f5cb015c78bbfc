//nolint:whitespace // can't make both editor and linter happy
package event

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avelsner/crossrank/pkg/model"
	"github.com/avelsner/crossrank/pkg/repository"
)

var selector = `select id, event_key, season, circuit, lap_granularity, results
	from event`

// Save upserts a harmonized event keyed by its season/circuit key and
// returns the database id.
func Save(ctx context.Context, conn repository.Querier, event *model.Event) (
	int, error,
) {
	row := conn.QueryRow(ctx, `
	insert into event (event_key, season, circuit, lap_granularity, results)
	values ($1,$2,$3,$4,$5)
	on conflict (event_key) do update set
		season=excluded.season,
		circuit=excluded.circuit,
		lap_granularity=excluded.lap_granularity,
		results=excluded.results
	returning id
		`,
		event.Key(), event.Season, event.Circuit, event.LapGranularity,
		event.Results,
	)
	var id int
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func LoadByKey(ctx context.Context, conn repository.Querier, key string) (
	*model.Event, error,
) {
	row := conn.QueryRow(ctx, fmt.Sprintf("%s where event_key=$1", selector), key)
	_, item, err := readData(row)
	return item, err
}

func LoadByCircuit(ctx context.Context, conn repository.Querier, circuit string) (
	[]*model.Event, error,
) {
	row, err := conn.Query(ctx,
		fmt.Sprintf("%s where circuit=$1 order by season asc", selector), circuit)
	if err != nil {
		return nil, err
	}
	ret := make([]*model.Event, 0)
	for row.Next() {
		_, item, err := readData(row)
		if err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, nil
}

func IDByKey(ctx context.Context, conn repository.Querier, key string) (int, error) {
	row := conn.QueryRow(ctx, "select id from event where event_key=$1", key)
	var id int
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// deletes an entry from the database, returns number of rows deleted.
func DeleteByKey(ctx context.Context, conn repository.Querier, key string) (
	int, error,
) {
	cmdTag, err := conn.Exec(ctx, "delete from event where event_key=$1", key)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

func readData(row pgx.Row) (int, *model.Event, error) {
	var id int
	var key string
	var item model.Event
	if err := row.Scan(
		&id, &key, &item.Season, &item.Circuit, &item.LapGranularity,
		&item.Results,
	); err != nil {
		return 0, nil, err
	}
	return id, &item, nil
}
