//nolint:whitespace // can't make both editor and linter happy
package fingerprint

import (
	"context"

	"github.com/avelsner/crossrank/pkg/model"
	"github.com/avelsner/crossrank/pkg/repository"
)

// SaveCareer upserts a competitor's career fingerprint. Career rows carry a
// null season.
func SaveCareer(
	ctx context.Context,
	conn repository.Querier,
	item model.CompetitorFingerprint,
) error {
	_, err := conn.Exec(ctx, `
	insert into fingerprint (competitor_key, season, data)
	values ($1,null,$2)
	on conflict (competitor_key, season) do update set
		data=excluded.data, created_at=now()
		`,
		item.CompetitorKey, item.Fingerprint,
	)
	return err
}

func SaveSeason(
	ctx context.Context,
	conn repository.Querier,
	item model.SeasonFingerprint,
) error {
	_, err := conn.Exec(ctx, `
	insert into fingerprint (competitor_key, season, data)
	values ($1,$2,$3)
	on conflict (competitor_key, season) do update set
		data=excluded.data, created_at=now()
		`,
		item.CompetitorKey, item.Season, item.Fingerprint,
	)
	return err
}

func LoadCareer(ctx context.Context, conn repository.Querier) (
	[]model.CompetitorFingerprint, error,
) {
	row, err := conn.Query(ctx, `
	select competitor_key, data from fingerprint
	where season is null order by competitor_key asc
		`)
	if err != nil {
		return nil, err
	}
	ret := make([]model.CompetitorFingerprint, 0)
	for row.Next() {
		var item model.CompetitorFingerprint
		if err := row.Scan(&item.CompetitorKey, &item.Fingerprint); err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, nil
}

func LoadSeasons(ctx context.Context, conn repository.Querier) (
	[]model.SeasonFingerprint, error,
) {
	row, err := conn.Query(ctx, `
	select competitor_key, season, data from fingerprint
	where season is not null order by season asc, competitor_key asc
		`)
	if err != nil {
		return nil, err
	}
	ret := make([]model.SeasonFingerprint, 0)
	for row.Next() {
		var item model.SeasonFingerprint
		if err := row.Scan(&item.CompetitorKey, &item.Season, &item.Fingerprint); err != nil {
			return nil, err
		}
		ret = append(ret, item)
	}
	return ret, nil
}

// deletes all fingerprints of a competitor, returns number of rows deleted.
func DeleteByCompetitor(ctx context.Context, conn repository.Querier, key string) (
	int, error,
) {
	cmdTag, err := conn.Exec(ctx,
		"delete from fingerprint where competitor_key=$1", key)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}
