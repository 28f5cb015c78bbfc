//nolint:whitespace // can't make both editor and linter happy
package weights

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/avelsner/crossrank/pkg/model"
	"github.com/avelsner/crossrank/pkg/repository"
)

var selector = `select id, created_at, alpha, l1_ratio, train_r2, test_r2, weights
	from ranking_weights`

func Create(
	ctx context.Context,
	conn repository.Querier,
	item *model.WeightsArtifact,
) error {
	_, err := conn.Exec(ctx, `
	insert into ranking_weights (id, created_at, alpha, l1_ratio, train_r2, test_r2, weights)
	values ($1,$2,$3,$4,$5,$6,$7)
		`,
		item.ID, item.CreatedAt, item.Alpha, item.L1Ratio,
		item.TrainR2, item.TestR2, item.Weights,
	)
	return err
}

func LoadByID(ctx context.Context, conn repository.Querier, id uuid.UUID) (
	*model.WeightsArtifact, error,
) {
	row := conn.QueryRow(ctx, selector+" where id=$1", id)
	return readData(row)
}

// LoadLatest returns the most recently trained weights artifact.
func LoadLatest(ctx context.Context, conn repository.Querier) (
	*model.WeightsArtifact, error,
) {
	row := conn.QueryRow(ctx, selector+" order by created_at desc limit 1")
	return readData(row)
}

// deletes an entry from the database, returns number of rows deleted.
func DeleteByID(ctx context.Context, conn repository.Querier, id uuid.UUID) (
	int, error,
) {
	cmdTag, err := conn.Exec(ctx, "delete from ranking_weights where id=$1", id)
	if err != nil {
		return 0, err
	}
	return int(cmdTag.RowsAffected()), nil
}

func readData(row pgx.Row) (*model.WeightsArtifact, error) {
	var item model.WeightsArtifact
	if err := row.Scan(
		&item.ID, &item.CreatedAt, &item.Alpha, &item.L1Ratio,
		&item.TrainR2, &item.TestR2, &item.Weights,
	); err != nil {
		return nil, err
	}
	return &item, nil
}
