package postgres

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/longwapps/leave-alert/internal/dispatch"
)

// DispatchRepository implements the dispatch.Repository interface using PostgreSQL
type DispatchRepository struct {
	db *pgxpool.Pool
}

var _ dispatch.Repository = (*DispatchRepository)(nil)

// GetByKey retrieves a ledger entry by its key
func (repo *DispatchRepository) GetByKey(ctx context.Context, key string) (*dispatch.Entry, error) {
	query := squirrel.Select("entry_id", "key", "recipient", "employee_id", "date", "mode", "sent_at").
		From("dispatch_log").
		Where(squirrel.Eq{"key": key})
	sql, vals, err := query.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	obj := new(dispatch.Entry)
	row := repo.db.QueryRow(ctx, sql, vals...)
	err = row.Scan(&obj.ID, &obj.Key, &obj.Recipient, &obj.EmployeeID, &obj.Date, &obj.Mode, &obj.SentAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return obj, nil
}

// Create creates a new ledger entry
func (repo *DispatchRepository) Create(ctx context.Context, entry *dispatch.Entry) error {
	_, err := repo.db.Exec(
		ctx,
		"INSERT INTO dispatch_log VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT (key) DO NOTHING",
		entry.ID,
		entry.Key,
		entry.Recipient,
		entry.EmployeeID,
		entry.Date,
		entry.Mode,
		entry.SentAt,
	)
	return err
}

// DeleteOlderThan deletes all ledger entries sent before the given UNIX timestamp
func (repo *DispatchRepository) DeleteOlderThan(ctx context.Context, threshold int64) (int, error) {
	tag, err := repo.db.Exec(ctx, "DELETE FROM dispatch_log WHERE sent_at < $1", threshold)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
