package backupcodes

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Replace must run inside a transaction for the swap to be atomic.
func (r *PostgresRepository) Replace(ctx context.Context, userID string, hashes []string, at time.Time) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM backup_codes WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("db error: %w", dbx.MapError(err))
	}

	query :=
		`INSERT INTO backup_codes (user_id, code_hash, created_at)
		 VALUES ($1, $2, $3)`

	for _, h := range hashes {
		if _, err := r.db.ExecContext(ctx, query, userID, h, at); err != nil {
			return fmt.Errorf("db error: %w", dbx.MapError(err))
		}
	}
	return nil
}

func (r *PostgresRepository) Consume(ctx context.Context, userID, hash string, at time.Time) (bool, error) {
	query :=
		`UPDATE backup_codes SET used_at = $3
		 WHERE user_id = $1 AND code_hash = $2 AND used_at IS NULL`

	res, err := r.db.ExecContext(ctx, query, userID, hash, at)
	if err != nil {
		return false, fmt.Errorf("db error: %w", dbx.MapError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n == 1, nil
}

func (r *PostgresRepository) CountUnused(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM backup_codes WHERE user_id = $1 AND used_at IS NULL`

	var n int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
