package credentials

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/dbx"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Credential) error {
	query :=
		`INSERT INTO credentials (user_id, method, payload, replay_counter, created_at)
		 VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.ExecContext(ctx, query, c.UserID, string(c.Method), c.Payload, c.ReplayCounter, c.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", dbx.MapError(err))
	}
	return nil
}

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID string) (*models.Credential, error) {
	query :=
		`SELECT user_id, method, payload, replay_counter, created_at FROM credentials
		 WHERE user_id = $1`

	c := &models.Credential{}
	var method string
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&c.UserID, &method, &c.Payload, &c.ReplayCounter, &c.CreatedAt)
	if err != nil {
		if mapped := dbx.MapError(err); mapped == common.ErrorNotFound {
			return nil, mapped
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	c.Method = models.AuthMethod(method)
	return c, nil
}

func (r *PostgresRepository) Replace(ctx context.Context, c *models.Credential) error {
	query :=
		`INSERT INTO credentials (user_id, method, payload, replay_counter, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO UPDATE
		 SET method = EXCLUDED.method, payload = EXCLUDED.payload,
		     replay_counter = EXCLUDED.replay_counter, created_at = EXCLUDED.created_at`

	if _, err := r.db.ExecContext(ctx, query, c.UserID, string(c.Method), c.Payload, c.ReplayCounter, c.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", dbx.MapError(err))
	}
	return nil
}

func (r *PostgresRepository) AdvanceReplayCounter(ctx context.Context, userID string, next int64) (bool, error) {
	query :=
		`UPDATE credentials SET replay_counter = $2
		 WHERE user_id = $1 AND replay_counter < $2`

	res, err := r.db.ExecContext(ctx, query, userID, next)
	if err != nil {
		return false, fmt.Errorf("db error: %w", dbx.MapError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n == 1, nil
}
