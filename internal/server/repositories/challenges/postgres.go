package challenges

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/dbx"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Challenge) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO challenges (id, user_id, method, ceremony, payload, expires_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`

	userID := sql.NullString{String: c.UserID, Valid: c.UserID != ""}
	_, err := r.db.ExecContext(ctx, query,
		c.ID, userID, string(c.Method), c.Ceremony, c.Payload, c.ExpiresAt, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", dbx.MapError(err))
	}
	return nil
}

func (r *PostgresRepository) Consume(ctx context.Context, id string, now time.Time) (*models.Challenge, error) {
	if _, err := uuid.Parse(id); err != nil {
		// not a uuid, cannot exist
		return nil, common.ErrorNotFound
	}

	query :=
		`DELETE FROM challenges
		 WHERE id = $1 AND expires_at > $2
		 RETURNING id, user_id, method, ceremony, payload, expires_at, created_at`

	c := &models.Challenge{}
	var userID sql.NullString
	var method string
	err := r.db.QueryRowContext(ctx, query, id, now).
		Scan(&c.ID, &userID, &method, &c.Ceremony, &c.Payload, &c.ExpiresAt, &c.CreatedAt)
	if err != nil {
		if mapped := dbx.MapError(err); mapped == common.ErrorNotFound {
			return nil, mapped
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	c.UserID = userID.String
	c.Method = models.AuthMethod(method)
	return c, nil
}

func (r *PostgresRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM challenges WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", dbx.MapError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
