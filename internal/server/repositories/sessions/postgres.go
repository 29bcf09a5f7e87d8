package sessions

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

const sessionColumns = `id, user_id, token_hash, created_at, last_activity_at, expires_at, user_agent, origin_hash, terminated_at, termination_reason`

func scanSession(row *sql.Row) (*models.Session, error) {
	s := &models.Session{}
	var expires, terminated sql.NullTime
	var reason sql.NullString
	if err := row.Scan(&s.ID, &s.UserID, &s.TokenHash, &s.CreatedAt, &s.LastActivityAt, &expires,
		&s.UserAgent, &s.OriginHash, &terminated, &reason); err != nil {
		if mapped := dbx.MapError(err); mapped == common.ErrorNotFound {
			return nil, mapped
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if expires.Valid {
		t := expires.Time
		s.ExpiresAt = &t
	}
	if terminated.Valid {
		t := terminated.Time
		s.TerminatedAt = &t
	}
	s.TerminationReason = reason.String
	return s, nil
}

func (r *PostgresRepository) Create(ctx context.Context, s *models.Session) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO sessions (id, user_id, token_hash, created_at, last_activity_at, expires_at, user_agent, origin_hash)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	var expires sql.NullTime
	if s.ExpiresAt != nil {
		expires = sql.NullTime{Time: *s.ExpiresAt, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.UserID, s.TokenHash, s.CreatedAt, s.LastActivityAt, expires, s.UserAgent, s.OriginHash)
	if err != nil {
		return fmt.Errorf("db error: %w", dbx.MapError(err))
	}
	return nil
}

func (r *PostgresRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE token_hash = $1`
	return scanSession(r.db.QueryRowContext(ctx, query, tokenHash))
}

func (r *PostgresRepository) GetActiveByUserID(ctx context.Context, userID string) (*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE user_id = $1 AND terminated_at IS NULL`
	return scanSession(r.db.QueryRowContext(ctx, query, userID))
}

func (r *PostgresRepository) Touch(ctx context.Context, id string, at time.Time) error {
	query :=
		`UPDATE sessions SET last_activity_at = $2
		 WHERE id = $1 AND terminated_at IS NULL AND last_activity_at < $2`

	if _, err := r.db.ExecContext(ctx, query, id, at); err != nil {
		return fmt.Errorf("db error: %w", dbx.MapError(err))
	}
	return nil
}

func (r *PostgresRepository) TerminateAllForUser(ctx context.Context, userID, reason string, at time.Time) (int64, error) {
	query :=
		`UPDATE sessions SET terminated_at = $2, termination_reason = $3
		 WHERE user_id = $1 AND terminated_at IS NULL`

	return r.exec(ctx, query, userID, at, reason)
}

func (r *PostgresRepository) TerminateByTokenHash(ctx context.Context, tokenHash, reason string, at time.Time) (bool, error) {
	query :=
		`UPDATE sessions SET terminated_at = $2, termination_reason = $3
		 WHERE token_hash = $1 AND terminated_at IS NULL`

	n, err := r.exec(ctx, query, tokenHash, at, reason)
	return n > 0, err
}

func (r *PostgresRepository) DeleteStale(ctx context.Context, idleCutoff, now, retentionCutoff time.Time) (int64, error) {
	query :=
		`DELETE FROM sessions
		 WHERE (terminated_at IS NULL AND (last_activity_at < $1 OR expires_at <= $2))
		    OR terminated_at < $3`

	return r.exec(ctx, query, idleCutoff, now, retentionCutoff)
}

func (r *PostgresRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", dbx.MapError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
