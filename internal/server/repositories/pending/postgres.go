package pending

import (
	"context"
	"fmt"
	"time"

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

type table struct {
	name    string
	subject string
}

var tables = map[models.PendingPurpose]table{
	models.PurposeRegistration: {name: "pending_registrations", subject: "handle"},
	models.PurposeRecovery:     {name: "pending_recoveries", subject: "user_id"},
}

func tableFor(purpose models.PendingPurpose) (table, error) {
	t, ok := tables[purpose]
	if !ok {
		return table{}, fmt.Errorf("unknown pending purpose %q", purpose)
	}
	return t, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.PendingToken) error {
	t, err := tableFor(p.Purpose)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (token_hash, %s, expires_at, created_at)
		 VALUES ($1, $2, $3, $4)`, t.name, t.subject)

	if _, err := r.db.ExecContext(ctx, query, p.TokenHash, p.Subject, p.ExpiresAt, p.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", dbx.MapError(err))
	}
	return nil
}

func (r *PostgresRepository) Consume(ctx context.Context, purpose models.PendingPurpose, tokenHash string, now time.Time) (*models.PendingToken, error) {
	t, err := tableFor(purpose)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		`DELETE FROM %s
		 WHERE token_hash = $1 AND expires_at > $2
		 RETURNING token_hash, %s, expires_at, created_at`, t.name, t.subject)

	p := &models.PendingToken{Purpose: purpose}
	err = r.db.QueryRowContext(ctx, query, tokenHash, now).Scan(&p.TokenHash, &p.Subject, &p.ExpiresAt, &p.CreatedAt)
	if err != nil {
		if mapped := dbx.MapError(err); mapped == common.ErrorNotFound {
			return nil, mapped
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) DeleteForSubject(ctx context.Context, purpose models.PendingPurpose, subject string) (int64, error) {
	t, err := tableFor(purpose)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.name, t.subject)
	return r.exec(ctx, query, subject)
}

func (r *PostgresRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	var total int64
	for _, purpose := range []models.PendingPurpose{models.PurposeRegistration, models.PurposeRecovery} {
		query := fmt.Sprintf(`DELETE FROM %s WHERE expires_at <= $1`, tables[purpose].name)
		n, err := r.exec(ctx, query, now)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
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
