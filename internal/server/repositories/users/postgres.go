package users

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

const userColumns = `id, handle, method, can_download, is_admin, disabled, recovery_enabled, recovery_contact, created_at, last_login_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	u := &models.User{}
	var method string
	var lastLogin sql.NullTime
	if err := row.Scan(&u.ID, &u.Handle, &method, &u.CanDownload, &u.IsAdmin, &u.Disabled,
		&u.RecoveryEnabled, &u.RecoveryContact, &u.CreatedAt, &lastLogin); err != nil {
		return nil, err
	}
	u.Method = models.AuthMethod(method)
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLoginAt = &t
	}
	return u, nil
}

// Create inserts user, assigning a fresh id when none is set. A taken handle
// surfaces as common.ErrConflict.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	var lastLogin sql.NullTime
	if user.LastLoginAt != nil {
		lastLogin = sql.NullTime{Time: *user.LastLoginAt, Valid: true}
	}

	query :=
		`INSERT INTO users (id, handle, method, can_download, is_admin, disabled, recovery_enabled, recovery_contact, created_at, last_login_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Handle, string(user.Method), user.CanDownload, user.IsAdmin, user.Disabled,
		user.RecoveryContact != nil, user.RecoveryContact, user.CreatedAt, lastLogin)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", dbx.MapError(err))
	}

	user.RecoveryEnabled = user.RecoveryContact != nil
	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, wrap(err)
	}
	return u, nil
}

func (r *PostgresRepository) GetByHandle(ctx context.Context, handle string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE handle = $1`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, handle))
	if err != nil {
		return nil, wrap(err)
	}
	return u, nil
}

func (r *PostgresRepository) HandleExists(ctx context.Context, handle string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE handle = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, handle).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY handle`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) SetDisabled(ctx context.Context, id string, disabled bool) error {
	return r.update(ctx, `UPDATE users SET disabled = $2 WHERE id = $1`, id, disabled)
}

func (r *PostgresRepository) SetDownload(ctx context.Context, id string, allowed bool) error {
	return r.update(ctx, `UPDATE users SET can_download = $2 WHERE id = $1`, id, allowed)
}

func (r *PostgresRepository) SetAdmin(ctx context.Context, id string, admin bool) error {
	return r.update(ctx, `UPDATE users SET is_admin = $2 WHERE id = $1`, id, admin)
}

func (r *PostgresRepository) SetRecoveryContact(ctx context.Context, id string, sealed []byte) error {
	return r.update(ctx,
		`UPDATE users SET recovery_contact = $2, recovery_enabled = $3 WHERE id = $1`,
		id, sealed, sealed != nil)
}

func (r *PostgresRepository) SetMethod(ctx context.Context, id string, method models.AuthMethod) error {
	return r.update(ctx, `UPDATE users SET method = $2 WHERE id = $1`, id, string(method))
}

func (r *PostgresRepository) TouchLogin(ctx context.Context, id string, at time.Time) error {
	return r.update(ctx, `UPDATE users SET last_login_at = $2 WHERE id = $1`, id, at)
}

// Delete removes the user; sessions, credentials, codes and pending
// recoveries go with it through ON DELETE CASCADE.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.update(ctx, `DELETE FROM users WHERE id = $1`, id)
}

func (r *PostgresRepository) update(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", dbx.MapError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func wrap(err error) error {
	mapped := dbx.MapError(err)
	if mapped == common.ErrorNotFound {
		return mapped
	}
	return fmt.Errorf("db error: %w", mapped)
}
