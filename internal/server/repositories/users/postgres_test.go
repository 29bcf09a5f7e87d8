package users

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

var userCols = []string{"id", "handle", "method", "can_download", "is_admin", "disabled",
	"recovery_enabled", "recovery_contact", "created_at", "last_login_at"}

const (
	qInsert   = `(?s)^INSERT\s+INTO\s+users\s*\(id,\s*handle,\s*method,.*created_at,\s*last_login_at\)\s*VALUES\s*\(\$1,.*\$10\)$`
	qByHandle = `(?s)^SELECT\s+id,\s*handle,.*last_login_at\s+FROM\s+users\s+WHERE\s+handle\s*=\s*\$1$`
	qByID     = `(?s)^SELECT\s+id,\s*handle,.*last_login_at\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1$`
)

func TestCreate_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectExec(qInsert).
		WithArgs(sqlmock.AnyArg(), "bob12", "totp", false, false, false, false, []byte(nil), now, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	u := &models.User{Handle: "bob12", Method: models.MethodTOTP, CreatedAt: now}
	got, err := repo.Create(context.Background(), u)
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.False(t, got.RecoveryEnabled)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_WithRecoveryContact(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()
	sealed := []byte{1, 2, 3}

	mock.ExpectExec(qInsert).
		WithArgs("u-1", "alice", "passkey", true, false, false, true, sealed, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), &models.User{
		ID: "u-1", Handle: "alice", Method: models.MethodPasskey, CanDownload: true,
		RecoveryContact: sealed, CreatedAt: now, LastLoginAt: &now,
	})
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	assert.True(t, got.RecoveryEnabled)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_HandleTaken(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(qInsert).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_handle_key"})

	_, err := repo.Create(context.Background(), &models.User{Handle: "alice", Method: models.MethodTOTP})
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(qInsert).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Handle: "alice", Method: models.MethodTOTP})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByHandle_Found(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	login := created.Add(time.Hour)

	rows := sqlmock.NewRows(userCols).
		AddRow("u-1", "alice", "fido2", true, true, false, true, []byte("sealed"), created, login)
	mock.ExpectQuery(qByHandle).WithArgs("alice").WillReturnRows(rows)

	got, err := repo.GetByHandle(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	assert.Equal(t, models.MethodFIDO2, got.Method)
	assert.True(t, got.IsAdmin)
	assert.True(t, got.RecoveryEnabled)
	require.NotNil(t, got.LastLoginAt)
	assert.Equal(t, login, *got.LastLoginAt)
}

func TestGetByHandle_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(qByHandle).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByHandle(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetByID_NullLastLogin(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	rows := sqlmock.NewRows(userCols).
		AddRow("u-1", "alice", "totp", false, false, false, false, nil, time.Now(), nil)
	mock.ExpectQuery(qByID).WithArgs("u-1").WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Nil(t, got.LastLoginAt)
	assert.Nil(t, got.RecoveryContact)
}

func TestGetByID_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(qByID).WithArgs("u-1").WillReturnError(errors.New("db err"))

	_, err := repo.GetByID(context.Background(), "u-1")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestHandleExists(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)^SELECT\s+EXISTS\s*\(SELECT\s+1\s+FROM\s+users\s+WHERE\s+handle\s*=\s*\$1\)$`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.HandleExists(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestList(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	rows := sqlmock.NewRows(userCols).
		AddRow("u-1", "alice", "totp", false, false, false, false, nil, now, nil).
		AddRow("u-2", "bob12", "passkey", true, false, true, false, nil, now, nil)
	mock.ExpectQuery(`(?s)^SELECT\s+id,.*FROM\s+users\s+ORDER\s+BY\s+handle$`).WillReturnRows(rows)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bob12", got[1].Handle)
	assert.True(t, got[1].Disabled)
}

func TestSetters(t *testing.T) {
	ctx := context.Background()
	at := time.Now()

	tests := []struct {
		name  string
		query string
		args  []any
		call  func(r *PostgresRepository) error
	}{
		{"disable", `(?s)^UPDATE\s+users\s+SET\s+disabled\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1$`,
			[]any{"u-1", true}, func(r *PostgresRepository) error { return r.SetDisabled(ctx, "u-1", true) }},
		{"download", `(?s)^UPDATE\s+users\s+SET\s+can_download\s*=\s*\$2`,
			[]any{"u-1", true}, func(r *PostgresRepository) error { return r.SetDownload(ctx, "u-1", true) }},
		{"admin", `(?s)^UPDATE\s+users\s+SET\s+is_admin\s*=\s*\$2`,
			[]any{"u-1", false}, func(r *PostgresRepository) error { return r.SetAdmin(ctx, "u-1", false) }},
		{"clear contact", `(?s)^UPDATE\s+users\s+SET\s+recovery_contact\s*=\s*\$2,\s*recovery_enabled\s*=\s*\$3`,
			[]any{"u-1", []byte(nil), false}, func(r *PostgresRepository) error { return r.SetRecoveryContact(ctx, "u-1", nil) }},
		{"method", `(?s)^UPDATE\s+users\s+SET\s+method\s*=\s*\$2`,
			[]any{"u-1", "fido2"}, func(r *PostgresRepository) error { return r.SetMethod(ctx, "u-1", models.MethodFIDO2) }},
		{"touch", `(?s)^UPDATE\s+users\s+SET\s+last_login_at\s*=\s*\$2`,
			[]any{"u-1", at}, func(r *PostgresRepository) error { return r.TouchLogin(ctx, "u-1", at) }},
		{"delete", `(?s)^DELETE\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1$`,
			[]any{"u-1"}, func(r *PostgresRepository) error { return r.Delete(ctx, "u-1") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)
			args := make([]driver.Value, 0, len(tt.args))
			for _, a := range tt.args {
				args = append(args, a)
			}
			mock.ExpectExec(tt.query).WithArgs(args...).WillReturnResult(sqlmock.NewResult(0, 1))
			require.NoError(t, tt.call(repo))
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSetDisabled_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`(?s)^UPDATE\s+users\s+SET\s+disabled`).
		WithArgs("ghost", true).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetDisabled(context.Background(), "ghost", true)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
