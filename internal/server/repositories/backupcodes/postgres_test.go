package backupcodes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestReplace(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	at := time.Now()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+backup_codes\s+WHERE\s+user_id\s*=\s*\$1$`).
		WithArgs("u-1").WillReturnResult(sqlmock.NewResult(0, 8))
	for _, h := range []string{"h1", "h2"} {
		mock.ExpectExec(`(?s)^INSERT\s+INTO\s+backup_codes\s*\(user_id,\s*code_hash,\s*created_at\)`).
			WithArgs("u-1", h, at).WillReturnResult(sqlmock.NewResult(0, 1))
	}

	require.NoError(t, repo.Replace(context.Background(), "u-1", []string{"h1", "h2"}, at))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReplace_InsertFails(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE\s+FROM\s+backup_codes`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT\s+INTO\s+backup_codes`).WillReturnError(errors.New("disk full"))

	err := repo.Replace(context.Background(), "u-1", []string{"h1"}, time.Now())
	assert.ErrorContains(t, err, "disk full")
}

func TestConsume(t *testing.T) {
	q := `(?s)^UPDATE\s+backup_codes\s+SET\s+used_at\s*=\s*\$3\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+code_hash\s*=\s*\$2\s+AND\s+used_at\s+IS\s+NULL$`
	at := time.Now()

	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(q).WithArgs("u-1", "h1", at).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("u-1", "h1", at).WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.Consume(context.Background(), "u-1", "h1", at)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Consume(context.Background(), "u-1", "h1", at)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCountUnused(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)^SELECT\s+COUNT\(\*\)\s+FROM\s+backup_codes\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+used_at\s+IS\s+NULL$`).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	n, err := repo.CountUnused(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}
