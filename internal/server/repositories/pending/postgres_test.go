package pending

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
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

func TestCreate_PerPurposeTable(t *testing.T) {
	now := time.Now()
	exp := now.Add(15 * time.Minute)

	tests := []struct {
		purpose models.PendingPurpose
		query   string
	}{
		{models.PurposeRegistration, `(?s)^INSERT\s+INTO\s+pending_registrations\s*\(token_hash,\s*handle,\s*expires_at,\s*created_at\)`},
		{models.PurposeRecovery, `(?s)^INSERT\s+INTO\s+pending_recoveries\s*\(token_hash,\s*user_id,\s*expires_at,\s*created_at\)`},
	}

	for _, tt := range tests {
		t.Run(string(tt.purpose), func(t *testing.T) {
			repo, mock := newRepoWithMock(t)
			mock.ExpectExec(tt.query).
				WithArgs("hash", "subject", exp, now).
				WillReturnResult(sqlmock.NewResult(0, 1))

			err := repo.Create(context.Background(), &models.PendingToken{
				Purpose: tt.purpose, TokenHash: "hash", Subject: "subject", ExpiresAt: exp, CreatedAt: now,
			})
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreate_UnknownPurpose(t *testing.T) {
	repo, _ := newRepoWithMock(t)
	err := repo.Create(context.Background(), &models.PendingToken{Purpose: "bogus"})
	assert.Error(t, err)
}

func TestConsume(t *testing.T) {
	q := `(?s)^DELETE\s+FROM\s+pending_registrations\s+WHERE\s+token_hash\s*=\s*\$1\s+AND\s+expires_at\s*>\s*\$2\s+RETURNING\s+token_hash,\s*handle,\s*expires_at,\s*created_at$`
	now := time.Now()

	t.Run("live token", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(q).WithArgs("hash", now).
			WillReturnRows(sqlmock.NewRows([]string{"token_hash", "handle", "expires_at", "created_at"}).
				AddRow("hash", "bob12", now.Add(time.Minute), now.Add(-time.Minute)))

		p, err := repo.Consume(context.Background(), models.PurposeRegistration, "hash", now)
		require.NoError(t, err)
		assert.Equal(t, "bob12", p.Subject)
		assert.Equal(t, models.PurposeRegistration, p.Purpose)
	})

	t.Run("missing or expired", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(q).WithArgs("hash", now).WillReturnError(sql.ErrNoRows)

		_, err := repo.Consume(context.Background(), models.PurposeRegistration, "hash", now)
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(q).WillReturnError(errors.New("db down"))

		_, err := repo.Consume(context.Background(), models.PurposeRegistration, "hash", now)
		assert.ErrorContains(t, err, "db down")
		assert.NotErrorIs(t, err, common.ErrorNotFound)
	})
}

func TestDeleteForSubject(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+pending_recoveries\s+WHERE\s+user_id\s*=\s*\$1$`).
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.DeleteForSubject(context.Background(), models.PurposeRecovery, "u-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestDeleteExpired_BothTables(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+pending_registrations\s+WHERE\s+expires_at\s*<=\s*\$1$`).
		WithArgs(now).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+pending_recoveries\s+WHERE\s+expires_at\s*<=\s*\$1$`).
		WithArgs(now).WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.DeleteExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	require.NoError(t, mock.ExpectationsWereMet())
}
