package challenges

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/google/uuid"
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

func TestCreate_RegistrationHasNullUser(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()
	exp := now.Add(5 * time.Minute)

	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+challenges\s*\(id,\s*user_id,\s*method,\s*ceremony,\s*payload,\s*expires_at,\s*created_at\)`).
		WithArgs(sqlmock.AnyArg(), nil, "totp", "register", []byte("sealed"), exp, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	c := &models.Challenge{Method: models.MethodTOTP, Ceremony: models.CeremonyRegister, Payload: []byte("sealed"), ExpiresAt: exp, CreatedAt: now}
	require.NoError(t, repo.Create(context.Background(), c))
	_, err := uuid.Parse(c.ID)
	assert.NoError(t, err)
}

func TestConsume(t *testing.T) {
	q := `(?s)^DELETE\s+FROM\s+challenges\s+WHERE\s+id\s*=\s*\$1\s+AND\s+expires_at\s*>\s*\$2\s+RETURNING\s+id,\s*user_id,`
	id := uuid.NewString()
	now := time.Now()

	t.Run("live", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(q).WithArgs(id, now).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "method", "ceremony", "payload", "expires_at", "created_at"}).
				AddRow(id, "u-1", "passkey", "login", []byte("p"), now.Add(time.Minute), now))

		c, err := repo.Consume(context.Background(), id, now)
		require.NoError(t, err)
		assert.Equal(t, "u-1", c.UserID)
		assert.Equal(t, models.MethodPasskey, c.Method)
	})

	t.Run("gone", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectQuery(q).WithArgs(id, now).WillReturnError(sql.ErrNoRows)

		_, err := repo.Consume(context.Background(), id, now)
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("malformed id never hits the db", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)

		_, err := repo.Consume(context.Background(), "not-a-uuid", now)
		assert.ErrorIs(t, err, common.ErrorNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteExpired(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+challenges\s+WHERE\s+expires_at\s*<=\s*\$1$`).
		WithArgs(now).WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
