// Package pending persists single-use registration and recovery tokens. Each
// purpose has its own table; only token hashes are stored.
package pending

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, t *models.PendingToken) error
	// Consume deletes and returns the live token with the given hash. Absent
	// and expired tokens both yield common.ErrorNotFound.
	Consume(ctx context.Context, purpose models.PendingPurpose, tokenHash string, now time.Time) (*models.PendingToken, error)
	DeleteForSubject(ctx context.Context, purpose models.PendingPurpose, subject string) (int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
