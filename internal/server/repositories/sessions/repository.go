// Package sessions persists login sessions. At most one live (unterminated)
// row per user is allowed by a partial unique index.
package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
)

type Repository interface {
	// Create inserts s. A second live row for the same user surfaces as
	// common.ErrConflict.
	Create(ctx context.Context, s *models.Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error)
	GetActiveByUserID(ctx context.Context, userID string) (*models.Session, error)
	// Touch moves last activity forward; it never moves it back.
	Touch(ctx context.Context, id string, at time.Time) error
	TerminateAllForUser(ctx context.Context, userID, reason string, at time.Time) (int64, error)
	TerminateByTokenHash(ctx context.Context, tokenHash, reason string, at time.Time) (bool, error)
	// DeleteStale removes live sessions idle since before idleCutoff or past
	// their hard expiry at now, and terminated sessions older than
	// retentionCutoff.
	DeleteStale(ctx context.Context, idleCutoff, now, retentionCutoff time.Time) (int64, error)
}
