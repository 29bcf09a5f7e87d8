// Package credentials persists the single sealed credential each user holds.
package credentials

import (
	"context"

	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.Credential) error
	GetByUserID(ctx context.Context, userID string) (*models.Credential, error)
	// Replace swaps the user's credential for a new one and resets its
	// replay counter to c.ReplayCounter.
	Replace(ctx context.Context, c *models.Credential) error
	// AdvanceReplayCounter moves the counter to next only if next is strictly
	// greater than the stored value. It reports whether the row moved.
	AdvanceReplayCounter(ctx context.Context, userID string, next int64) (bool, error)
}
