// Package challenges persists in-flight ceremony state. A challenge is
// consumed by the first attempt that presents it, successful or not.
package challenges

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.Challenge) error
	// Consume deletes and returns a live challenge. Absent and expired
	// challenges both yield common.ErrorNotFound.
	Consume(ctx context.Context, id string, now time.Time) (*models.Challenge, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
