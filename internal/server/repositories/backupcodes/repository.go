// Package backupcodes persists hashed single-use recovery codes.
package backupcodes

import (
	"context"
	"time"
)

type Repository interface {
	// Replace drops every code the user holds and stores hashes as the new batch.
	Replace(ctx context.Context, userID string, hashes []string, at time.Time) error
	// Consume marks an unused code as used. It reports whether a code matched.
	Consume(ctx context.Context, userID, hash string, at time.Time) (bool, error)
	CountUnused(ctx context.Context, userID string) (int, error)
}
