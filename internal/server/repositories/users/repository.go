// Package users persists registered accounts.
package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByHandle(ctx context.Context, handle string) (*models.User, error)
	HandleExists(ctx context.Context, handle string) (bool, error)
	List(ctx context.Context) ([]*models.User, error)
	SetDisabled(ctx context.Context, id string, disabled bool) error
	SetDownload(ctx context.Context, id string, allowed bool) error
	SetAdmin(ctx context.Context, id string, admin bool) error
	// SetRecoveryContact stores a sealed contact; nil clears it and disables
	// magic-link recovery.
	SetRecoveryContact(ctx context.Context, id string, sealed []byte) error
	SetMethod(ctx context.Context, id string, method models.AuthMethod) error
	TouchLogin(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}
