package services

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/server/delivery"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/repomanager"
)

// AccountService is self-service for a signed-in user. Callers resolve the
// user id from a validated session.
type AccountService struct {
	*base
}

type Profile struct {
	UserID               string
	Handle               string
	Method               models.AuthMethod
	CanDownload          bool
	IsAdmin              bool
	RecoveryEnabled      bool
	RemainingBackupCodes int
	CreatedAt            time.Time
	LastLoginAt          *time.Time
}

func (b *base) profile(ctx context.Context, repos repomanager.Repositories, u *models.User) (Profile, error) {
	n, err := repos.BackupCodes.CountUnused(ctx, u.ID)
	if err != nil {
		return Profile{}, err
	}
	return Profile{
		UserID:               u.ID,
		Handle:               u.Handle,
		Method:               u.Method,
		CanDownload:          u.CanDownload,
		IsAdmin:              u.IsAdmin,
		RecoveryEnabled:      u.RecoveryEnabled,
		RemainingBackupCodes: n,
		CreatedAt:            u.CreatedAt,
		LastLoginAt:          u.LastLoginAt,
	}, nil
}

func (s *AccountService) Me(ctx context.Context, userID string) (Profile, error) {
	repos := s.Store.Repos()
	u, err := repos.Users.GetByID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	return s.profile(ctx, repos, u)
}

// RegenerateBackupCodes invalidates the current batch and returns a new one.
func (s *AccountService) RegenerateBackupCodes(ctx context.Context, userID string) ([]string, error) {
	var codes []string
	err := s.Store.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		var err error
		codes, err = s.issueBackupCodes(ctx, repos, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.Log.Info(ctx, "backup codes regenerated", "user_id", userID)
	return codes, nil
}

func (s *AccountService) RemainingBackupCodes(ctx context.Context, userID string) (int, error) {
	return s.Store.Repos().BackupCodes.CountUnused(ctx, userID)
}

// UpdateRecoveryContact stores a new sealed contact. An empty contact
// removes it, leaving backup codes as the only recovery path.
func (s *AccountService) UpdateRecoveryContact(ctx context.Context, userID, contact string) error {
	var sealed []byte
	if strings.TrimSpace(contact) != "" {
		ch, err := delivery.ParseChannel(contact)
		if err != nil {
			return err
		}
		if sealed, err = s.seal(aadContact, userID, []byte(ch.Address)); err != nil {
			return err
		}
	}
	if err := s.Store.Repos().Users.SetRecoveryContact(ctx, userID, sealed); err != nil {
		return err
	}
	s.Log.Info(ctx, "recovery contact updated", "user_id", userID, "recovery_enabled", sealed != nil)
	return nil
}
