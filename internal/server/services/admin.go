package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gatekeeper/internal/server/verifiers"
	"github.com/google/uuid"
)

// AdminService backs the admin RPCs and the authctl command. Unlike the
// anonymous surface it reports granular reasons.
type AdminService struct {
	*base
}

type UserInfo struct {
	Profile
	Disabled      bool
	HasCredential bool
	LiveSession   *models.Session
	// Status is empty for a healthy account, otherwise a reason such as
	// "AccountDisabled" or "AccountUnrecoverable".
	Status string
}

// Provisioned is returned once by Bootstrap.
type Provisioned struct {
	UserID      string
	TOTP        verifiers.TOTPRegistration
	BackupCodes []string
}

// accountStatus reports why an account cannot be used or recovered.
func accountStatus(u *models.User, remaining int) error {
	switch {
	case u.Disabled:
		return common.ErrAccountDisabled
	case !u.RecoveryEnabled && remaining == 0:
		return common.ErrAccountUnrecoverable
	}
	return nil
}

func (s *AdminService) info(ctx context.Context, repos repomanager.Repositories, u *models.User) (UserInfo, error) {
	p, err := s.profile(ctx, repos, u)
	if err != nil {
		return UserInfo{}, err
	}
	info := UserInfo{Profile: p, Disabled: u.Disabled, Status: common.Reason(accountStatus(u, p.RemainingBackupCodes))}

	switch _, err := repos.Credentials.GetByUserID(ctx, u.ID); {
	case err == nil:
		info.HasCredential = true
	case !errors.Is(err, common.ErrorNotFound):
		return UserInfo{}, err
	}

	switch sess, err := repos.Sessions.GetActiveByUserID(ctx, u.ID); {
	case err == nil:
		info.LiveSession = sess
	case !errors.Is(err, common.ErrorNotFound):
		return UserInfo{}, err
	}
	return info, nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]UserInfo, error) {
	repos := s.Store.Repos()
	users, err := repos.Users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserInfo, 0, len(users))
	for _, u := range users {
		info, err := s.info(ctx, repos, u)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, nil
}

func (s *AdminService) UserInfo(ctx context.Context, handle string) (UserInfo, error) {
	repos := s.Store.Repos()
	u, err := repos.Users.GetByHandle(ctx, handle)
	if err != nil {
		return UserInfo{}, err
	}
	return s.info(ctx, repos, u)
}

// RevokeAll ends every session of the user.
func (s *AdminService) RevokeAll(ctx context.Context, handle string) (int64, error) {
	u, err := s.Store.Repos().Users.GetByHandle(ctx, handle)
	if err != nil {
		return 0, err
	}
	return s.Sessions.TerminateUser(ctx, u.ID, models.TerminationRevoked)
}

// Disable blocks the account and ends its sessions and pending links in the
// same transaction.
func (s *AdminService) Disable(ctx context.Context, handle string) error {
	return s.Store.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		u, err := repos.Users.GetByHandle(ctx, handle)
		if err != nil {
			return err
		}
		if err := repos.Users.SetDisabled(ctx, u.ID, true); err != nil {
			return err
		}
		if _, err := s.Sessions.TerminateUserIn(ctx, repos, u.ID, models.TerminationDisabled); err != nil {
			return err
		}
		if err := s.Tokens.RevokeAllForSubject(ctx, repos, u.ID); err != nil {
			return err
		}
		s.Log.Info(ctx, "user disabled", "user_id", u.ID)
		return nil
	})
}

func (s *AdminService) Enable(ctx context.Context, handle string) error {
	return s.update(ctx, handle, func(ctx context.Context, repos repomanager.Repositories, id string) error {
		return repos.Users.SetDisabled(ctx, id, false)
	})
}

func (s *AdminService) SetDownload(ctx context.Context, handle string, allowed bool) error {
	return s.update(ctx, handle, func(ctx context.Context, repos repomanager.Repositories, id string) error {
		return repos.Users.SetDownload(ctx, id, allowed)
	})
}

func (s *AdminService) SetAdmin(ctx context.Context, handle string, admin bool) error {
	return s.update(ctx, handle, func(ctx context.Context, repos repomanager.Repositories, id string) error {
		return repos.Users.SetAdmin(ctx, id, admin)
	})
}

// DeleteUser removes the account and everything it owns. It is the manual
// remedy for an unrecoverable account: delete, then register again.
func (s *AdminService) DeleteUser(ctx context.Context, handle string) error {
	return s.update(ctx, handle, func(ctx context.Context, repos repomanager.Repositories, id string) error {
		if err := repos.Users.Delete(ctx, id); err != nil {
			return err
		}
		s.Log.Info(ctx, "user deleted", "user_id", id)
		return nil
	})
}

// RegenerateBackupCodes issues a new batch on the user's behalf.
func (s *AdminService) RegenerateBackupCodes(ctx context.Context, handle string) ([]string, error) {
	var codes []string
	err := s.update(ctx, handle, func(ctx context.Context, repos repomanager.Repositories, id string) error {
		var err error
		codes, err = s.issueBackupCodes(ctx, repos, id)
		return err
	})
	return codes, err
}

// Bootstrap creates a user with a time-code credential directly, without a
// contact. It is how the first administrator gets in.
func (s *AdminService) Bootstrap(ctx context.Context, handle string, admin bool) (Provisioned, error) {
	if err := ValidateHandle(handle); err != nil {
		return Provisioned{}, err
	}
	v, err := s.Verifiers.Get(models.MethodTOTP)
	if err != nil {
		return Provisioned{}, err
	}

	out := Provisioned{UserID: uuid.NewString()}
	ch, err := v.RegisterChallenge(ctx, verifiers.Subject{UserID: out.UserID, Handle: handle})
	if err != nil {
		return Provisioned{}, err
	}
	if err := json.Unmarshal(ch.Options, &out.TOTP); err != nil {
		return Provisioned{}, fmt.Errorf("decode provisioning: %w", err)
	}
	payload, err := s.seal(aadCredential, out.UserID, ch.State)
	if err != nil {
		return Provisioned{}, err
	}

	err = s.Store.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		now := s.Clock.Now()
		_, err := repos.Users.Create(ctx, &models.User{
			ID:          out.UserID,
			Handle:      handle,
			Method:      models.MethodTOTP,
			CanDownload: true,
			IsAdmin:     admin,
			CreatedAt:   now,
		})
		if err != nil {
			if errors.Is(err, common.ErrConflict) {
				return common.ErrHandleTaken
			}
			return err
		}
		err = repos.Credentials.Create(ctx, &models.Credential{
			UserID: out.UserID, Method: models.MethodTOTP, Payload: payload, CreatedAt: now,
		})
		if err != nil {
			return err
		}
		out.BackupCodes, err = s.issueBackupCodes(ctx, repos, out.UserID)
		return err
	})
	if err != nil {
		return Provisioned{}, err
	}

	s.Log.Info(ctx, "user provisioned", "handle", handle, "user_id", out.UserID, "admin", admin)
	return out, nil
}

func (s *AdminService) update(ctx context.Context, handle string, fn func(ctx context.Context, repos repomanager.Repositories, id string) error) error {
	return s.Store.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		u, err := repos.Users.GetByHandle(ctx, handle)
		if err != nil {
			return err
		}
		return fn(ctx, repos, u.ID)
	})
}
