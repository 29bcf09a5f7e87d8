package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/continuation"
	"github.com/dmitrijs2005/gatekeeper/internal/server/delivery"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gatekeeper/internal/server/sessions"
	"github.com/dmitrijs2005/gatekeeper/internal/server/tokens"
)

type RecoveryService struct {
	*base
}

// RecoveryResult carries what a recovered user needs to enroll a new
// credential. SessionToken is only set for magic-link recovery; BackupCodes
// only for backup-code recovery.
type RecoveryResult struct {
	UserID       string
	SessionToken string
	Continuation string
	BackupCodes  []string
}

// Request sends a magic link when the account has a recovery contact. The
// answer is the same whether or not anything was sent; only store and
// internal failures are returned.
func (s *RecoveryService) Request(ctx context.Context, handle string) error {
	start := time.Now()
	defer s.pad(ctx, start)

	err := s.request(ctx, handle)
	switch {
	case err == nil:
	case errors.Is(err, common.ErrorNotFound),
		errors.Is(err, common.ErrAccountDisabled),
		errors.Is(err, common.ErrRecoveryUnavailable),
		errors.Is(err, common.ErrContactInvalid):
		s.Log.Info(ctx, "recovery link not sent", "reason", common.Reason(err))
	default:
		s.Log.Error(ctx, "recovery request failed", "error", err)
		return err
	}
	return nil
}

func (s *RecoveryService) request(ctx context.Context, handle string) error {
	u, err := userByHandle(ctx, s.Store.Repos(), handle, common.ErrorNotFound)
	if err != nil {
		return err
	}
	if u.Disabled {
		return common.ErrAccountDisabled
	}
	if !u.RecoveryEnabled || len(u.RecoveryContact) == 0 {
		return common.ErrRecoveryUnavailable
	}

	plain, err := s.open(aadContact, u.ID, u.RecoveryContact)
	if err != nil {
		return err
	}
	ch, err := delivery.ParseChannel(string(plain))
	common.WipeByteArray(plain)
	if err != nil {
		return err
	}

	var tok tokens.Token
	err = s.Store.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		if _, err := repos.Pending.DeleteForSubject(ctx, models.PurposeRecovery, u.ID); err != nil {
			return err
		}
		if tok, err = s.Tokens.Issue(models.PurposeRecovery); err != nil {
			return err
		}
		return s.Tokens.Store(ctx, repos, models.PurposeRecovery, tok, u.ID)
	})
	if err != nil {
		return err
	}

	s.Delivery.Dispatch(ctx, ch, delivery.Message{
		Subject: "Sign-in link",
		Body:    "Open this link within 15 minutes to sign in and set up a new authenticator.",
		Link:    s.link("/auth/recover", tok.Plaintext),
	})
	s.Log.Info(ctx, "recovery link sent", "user_id", u.ID, "to", logging.Mask(ch.Address))
	return nil
}

// RedeemLink signs the user in from a magic link and returns a re-enrollment
// continuation.
func (s *RecoveryService) RedeemLink(ctx context.Context, token string, meta sessions.Metadata) (out RecoveryResult, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			s.pad(ctx, start)
		}
	}()

	var u *models.User
	err = s.Store.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		res, err := s.Tokens.Redeem(ctx, repos, models.PurposeRecovery, tokens.HashPlaintext(token))
		if err != nil {
			return err
		}
		if !res.Valid {
			return res.Reason
		}

		if u, err = repos.Users.GetByID(ctx, res.Subject); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrExpiredOrNotFound
			}
			return err
		}
		if u.Disabled {
			return common.ErrAccountDisabled
		}

		if out.SessionToken, err = s.Sessions.CreateIn(ctx, repos, u.ID, meta); err != nil {
			return err
		}
		return repos.Users.TouchLogin(ctx, u.ID, s.Clock.Now())
	})
	if err != nil {
		return RecoveryResult{}, err
	}

	out.UserID = u.ID
	if out.Continuation, err = s.reenrollment(u); err != nil {
		return RecoveryResult{}, err
	}
	s.Log.Info(ctx, "recovered by link", "user_id", u.ID)
	return out, nil
}

// RedeemBackupCode spends one code, replaces the whole batch, ends every
// session and returns a re-enrollment continuation. No delivery channel is
// involved.
func (s *RecoveryService) RedeemBackupCode(ctx context.Context, handle, code string) (out RecoveryResult, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			s.Log.Info(ctx, "backup code rejected", "reason", common.Reason(err))
			s.pad(ctx, start)
		}
	}()

	u, err := userByHandle(ctx, s.Store.Repos(), handle, common.ErrBackupCodeInvalid)
	if err != nil {
		return RecoveryResult{}, err
	}
	if u.Disabled {
		return RecoveryResult{}, common.ErrAccountDisabled
	}

	hash := hashBackupCode(u.ID, code)
	err = s.Store.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		ok, err := repos.BackupCodes.Consume(ctx, u.ID, hash, s.Clock.Now())
		if err != nil {
			return err
		}
		if !ok {
			return common.ErrBackupCodeInvalid
		}

		if out.BackupCodes, err = s.issueBackupCodes(ctx, repos, u.ID); err != nil {
			return err
		}
		if _, err := s.Sessions.TerminateUserIn(ctx, repos, u.ID, models.TerminationRecovery); err != nil {
			return err
		}
		return s.Tokens.RevokeAllForSubject(ctx, repos, u.ID)
	})
	if err != nil {
		return RecoveryResult{}, err
	}

	out.UserID = u.ID
	if out.Continuation, err = s.reenrollment(u); err != nil {
		return RecoveryResult{}, err
	}
	s.Log.Info(ctx, "recovered by backup code", "user_id", u.ID)
	return out, nil
}

func (s *RecoveryService) reenrollment(u *models.User) (string, error) {
	return s.Continuations.Sign(continuation.Claims{
		Stage:    continuation.StageReenroll,
		Handle:   u.Handle,
		UserID:   u.ID,
		Recovery: true,
	})
}
