package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/continuation"
	"github.com/dmitrijs2005/gatekeeper/internal/server/delivery"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gatekeeper/internal/server/sessions"
	"github.com/dmitrijs2005/gatekeeper/internal/server/tokens"
	"github.com/dmitrijs2005/gatekeeper/internal/server/verifiers"
	"github.com/google/uuid"
)

// RegistrationService drives Start -> ContactVerified -> MethodChosen ->
// Complete. The same ChooseMethod/Complete pair finishes re-enrollment after
// recovery.
type RegistrationService struct {
	*base
}

// MethodChoice is what the client needs to run the chosen ceremony.
type MethodChoice struct {
	Continuation string
	Method       models.AuthMethod
	Options      json.RawMessage
}

// RecoveryPreference is chosen at completion. An empty Contact means the
// user relies on backup codes alone.
type RecoveryPreference struct {
	Contact string
}

type Enrollment struct {
	UserID       string
	SessionToken string
	// BackupCodes are shown once. Re-enrollment keeps the existing batch.
	BackupCodes []string
}

// Start validates the handle and contact and sends a verification link. The
// contact is only used for this delivery and is never stored.
func (s *RegistrationService) Start(ctx context.Context, handle, contact string) error {
	handle = strings.TrimSpace(handle)
	if err := ValidateHandle(handle); err != nil {
		return err
	}
	ch, err := delivery.ParseChannel(contact)
	if err != nil {
		return err
	}

	var tok tokens.Token
	err = s.Store.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		taken, err := repos.Users.HandleExists(ctx, handle)
		if err != nil {
			return err
		}
		if taken {
			return common.ErrHandleTaken
		}
		if _, err := repos.Pending.DeleteForSubject(ctx, models.PurposeRegistration, handle); err != nil {
			return err
		}
		if tok, err = s.Tokens.Issue(models.PurposeRegistration); err != nil {
			return err
		}
		return s.Tokens.Store(ctx, repos, models.PurposeRegistration, tok, handle)
	})
	if err != nil {
		return err
	}

	s.Delivery.Dispatch(ctx, ch, delivery.Message{
		Subject: "Confirm your registration",
		Body:    "Open this link within 15 minutes to finish creating " + handle + ".",
		Link:    s.link("/auth/verify", tok.Plaintext),
	})
	s.Log.Info(ctx, "registration started", "handle", handle, "to", logging.Mask(ch.Address))
	return nil
}

// Verify redeems the emailed token and returns a continuation reference.
func (s *RegistrationService) Verify(ctx context.Context, token string) (cont string, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			s.pad(ctx, start)
		}
	}()

	var handle string
	err = s.Store.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		out, err := s.Tokens.Redeem(ctx, repos, models.PurposeRegistration, tokens.HashPlaintext(token))
		if err != nil {
			return err
		}
		if !out.Valid {
			return out.Reason
		}
		handle = out.Subject
		return nil
	})
	if err != nil {
		return "", err
	}

	taken, err := s.Store.Repos().Users.HandleExists(ctx, handle)
	if err != nil {
		return "", err
	}
	if taken {
		return "", common.ErrHandleTaken
	}

	s.Log.Info(ctx, "contact verified", "handle", handle)
	return s.Continuations.Sign(continuation.Claims{
		Stage:  continuation.StageContactVerified,
		Handle: handle,
		UserID: uuid.NewString(),
	})
}

// ChooseMethod opens a registration ceremony for method. It also accepts a
// re-enrollment continuation from recovery.
func (s *RegistrationService) ChooseMethod(ctx context.Context, cont string, method models.AuthMethod) (MethodChoice, error) {
	c, err := s.Continuations.Parse(cont, continuation.StageContactVerified, continuation.StageReenroll)
	if err != nil {
		return MethodChoice{}, err
	}
	v, err := s.Verifiers.Get(method)
	if err != nil {
		return MethodChoice{}, err
	}

	ch, err := v.RegisterChallenge(ctx, verifiers.Subject{UserID: c.UserID, Handle: c.Handle})
	if err != nil {
		return MethodChoice{}, err
	}

	owner, next := "", continuation.StageMethodChosen
	if c.Stage == continuation.StageReenroll {
		owner, next = c.UserID, continuation.StageReenrollMethodChosen
	}
	id, err := s.saveChallenge(ctx, s.Store.Repos(), owner, method, models.CeremonyRegister, ch.State)
	if err != nil {
		return MethodChoice{}, err
	}

	signed, err := s.Continuations.Sign(continuation.Claims{
		Stage:       next,
		Handle:      c.Handle,
		UserID:      c.UserID,
		Method:      method,
		ChallengeID: id,
		Recovery:    c.Recovery,
	})
	if err != nil {
		return MethodChoice{}, err
	}
	return MethodChoice{Continuation: signed, Method: method, Options: ch.Options}, nil
}

// Complete verifies the authenticator response and creates the user, its
// credential, the first backup code batch and a session in one transaction.
// For re-enrollment it replaces the credential of the existing user instead.
func (s *RegistrationService) Complete(ctx context.Context, cont string, response []byte, pref RecoveryPreference, meta sessions.Metadata) (Enrollment, error) {
	c, err := s.Continuations.Parse(cont, continuation.StageMethodChosen, continuation.StageReenrollMethodChosen)
	if err != nil {
		return Enrollment{}, err
	}
	reenroll := c.Stage == continuation.StageReenrollMethodChosen

	var contact []byte
	if strings.TrimSpace(pref.Contact) != "" {
		ch, err := delivery.ParseChannel(pref.Contact)
		if err != nil {
			return Enrollment{}, err
		}
		if contact, err = s.seal(aadContact, c.UserID, []byte(ch.Address)); err != nil {
			return Enrollment{}, err
		}
	}

	chal, state, err := s.takeChallenge(ctx, c.ChallengeID)
	if err != nil {
		return Enrollment{}, err
	}
	owner := ""
	if reenroll {
		owner = c.UserID
	}
	if chal.Ceremony != models.CeremonyRegister || chal.Method != c.Method || chal.UserID != owner {
		return Enrollment{}, common.ErrChallengeExpired
	}

	v, err := s.Verifiers.Get(c.Method)
	if err != nil {
		return Enrollment{}, err
	}
	nc, err := v.RegisterComplete(ctx, verifiers.Subject{UserID: c.UserID, Handle: c.Handle}, state, response)
	if err != nil {
		s.Log.Info(ctx, "registration ceremony rejected", "handle", c.Handle, "reason", common.Reason(err))
		return Enrollment{}, err
	}
	payload, err := s.seal(aadCredential, c.UserID, nc.Payload)
	if err != nil {
		return Enrollment{}, err
	}
	cred := &models.Credential{UserID: c.UserID, Method: c.Method, Payload: payload, ReplayCounter: nc.ReplayCounter}

	if reenroll {
		return s.reenroll(ctx, c, cred, contact, meta)
	}

	out := Enrollment{UserID: c.UserID}
	err = s.Store.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		now := s.Clock.Now()
		_, err := repos.Users.Create(ctx, &models.User{
			ID:              c.UserID,
			Handle:          c.Handle,
			Method:          c.Method,
			CanDownload:     true,
			RecoveryContact: contact,
			CreatedAt:       now,
			LastLoginAt:     &now,
		})
		if err != nil {
			if errors.Is(err, common.ErrConflict) {
				return common.ErrHandleTaken
			}
			return err
		}

		cred.CreatedAt = now
		if err := repos.Credentials.Create(ctx, cred); err != nil {
			return err
		}
		if out.BackupCodes, err = s.issueBackupCodes(ctx, repos, c.UserID); err != nil {
			return err
		}
		out.SessionToken, err = s.Sessions.CreateIn(ctx, repos, c.UserID, meta)
		return err
	})
	if err != nil {
		return Enrollment{}, err
	}

	s.Log.Info(ctx, "user registered", "handle", c.Handle, "user_id", c.UserID, "method", c.Method, "recovery_enabled", contact != nil)
	return out, nil
}

func (s *RegistrationService) reenroll(ctx context.Context, c *continuation.Claims, cred *models.Credential, contact []byte, meta sessions.Metadata) (Enrollment, error) {
	out := Enrollment{UserID: c.UserID}
	err := s.Store.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		u, err := repos.Users.GetByID(ctx, c.UserID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrExpiredOrNotFound
			}
			return err
		}
		if u.Disabled {
			return common.ErrAccountDisabled
		}

		now := s.Clock.Now()
		cred.CreatedAt = now
		if err := repos.Credentials.Replace(ctx, cred); err != nil {
			return err
		}
		if err := repos.Users.SetMethod(ctx, u.ID, cred.Method); err != nil {
			return err
		}
		if contact != nil {
			if err := repos.Users.SetRecoveryContact(ctx, u.ID, contact); err != nil {
				return err
			}
		}
		if out.SessionToken, err = s.Sessions.CreateIn(ctx, repos, u.ID, meta); err != nil {
			return err
		}
		return repos.Users.TouchLogin(ctx, u.ID, now)
	})
	if err != nil {
		return Enrollment{}, err
	}

	s.Log.Info(ctx, "credential re-enrolled", "user_id", c.UserID, "method", cred.Method)
	return out, nil
}
