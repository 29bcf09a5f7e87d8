package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/cryptox"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gatekeeper/internal/server/sessions"
	"github.com/dmitrijs2005/gatekeeper/internal/server/verifiers"
)

type LoginService struct {
	*base
}

// LoginChallenge has the same shape for known and unknown handles.
type LoginChallenge struct {
	ChallengeID string
	Method      models.AuthMethod
	Options     json.RawMessage
}

type LoginResult struct {
	UserID       string
	SessionToken string
}

// Challenge opens an authentication ceremony for handle. Unknown, disabled
// and credential-less handles get a decoy challenge that can never complete.
func (s *LoginService) Challenge(ctx context.Context, handle string) (out LoginChallenge, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			s.pad(ctx, start)
		}
	}()

	repos := s.Store.Repos()
	u, err := userByHandle(ctx, repos, handle, nil)
	if err != nil {
		return LoginChallenge{}, err
	}
	if u == nil || u.Disabled {
		return s.decoy(ctx, repos, handle)
	}

	cred, stored, err := s.storedCredential(ctx, repos, u.ID)
	if errors.Is(err, common.ErrCredentialNotFound) {
		return s.decoy(ctx, repos, handle)
	}
	if err != nil {
		return LoginChallenge{}, err
	}
	v, err := s.Verifiers.Get(cred.Method)
	if err != nil {
		return s.decoy(ctx, repos, handle)
	}

	ch, err := v.AuthChallenge(ctx, verifiers.Subject{UserID: u.ID, Handle: u.Handle}, stored)
	if err != nil {
		return LoginChallenge{}, err
	}
	id, err := s.saveChallenge(ctx, repos, u.ID, cred.Method, models.CeremonyLogin, ch.State)
	if err != nil {
		return LoginChallenge{}, err
	}
	return LoginChallenge{ChallengeID: id, Method: cred.Method, Options: ch.Options}, nil
}

// decoy picks a method from a keyed hash of the handle, so repeated lookups of
// the same handle see the same method.
func (s *LoginService) decoy(ctx context.Context, repos repomanager.Repositories, handle string) (LoginChallenge, error) {
	seed := cryptox.Keyed(s.DecoyKey, "decoy:"+handle)
	methods := s.Verifiers.Methods()
	method := methods[int(seed[0])%len(methods)]

	v, err := s.Verifiers.Get(method)
	if err != nil {
		return LoginChallenge{}, err
	}
	ch, err := v.DecoyChallenge(ctx, seed)
	if err != nil {
		return LoginChallenge{}, err
	}
	id, err := s.saveChallenge(ctx, repos, "", method, models.CeremonyLogin, ch.State)
	if err != nil {
		return LoginChallenge{}, err
	}
	s.Log.Debug(ctx, "decoy challenge issued", "method", method)
	return LoginChallenge{ChallengeID: id, Method: method, Options: ch.Options}, nil
}

// Complete verifies the response to a login challenge and opens a session,
// superseding any other. The replay counter advance and the session insert
// share one transaction.
func (s *LoginService) Complete(ctx context.Context, challengeID string, response []byte, meta sessions.Metadata) (out LoginResult, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			s.Log.Info(ctx, "login failed", "reason", common.Reason(err))
			s.pad(ctx, start)
		}
	}()

	chal, state, err := s.takeChallenge(ctx, challengeID)
	if err != nil {
		return LoginResult{}, err
	}
	if chal.Ceremony != models.CeremonyLogin || chal.UserID == "" {
		return LoginResult{}, common.ErrCredentialNotFound
	}

	repos := s.Store.Repos()
	u, err := repos.Users.GetByID(ctx, chal.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return LoginResult{}, common.ErrCredentialNotFound
		}
		return LoginResult{}, err
	}
	if u.Disabled {
		return LoginResult{}, common.ErrAccountDisabled
	}

	cred, stored, err := s.storedCredential(ctx, repos, u.ID)
	if err != nil {
		return LoginResult{}, err
	}
	if cred.Method != chal.Method {
		return LoginResult{}, common.ErrCredentialNotFound
	}
	v, err := s.Verifiers.Get(cred.Method)
	if err != nil {
		return LoginResult{}, err
	}

	mark, err := v.AuthComplete(ctx, verifiers.Subject{UserID: u.ID, Handle: u.Handle}, stored, state, response)
	if err != nil {
		return LoginResult{}, err
	}

	err = s.Store.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		if !mark.Skip {
			advanced, err := repos.Credentials.AdvanceReplayCounter(ctx, u.ID, mark.Value)
			if err != nil {
				return err
			}
			if !advanced {
				return replayError(cred.Method)
			}
		}

		cur, err := repos.Users.GetByID(ctx, u.ID)
		if err != nil {
			return err
		}
		if cur.Disabled {
			return common.ErrAccountDisabled
		}

		if out.SessionToken, err = s.Sessions.CreateIn(ctx, repos, u.ID, meta); err != nil {
			return err
		}
		return repos.Users.TouchLogin(ctx, u.ID, s.Clock.Now())
	})
	if err != nil {
		return LoginResult{}, err
	}

	out.UserID = u.ID
	s.Log.Info(ctx, "login succeeded", "user_id", u.ID, "method", cred.Method)
	return out, nil
}

func replayError(m models.AuthMethod) error {
	if m == models.MethodTOTP {
		return common.ErrCodeReplay
	}
	return common.ErrCounterReplay
}
