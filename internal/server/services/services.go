// Package services is the registration, login and recovery orchestrator.
// It composes the credential store, token service, verifiers and session
// manager; every check-and-mutate step runs in one store transaction.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/cryptox"
	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/continuation"
	"github.com/dmitrijs2005/gatekeeper/internal/server/delivery"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gatekeeper/internal/server/sessions"
	"github.com/dmitrijs2005/gatekeeper/internal/server/tokens"
	"github.com/dmitrijs2005/gatekeeper/internal/server/verifiers"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// AAD scopes for sealed columns.
const (
	aadCredential = "credential"
	aadContact    = "contact"
	aadChallenge  = "challenge"
)

// Deliverer hands a message to the out-of-band transport without waiting.
type Deliverer interface {
	Dispatch(ctx context.Context, ch delivery.Channel, msg delivery.Message)
}

type Deps struct {
	Store         repomanager.RepositoryManager
	Tokens        *tokens.Service
	Sessions      *sessions.Manager
	Verifiers     *verifiers.Registry
	Continuations *continuation.Signer
	Sealer        *cryptox.Sealer
	Delivery      Deliverer
	Clock         clockwork.Clock
	Log           logging.Logger

	// PublicBaseURL prefixes links sent to users.
	PublicBaseURL string
	ChallengeTTL  time.Duration
	// FailureFloor is the minimum wall time of a failed public call.
	FailureFloor time.Duration
	// DecoyKey keys the method chosen for unknown handles.
	DecoyKey []byte
}

type base struct {
	Deps
}

func (b *base) named(module string) *base {
	c := *b
	c.Log = b.Log.With("module", module)
	return &c
}

type Services struct {
	Registration *RegistrationService
	Login        *LoginService
	Recovery     *RecoveryService
	Account      *AccountService
	Admin        *AdminService
}

func New(d Deps) *Services {
	b := &base{Deps: d}
	return &Services{
		Registration: &RegistrationService{base: b.named("registration")},
		Login:        &LoginService{base: b.named("login")},
		Recovery:     &RecoveryService{base: b.named("recovery")},
		Account:      &AccountService{base: b.named("account")},
		Admin:        &AdminService{base: b.named("admin")},
	}
}

// pad holds a failed call until FailureFloor has passed since start, so
// failure paths cannot be told apart by latency.
func (b *base) pad(ctx context.Context, start time.Time) {
	wait := b.FailureFloor - time.Since(start)
	if wait <= 0 {
		return
	}
	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

func (b *base) seal(scope, id string, plain []byte) ([]byte, error) {
	sealed, err := b.Sealer.Seal(plain, []byte(scope+":"+id))
	if err != nil {
		return nil, fmt.Errorf("seal %s: %w", scope, err)
	}
	return sealed, nil
}

func (b *base) open(scope, id string, sealed []byte) ([]byte, error) {
	plain, err := b.Sealer.Open(sealed, []byte(scope+":"+id))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", scope, err)
	}
	return plain, nil
}

func (b *base) link(path, token string) string {
	return b.PublicBaseURL + path + "?token=" + url.QueryEscape(token)
}

// saveChallenge seals ceremony state and stores it under a fresh id.
// userID is empty for registrations and decoys.
func (b *base) saveChallenge(ctx context.Context, repos repomanager.Repositories, userID string, method models.AuthMethod, ceremony string, state []byte) (string, error) {
	id := uuid.NewString()
	sealed, err := b.seal(aadChallenge, id, state)
	if err != nil {
		return "", err
	}

	now := b.Clock.Now()
	err = repos.Challenges.Create(ctx, &models.Challenge{
		ID:        id,
		UserID:    userID,
		Method:    method,
		Ceremony:  ceremony,
		Payload:   sealed,
		ExpiresAt: now.Add(b.ChallengeTTL),
		CreatedAt: now,
	})
	if err != nil {
		return "", fmt.Errorf("store challenge: %w", err)
	}
	return id, nil
}

// takeChallenge consumes a challenge whatever the outcome of the attempt
// that follows.
func (b *base) takeChallenge(ctx context.Context, id string) (*models.Challenge, []byte, error) {
	c, err := b.Store.Repos().Challenges.Consume(ctx, id, b.Clock.Now())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrChallengeExpired
		}
		return nil, nil, err
	}
	state, err := b.open(aadChallenge, c.ID, c.Payload)
	if err != nil {
		return nil, nil, err
	}
	return c, state, nil
}

func (b *base) storedCredential(ctx context.Context, repos repomanager.Repositories, userID string) (*models.Credential, verifiers.Stored, error) {
	c, err := repos.Credentials.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, verifiers.Stored{}, common.ErrCredentialNotFound
		}
		return nil, verifiers.Stored{}, err
	}
	plain, err := b.open(aadCredential, userID, c.Payload)
	if err != nil {
		return nil, verifiers.Stored{}, err
	}
	return c, verifiers.Stored{Payload: plain, ReplayCounter: c.ReplayCounter}, nil
}

// userByHandle maps a missing user to notFound.
func userByHandle(ctx context.Context, repos repomanager.Repositories, handle string, notFound error) (*models.User, error) {
	u, err := repos.Users.GetByHandle(ctx, handle)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, notFound
	}
	return u, err
}
