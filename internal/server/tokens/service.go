// Package tokens issues and redeems single-use random tokens. Plaintext is
// returned once at issuance; only the SHA-256 hash ever reaches the store.
package tokens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/cryptox"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/repomanager"
	"github.com/jonboulle/clockwork"
)

// TokenBytes is the entropy of every issued token (256 bits).
const TokenBytes = 32

// PurposeSession is used for session tokens, which carry no fixed expiry.
const PurposeSession models.PendingPurpose = "session"

type Token struct {
	Plaintext string
	Hash      string
	// ExpiresAt is zero for purposes without a fixed lifetime.
	ExpiresAt time.Time
}

// Outcome is the result of a redemption. Reason is nil when Valid.
type Outcome struct {
	Valid   bool
	Reason  error
	Subject string
}

type Service struct {
	clock clockwork.Clock
	ttl   map[models.PendingPurpose]time.Duration
}

// NewService builds a token service where registration and recovery tokens
// live for pendingTTL.
func NewService(clock clockwork.Clock, pendingTTL time.Duration) *Service {
	return &Service{
		clock: clock,
		ttl: map[models.PendingPurpose]time.Duration{
			models.PurposeRegistration: pendingTTL,
			models.PurposeRecovery:     pendingTTL,
		},
	}
}

// Issue creates a fresh token for purpose. Nothing is persisted.
func (s *Service) Issue(purpose models.PendingPurpose) (Token, error) {
	plain, err := common.MakeRandToken(TokenBytes)
	if err != nil {
		return Token{}, fmt.Errorf("issue token: %w", err)
	}

	t := Token{Plaintext: plain, Hash: HashPlaintext(plain)}
	if ttl, ok := s.ttl[purpose]; ok {
		t.ExpiresAt = s.clock.Now().Add(ttl)
	}
	return t, nil
}

// Store persists an issued pending token bound to subject.
func (s *Service) Store(ctx context.Context, repos repomanager.Repositories, purpose models.PendingPurpose, t Token, subject string) error {
	if _, ok := s.ttl[purpose]; !ok {
		return fmt.Errorf("purpose %q is not storable", purpose)
	}
	return repos.Pending.Create(ctx, &models.PendingToken{
		Purpose:   purpose,
		TokenHash: t.Hash,
		Subject:   subject,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: s.clock.Now(),
	})
}

// Redeem looks up and deletes the token in one statement, so concurrent
// redemptions of the same hash yield exactly one success. Absent and expired
// tokens both produce ErrExpiredOrNotFound. The returned error is reserved for
// store failures.
func (s *Service) Redeem(ctx context.Context, repos repomanager.Repositories, purpose models.PendingPurpose, hash string) (Outcome, error) {
	p, err := repos.Pending.Consume(ctx, purpose, hash, s.clock.Now())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return Outcome{Reason: common.ErrExpiredOrNotFound}, nil
		}
		return Outcome{}, err
	}
	return Outcome{Valid: true, Subject: p.Subject}, nil
}

// RevokeAllForSubject removes every pending token of subject across purposes.
func (s *Service) RevokeAllForSubject(ctx context.Context, repos repomanager.Repositories, subject string) error {
	for purpose := range s.ttl {
		if _, err := repos.Pending.DeleteForSubject(ctx, purpose, subject); err != nil {
			return err
		}
	}
	return nil
}

// HashPlaintext is the store key for a presented token.
func HashPlaintext(plaintext string) string {
	return cryptox.HashToken(plaintext)
}
