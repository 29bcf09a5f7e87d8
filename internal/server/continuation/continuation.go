// Package continuation signs the short-lived references that carry a
// registration or re-enrollment ceremony from one request to the next.
package continuation

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
)

const issuer = "gatekeeper"

type Stage string

const (
	StageContactVerified      Stage = "contact_verified"
	StageMethodChosen         Stage = "method_chosen"
	StageReenroll             Stage = "reenroll"
	StageReenrollMethodChosen Stage = "reenroll_method_chosen"
)

// Claims is the state a continuation reference carries. UserID is assigned
// when the contact is verified so authenticators can bind to it.
type Claims struct {
	jwt.RegisteredClaims
	Stage       Stage             `json:"stage"`
	Handle      string            `json:"handle"`
	UserID      string            `json:"uid"`
	Method      models.AuthMethod `json:"method,omitempty"`
	ChallengeID string            `json:"cid,omitempty"`
	Recovery    bool              `json:"recovery,omitempty"`
}

type Signer struct {
	key   []byte
	ttl   time.Duration
	clock clockwork.Clock
}

func NewSigner(key []byte, ttl time.Duration, clock clockwork.Clock) *Signer {
	return &Signer{key: key, ttl: ttl, clock: clock}
}

// Sign issues a reference for c, overwriting its registered claims.
func (s *Signer) Sign(c Claims) (string, error) {
	now := s.clock.Now()
	c.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   c.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign continuation: %w", err)
	}
	return signed, nil
}

// Parse verifies a reference and checks it is at one of the expected stages.
// Every failure is ErrExpiredOrNotFound.
func (s *Signer) Parse(token string, stages ...Stage) (*Claims, error) {
	c := &Claims{}
	_, err := jwt.ParseWithClaims(token, c, func(*jwt.Token) (any, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("continuation expired: %w", common.ErrExpiredOrNotFound)
		}
		return nil, fmt.Errorf("continuation rejected: %w", common.ErrExpiredOrNotFound)
	}

	for _, st := range stages {
		if c.Stage == st {
			return c, nil
		}
	}
	return nil, fmt.Errorf("continuation at stage %q: %w", c.Stage, common.ErrExpiredOrNotFound)
}
