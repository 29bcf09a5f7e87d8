// Package sessions implements the session lifecycle: creation with
// single-session enforcement, validation with idle grace and coalesced
// heartbeats, and termination.
package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/cryptox"
	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gatekeeper/internal/server/tokens"
	"github.com/jonboulle/clockwork"
)

// createAttempts bounds retries when a concurrent login for the same user wins
// the serialization race.
const createAttempts = 3

const maxUserAgent = 512

type State int

const (
	StateActive State = iota + 1
	StateGrace
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateGrace:
		return "grace"
	}
	return "unknown"
}

// Metadata is recorded on a session at creation. Origin is stored hashed.
type Metadata struct {
	UserAgent string
	Origin    string
}

type Validation struct {
	SessionID      string
	UserID         string
	State          State
	LastActivityAt time.Time
}

type Config struct {
	// Grace is the idle time after which a session is rejected.
	Grace time.Duration
	// ActiveWindow separates Active from Grace for reporting.
	ActiveWindow time.Duration
	// HeartbeatInterval is the minimum idle time before a validation writes
	// last activity back.
	HeartbeatInterval time.Duration
	// HardLifetime caps a session regardless of activity. Zero disables it.
	HardLifetime time.Duration
}

type Manager struct {
	rm     repomanager.RepositoryManager
	tokens *tokens.Service
	clock  clockwork.Clock
	cfg    Config
	log    logging.Logger
}

func NewManager(rm repomanager.RepositoryManager, ts *tokens.Service, clock clockwork.Clock, cfg Config, log logging.Logger) *Manager {
	return &Manager{rm: rm, tokens: ts, clock: clock, cfg: cfg, log: log.With("module", "sessions")}
}

// Create terminates every live session of userID and opens a new one in a
// single transaction. The plaintext token is returned once.
func (m *Manager) Create(ctx context.Context, userID string, meta Metadata) (string, error) {
	var (
		plain string
		err   error
	)
	for attempt := 0; attempt < createAttempts; attempt++ {
		err = m.rm.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
			var txErr error
			plain, txErr = m.CreateIn(ctx, repos, userID, meta)
			return txErr
		})
		if !errors.Is(err, common.ErrConflict) {
			break
		}
		m.log.Debug(ctx, "session create conflict, retrying", "user_id", userID, "attempt", attempt+1)
	}
	if err != nil {
		return "", err
	}
	return plain, nil
}

// CreateIn is Create for callers that already hold a transaction.
func (m *Manager) CreateIn(ctx context.Context, repos repomanager.Repositories, userID string, meta Metadata) (string, error) {
	tok, err := m.tokens.Issue(tokens.PurposeSession)
	if err != nil {
		return "", err
	}
	now := m.clock.Now()

	n, err := repos.Sessions.TerminateAllForUser(ctx, userID, models.TerminationSuperseded, now)
	if err != nil {
		return "", fmt.Errorf("supersede sessions: %w", err)
	}

	s := &models.Session{
		UserID:         userID,
		TokenHash:      tok.Hash,
		CreatedAt:      now,
		LastActivityAt: now,
		UserAgent:      truncate(meta.UserAgent, maxUserAgent),
	}
	if meta.Origin != "" {
		s.OriginHash = cryptox.HashToken(meta.Origin)
	}
	if m.cfg.HardLifetime > 0 {
		exp := now.Add(m.cfg.HardLifetime)
		s.ExpiresAt = &exp
	}
	if err := repos.Sessions.Create(ctx, s); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	m.log.Info(ctx, "session created", "user_id", userID, "session_id", s.ID, "superseded", n)
	return tok.Plaintext, nil
}

// Validate resolves a presented session token. It reports the state the
// session was in before this call refreshed it.
func (m *Manager) Validate(ctx context.Context, token string) (Validation, error) {
	if token == "" {
		return Validation{}, common.ErrExpiredOrNotFound
	}
	repos := m.rm.Repos()

	s, err := repos.Sessions.GetByTokenHash(ctx, tokens.HashPlaintext(token))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return Validation{}, common.ErrExpiredOrNotFound
		}
		return Validation{}, err
	}

	if !s.Live() {
		if s.TerminationReason == models.TerminationSuperseded {
			return Validation{}, common.ErrSessionSuperseded
		}
		return Validation{}, common.ErrSessionTerminated
	}

	now := m.clock.Now()
	idle := now.Sub(s.LastActivityAt)
	if idle > m.cfg.Grace {
		return Validation{}, common.ErrExpiredOrNotFound
	}
	if s.ExpiresAt != nil && !now.Before(*s.ExpiresAt) {
		return Validation{}, common.ErrExpiredOrNotFound
	}

	v := Validation{SessionID: s.ID, UserID: s.UserID, State: StateGrace, LastActivityAt: s.LastActivityAt}
	if idle < m.cfg.ActiveWindow {
		v.State = StateActive
	}

	if idle >= m.cfg.HeartbeatInterval {
		// a lost heartbeat only shortens the idle budget
		if err := repos.Sessions.Touch(ctx, s.ID, now); err != nil {
			m.log.Warn(ctx, "session heartbeat failed", "session_id", s.ID, "error", err)
		}
	}
	return v, nil
}

// Terminate ends the session behind token. Unknown or already terminated
// tokens are not an error.
func (m *Manager) Terminate(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	ok, err := m.rm.Repos().Sessions.TerminateByTokenHash(ctx, tokens.HashPlaintext(token), models.TerminationLogout, m.clock.Now())
	if err != nil {
		return err
	}
	if ok {
		m.log.Info(ctx, "session terminated", "reason", models.TerminationLogout)
	}
	return nil
}

// TerminateUser ends every live session of userID.
func (m *Manager) TerminateUser(ctx context.Context, userID, reason string) (int64, error) {
	return m.TerminateUserIn(ctx, m.rm.Repos(), userID, reason)
}

func (m *Manager) TerminateUserIn(ctx context.Context, repos repomanager.Repositories, userID, reason string) (int64, error) {
	n, err := repos.Sessions.TerminateAllForUser(ctx, userID, reason, m.clock.Now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		m.log.Info(ctx, "user sessions terminated", "user_id", userID, "reason", reason, "count", n)
	}
	return n, nil
}

// ActiveForUser returns the live session of userID, or common.ErrorNotFound.
func (m *Manager) ActiveForUser(ctx context.Context, userID string) (*models.Session, error) {
	return m.rm.Repos().Sessions.GetActiveByUserID(ctx, userID)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
