package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/google/uuid"
)

type pendingRepo struct{ do access }

func (r *pendingRepo) table(s *state, purpose models.PendingPurpose) (map[string]models.PendingToken, error) {
	t, ok := s.pending[purpose]
	if !ok {
		return nil, fmt.Errorf("unknown pending purpose %q", purpose)
	}
	return t, nil
}

func (r *pendingRepo) Create(_ context.Context, p *models.PendingToken) error {
	return r.do(func(s *state) error {
		t, err := r.table(s, p.Purpose)
		if err != nil {
			return err
		}
		if _, dup := t[p.TokenHash]; dup {
			return common.ErrConflict
		}
		if p.Purpose == models.PurposeRecovery {
			if _, ok := s.users[p.Subject]; !ok {
				return common.ErrConflict
			}
		}
		t[p.TokenHash] = *p
		return nil
	})
}

func (r *pendingRepo) Consume(_ context.Context, purpose models.PendingPurpose, tokenHash string, now time.Time) (*models.PendingToken, error) {
	var out models.PendingToken
	err := r.do(func(s *state) error {
		t, err := r.table(s, purpose)
		if err != nil {
			return err
		}
		p, ok := t[tokenHash]
		if !ok || !p.ExpiresAt.After(now) {
			return common.ErrorNotFound
		}
		delete(t, tokenHash)
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *pendingRepo) DeleteForSubject(_ context.Context, purpose models.PendingPurpose, subject string) (int64, error) {
	var n int64
	err := r.do(func(s *state) error {
		t, err := r.table(s, purpose)
		if err != nil {
			return err
		}
		for h, p := range t {
			if p.Subject == subject {
				delete(t, h)
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r *pendingRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	err := r.do(func(s *state) error {
		for _, t := range s.pending {
			for h, p := range t {
				if !p.ExpiresAt.After(now) {
					delete(t, h)
					n++
				}
			}
		}
		return nil
	})
	return n, err
}

type backupCodeRepo struct{ do access }

func (r *backupCodeRepo) Replace(_ context.Context, userID string, hashes []string, at time.Time) error {
	return r.do(func(s *state) error {
		if _, ok := s.users[userID]; !ok {
			return common.ErrConflict
		}
		batch := make(map[string]models.BackupCode, len(hashes))
		for _, h := range hashes {
			if _, dup := batch[h]; dup {
				return common.ErrConflict
			}
			batch[h] = models.BackupCode{UserID: userID, CodeHash: h, CreatedAt: at}
		}
		s.backupCodes[userID] = batch
		return nil
	})
}

func (r *backupCodeRepo) Consume(_ context.Context, userID, hash string, at time.Time) (bool, error) {
	var ok bool
	err := r.do(func(s *state) error {
		code, found := s.backupCodes[userID][hash]
		if !found || code.UsedAt != nil {
			return nil
		}
		code.UsedAt = &at
		s.backupCodes[userID][hash] = code
		ok = true
		return nil
	})
	return ok, err
}

func (r *backupCodeRepo) CountUnused(_ context.Context, userID string) (int, error) {
	var n int
	err := r.do(func(s *state) error {
		for _, c := range s.backupCodes[userID] {
			if c.UsedAt == nil {
				n++
			}
		}
		return nil
	})
	return n, err
}

type challengeRepo struct{ do access }

func (r *challengeRepo) Create(_ context.Context, c *models.Challenge) error {
	return r.do(func(s *state) error {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if _, dup := s.challenges[c.ID]; dup {
			return common.ErrConflict
		}
		s.challenges[c.ID] = *c
		return nil
	})
}

func (r *challengeRepo) Consume(_ context.Context, id string, now time.Time) (*models.Challenge, error) {
	var out models.Challenge
	err := r.do(func(s *state) error {
		c, ok := s.challenges[id]
		if !ok || !c.ExpiresAt.After(now) {
			return common.ErrorNotFound
		}
		delete(s.challenges, id)
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *challengeRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	err := r.do(func(s *state) error {
		for id, c := range s.challenges {
			if !c.ExpiresAt.After(now) {
				delete(s.challenges, id)
				n++
			}
		}
		return nil
	})
	return n, err
}
