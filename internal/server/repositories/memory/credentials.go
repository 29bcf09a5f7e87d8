package memory

import (
	"context"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
)

type credentialRepo struct{ do access }

func (r *credentialRepo) Create(_ context.Context, c *models.Credential) error {
	return r.do(func(s *state) error {
		if _, ok := s.users[c.UserID]; !ok {
			return common.ErrConflict
		}
		if _, dup := s.credentials[c.UserID]; dup {
			return common.ErrConflict
		}
		s.credentials[c.UserID] = *c
		return nil
	})
}

func (r *credentialRepo) GetByUserID(_ context.Context, userID string) (*models.Credential, error) {
	var out models.Credential
	err := r.do(func(s *state) error {
		c, ok := s.credentials[userID]
		if !ok {
			return common.ErrorNotFound
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *credentialRepo) Replace(_ context.Context, c *models.Credential) error {
	return r.do(func(s *state) error {
		if _, ok := s.users[c.UserID]; !ok {
			return common.ErrConflict
		}
		s.credentials[c.UserID] = *c
		return nil
	})
}

func (r *credentialRepo) AdvanceReplayCounter(_ context.Context, userID string, next int64) (bool, error) {
	var advanced bool
	err := r.do(func(s *state) error {
		c, ok := s.credentials[userID]
		if !ok || c.ReplayCounter >= next {
			return nil
		}
		c.ReplayCounter = next
		s.credentials[userID] = c
		advanced = true
		return nil
	})
	return advanced, err
}
