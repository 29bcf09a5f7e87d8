package memory

import (
	"context"
	"sort"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/google/uuid"
)

type userRepo struct{ do access }

func (r *userRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	err := r.do(func(s *state) error {
		if _, taken := s.handles[user.Handle]; taken {
			return common.ErrConflict
		}
		if user.ID == "" {
			user.ID = uuid.NewString()
		}
		if _, dup := s.users[user.ID]; dup {
			return common.ErrConflict
		}
		user.RecoveryEnabled = user.RecoveryContact != nil
		s.users[user.ID] = *user
		s.handles[user.Handle] = user.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	var out models.User
	err := r.do(func(s *state) error {
		u, ok := s.users[id]
		if !ok {
			return common.ErrorNotFound
		}
		out = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *userRepo) GetByHandle(ctx context.Context, handle string) (*models.User, error) {
	var id string
	err := r.do(func(s *state) error {
		var ok bool
		if id, ok = s.handles[handle]; !ok {
			return common.ErrorNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *userRepo) HandleExists(_ context.Context, handle string) (bool, error) {
	var exists bool
	err := r.do(func(s *state) error {
		_, exists = s.handles[handle]
		return nil
	})
	return exists, err
}

func (r *userRepo) List(_ context.Context) ([]*models.User, error) {
	var out []*models.User
	err := r.do(func(s *state) error {
		for _, u := range s.users {
			u := u
			out = append(out, &u)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Handle < out[j].Handle })
	return out, err
}

func (r *userRepo) mutate(id string, fn func(u *models.User)) error {
	return r.do(func(s *state) error {
		u, ok := s.users[id]
		if !ok {
			return common.ErrorNotFound
		}
		fn(&u)
		s.users[id] = u
		return nil
	})
}

func (r *userRepo) SetDisabled(_ context.Context, id string, disabled bool) error {
	return r.mutate(id, func(u *models.User) { u.Disabled = disabled })
}

func (r *userRepo) SetDownload(_ context.Context, id string, allowed bool) error {
	return r.mutate(id, func(u *models.User) { u.CanDownload = allowed })
}

func (r *userRepo) SetAdmin(_ context.Context, id string, admin bool) error {
	return r.mutate(id, func(u *models.User) { u.IsAdmin = admin })
}

func (r *userRepo) SetRecoveryContact(_ context.Context, id string, sealed []byte) error {
	return r.mutate(id, func(u *models.User) {
		u.RecoveryContact = sealed
		u.RecoveryEnabled = sealed != nil
	})
}

func (r *userRepo) SetMethod(_ context.Context, id string, method models.AuthMethod) error {
	return r.mutate(id, func(u *models.User) { u.Method = method })
}

func (r *userRepo) TouchLogin(_ context.Context, id string, at time.Time) error {
	return r.mutate(id, func(u *models.User) { u.LastLoginAt = &at })
}

// Delete cascades to every row the user owns.
func (r *userRepo) Delete(_ context.Context, id string) error {
	return r.do(func(s *state) error {
		u, ok := s.users[id]
		if !ok {
			return common.ErrorNotFound
		}
		delete(s.users, id)
		delete(s.handles, u.Handle)
		delete(s.credentials, id)
		delete(s.backupCodes, id)
		for sid, sess := range s.sessions {
			if sess.UserID == id {
				delete(s.sessions, sid)
				delete(s.sessionByHash, sess.TokenHash)
			}
		}
		for hash, p := range s.pending[models.PurposeRecovery] {
			if p.Subject == id {
				delete(s.pending[models.PurposeRecovery], hash)
			}
		}
		for cid, c := range s.challenges {
			if c.UserID == id {
				delete(s.challenges, cid)
			}
		}
		return nil
	})
}
