package memory

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/google/uuid"
)

type sessionRepo struct{ do access }

func (r *sessionRepo) Create(_ context.Context, sess *models.Session) error {
	return r.do(func(s *state) error {
		if _, ok := s.users[sess.UserID]; !ok {
			return common.ErrConflict
		}
		if _, dup := s.sessionByHash[sess.TokenHash]; dup {
			return common.ErrConflict
		}
		for _, other := range s.sessions {
			if other.UserID == sess.UserID && other.Live() {
				return common.ErrConflict
			}
		}
		if sess.ID == "" {
			sess.ID = uuid.NewString()
		}
		s.sessions[sess.ID] = *sess
		s.sessionByHash[sess.TokenHash] = sess.ID
		return nil
	})
}

func (r *sessionRepo) get(match func(models.Session) bool) (*models.Session, error) {
	var out models.Session
	err := r.do(func(s *state) error {
		for _, sess := range s.sessions {
			if match(sess) {
				out = sess
				return nil
			}
		}
		return common.ErrorNotFound
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *sessionRepo) GetByTokenHash(_ context.Context, tokenHash string) (*models.Session, error) {
	var out models.Session
	err := r.do(func(s *state) error {
		id, ok := s.sessionByHash[tokenHash]
		if !ok {
			return common.ErrorNotFound
		}
		out = s.sessions[id]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *sessionRepo) GetActiveByUserID(_ context.Context, userID string) (*models.Session, error) {
	return r.get(func(sess models.Session) bool { return sess.UserID == userID && sess.Live() })
}

func (r *sessionRepo) Touch(_ context.Context, id string, at time.Time) error {
	return r.do(func(s *state) error {
		sess, ok := s.sessions[id]
		if ok && sess.Live() && sess.LastActivityAt.Before(at) {
			sess.LastActivityAt = at
			s.sessions[id] = sess
		}
		return nil
	})
}

func (r *sessionRepo) terminate(match func(models.Session) bool, reason string, at time.Time) (int64, error) {
	var n int64
	err := r.do(func(s *state) error {
		for id, sess := range s.sessions {
			if !sess.Live() || !match(sess) {
				continue
			}
			sess.TerminatedAt = &at
			sess.TerminationReason = reason
			s.sessions[id] = sess
			n++
		}
		return nil
	})
	return n, err
}

func (r *sessionRepo) TerminateAllForUser(_ context.Context, userID, reason string, at time.Time) (int64, error) {
	return r.terminate(func(sess models.Session) bool { return sess.UserID == userID }, reason, at)
}

func (r *sessionRepo) TerminateByTokenHash(_ context.Context, tokenHash, reason string, at time.Time) (bool, error) {
	n, err := r.terminate(func(sess models.Session) bool { return sess.TokenHash == tokenHash }, reason, at)
	return n > 0, err
}

func (r *sessionRepo) DeleteStale(_ context.Context, idleCutoff, now, retentionCutoff time.Time) (int64, error) {
	var n int64
	err := r.do(func(s *state) error {
		for id, sess := range s.sessions {
			var stale bool
			if sess.Live() {
				stale = sess.LastActivityAt.Before(idleCutoff) ||
					(sess.ExpiresAt != nil && !sess.ExpiresAt.After(now))
			} else {
				stale = sess.TerminatedAt.Before(retentionCutoff)
			}
			if stale {
				delete(s.sessions, id)
				delete(s.sessionByHash, sess.TokenHash)
				n++
			}
		}
		return nil
	})
	return n, err
}
