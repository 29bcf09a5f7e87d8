// Package sweeper removes rows that can no longer be redeemed: expired pending
// tokens and challenges, grace-expired sessions and terminated sessions past
// retention. Every pass is idempotent, so several replicas may sweep the same
// store.
package sweeper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/repomanager"
	"github.com/jonboulle/clockwork"
)

type Config struct {
	Interval time.Duration
	// SessionGrace matches the session manager's grace period.
	SessionGrace time.Duration
	// Retention keeps terminated sessions around for diagnostics.
	Retention time.Duration
}

// Result counts the rows removed by one pass.
type Result struct {
	Pending    int64
	Challenges int64
	Sessions   int64
}

func (r Result) Total() int64 {
	return r.Pending + r.Challenges + r.Sessions
}

type Sweeper struct {
	store repomanager.RepositoryManager
	clock clockwork.Clock
	cfg   Config
	log   logging.Logger
}

func New(store repomanager.RepositoryManager, clock clockwork.Clock, cfg Config, log logging.Logger) *Sweeper {
	return &Sweeper{store: store, clock: clock, cfg: cfg, log: log.With("module", "sweeper")}
}

// Sweep runs one pass. A failing step does not stop the others.
func (s *Sweeper) Sweep(ctx context.Context) (Result, error) {
	var (
		res  Result
		errs []error
	)
	repos := s.store.Repos()
	now := s.clock.Now()

	step := func(name string, n *int64, fn func() (int64, error)) {
		deleted, err := fn()
		if err != nil {
			errs = append(errs, fmt.Errorf("sweep %s: %w", name, err))
			return
		}
		*n = deleted
	}

	step("pending tokens", &res.Pending, func() (int64, error) {
		return repos.Pending.DeleteExpired(ctx, now)
	})
	step("challenges", &res.Challenges, func() (int64, error) {
		return repos.Challenges.DeleteExpired(ctx, now)
	})
	step("sessions", &res.Sessions, func() (int64, error) {
		return repos.Sessions.DeleteStale(ctx, now.Add(-s.cfg.SessionGrace), now, now.Add(-s.cfg.Retention))
	})

	return res, errors.Join(errs...)
}

// Run sweeps every Interval until ctx is done.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := s.clock.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	s.log.Info(ctx, "sweeper started", "interval", s.cfg.Interval)
	for {
		select {
		case <-ticker.Chan():
			res, err := s.Sweep(ctx)
			if err != nil {
				s.log.Error(ctx, "sweep failed", "error", err)
			}
			if res.Total() > 0 {
				s.log.Info(ctx, "sweep done",
					"pending", res.Pending,
					"challenges", res.Challenges,
					"sessions", res.Sessions,
				)
			}
		case <-ctx.Done():
			s.log.Info(ctx, "sweeper stopped")
			return
		}
	}
}
