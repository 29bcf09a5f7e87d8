package sweeper

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/memory"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*Sweeper, *memory.Manager, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(t0)
	store := memory.NewManager()
	s := New(store, clock, Config{Interval: 5 * time.Minute, SessionGrace: 30 * time.Minute, Retention: 24 * time.Hour}, logging.NewDiscard())
	return s, store, clock
}

func seed(t *testing.T, store *memory.Manager, now time.Time) {
	t.Helper()
	ctx := context.Background()
	repos := store.Repos()

	u, err := repos.Users.Create(ctx, &models.User{Handle: "alice", Method: models.MethodTOTP, CreatedAt: now})
	require.NoError(t, err)
	v, err := repos.Users.Create(ctx, &models.User{Handle: "bobby", Method: models.MethodTOTP, CreatedAt: now})
	require.NoError(t, err)

	require.NoError(t, repos.Pending.Create(ctx, &models.PendingToken{
		Purpose: models.PurposeRegistration, TokenHash: "reg-old", Subject: "carol", ExpiresAt: now.Add(-time.Second), CreatedAt: now,
	}))
	require.NoError(t, repos.Pending.Create(ctx, &models.PendingToken{
		Purpose: models.PurposeRecovery, TokenHash: "rec-live", Subject: u.ID, ExpiresAt: now.Add(10 * time.Minute), CreatedAt: now,
	}))

	require.NoError(t, repos.Challenges.Create(ctx, &models.Challenge{
		ID: "old", Method: models.MethodTOTP, Ceremony: models.CeremonyLogin, ExpiresAt: now.Add(-time.Minute), CreatedAt: now,
	}))
	require.NoError(t, repos.Challenges.Create(ctx, &models.Challenge{
		ID: "live", Method: models.MethodTOTP, Ceremony: models.CeremonyLogin, ExpiresAt: now.Add(time.Minute), CreatedAt: now,
	}))

	// idle past grace
	require.NoError(t, repos.Sessions.Create(ctx, &models.Session{
		ID: "idle", UserID: u.ID, TokenHash: "h-idle", CreatedAt: now.Add(-time.Hour), LastActivityAt: now.Add(-31 * time.Minute),
	}))
	// recently active
	require.NoError(t, repos.Sessions.Create(ctx, &models.Session{
		ID: "fresh", UserID: v.ID, TokenHash: "h-fresh", CreatedAt: now, LastActivityAt: now.Add(-29 * time.Minute),
	}))
}

func TestSweep(t *testing.T) {
	s, store, clock := setup(t)
	ctx := context.Background()
	seed(t, store, clock.Now())

	res, err := s.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{Pending: 1, Challenges: 1, Sessions: 1}, res)

	repos := store.Repos()
	_, err = repos.Sessions.GetByTokenHash(ctx, "h-idle")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = repos.Sessions.GetByTokenHash(ctx, "h-fresh")
	assert.NoError(t, err)
	_, err = repos.Challenges.Consume(ctx, "live", clock.Now())
	assert.NoError(t, err)

	again, err := s.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, again.Total(), "second pass finds nothing")
}

func TestSweep_TerminatedRetention(t *testing.T) {
	s, store, clock := setup(t)
	ctx := context.Background()
	repos := store.Repos()

	u, err := repos.Users.Create(ctx, &models.User{Handle: "alice", Method: models.MethodTOTP, CreatedAt: t0})
	require.NoError(t, err)
	require.NoError(t, repos.Sessions.Create(ctx, &models.Session{
		ID: "s1", UserID: u.ID, TokenHash: "h1", CreatedAt: t0, LastActivityAt: t0,
	}))
	_, err = repos.Sessions.TerminateByTokenHash(ctx, "h1", models.TerminationLogout, t0)
	require.NoError(t, err)

	clock.Advance(23 * time.Hour)
	res, err := s.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, res.Sessions, "terminated rows are kept within retention")

	clock.Advance(2 * time.Hour)
	res, err = s.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Sessions)
}

func TestRun_SweepsOnTick(t *testing.T) {
	s, store, clock := setup(t)
	seed(t, store, clock.Now())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	clock.BlockUntil(1)
	clock.Advance(5 * time.Minute)

	assert.Eventually(t, func() bool {
		_, err := store.Repos().Sessions.GetByTokenHash(context.Background(), "h-idle")
		return err != nil
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop")
	}
}
