package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/delivery"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/gatekeeper/internal/server/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecovery_MagicLinkThenReenroll(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	_, enr := f.registerTOTP(t, "yara01", "yara@example.com", RecoveryPreference{Contact: "+1 555-000-9876"})

	require.NoError(t, f.Recovery.Request(ctx, "yara01"))
	require.Equal(t, 2, f.outbox.count())
	last := f.outbox.msgs[1]
	assert.Equal(t, delivery.KindSMS, last.ch.Kind)
	assert.Equal(t, "+15550009876", last.ch.Address)
	assert.True(t, strings.HasPrefix(last.msg.Link, "https://media.example/auth/recover?token="))

	res, err := f.Recovery.RedeemLink(ctx, f.outbox.lastToken(t), sessions.Metadata{})
	require.NoError(t, err)
	assert.Equal(t, enr.UserID, res.UserID)
	assert.NotEmpty(t, res.SessionToken)
	assert.Empty(t, res.BackupCodes)

	_, err = f.sessions.Validate(ctx, enr.SessionToken)
	assert.ErrorIs(t, err, common.ErrSessionSuperseded)

	choice, err := f.Registration.ChooseMethod(ctx, res.Continuation, models.MethodFIDO2)
	require.NoError(t, err)
	re, err := f.Registration.Complete(ctx, choice.Continuation, keyAnswer(true, 1), RecoveryPreference{}, sessions.Metadata{})
	require.NoError(t, err)
	assert.Equal(t, enr.UserID, re.UserID)
	assert.Empty(t, re.BackupCodes, "re-enrollment keeps the existing batch")

	u, err := f.store.Repos().Users.GetByID(ctx, enr.UserID)
	require.NoError(t, err)
	assert.Equal(t, models.MethodFIDO2, u.Method)
	assert.True(t, u.RecoveryEnabled, "contact survives re-enrollment")

	_, err = f.keyLogin(t, "yara01", true, 2)
	require.NoError(t, err)

	n, err := f.Account.RemainingBackupCodes(ctx, enr.UserID)
	require.NoError(t, err)
	assert.Equal(t, BackupCodeCount, n)
}

func TestRecovery_LinkIsSingleUse(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.registerTOTP(t, "zack01", "zack@example.com", RecoveryPreference{Contact: "zack@example.org"})

	require.NoError(t, f.Recovery.Request(ctx, "zack01"))
	tok := f.outbox.lastToken(t)

	_, err := f.Recovery.RedeemLink(ctx, tok, sessions.Metadata{})
	require.NoError(t, err)
	_, err = f.Recovery.RedeemLink(ctx, tok, sessions.Metadata{})
	assert.ErrorIs(t, err, common.ErrExpiredOrNotFound)
}

func TestRecovery_NewRequestReplacesLink(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.registerTOTP(t, "abby01", "abby@example.com", RecoveryPreference{Contact: "abby@example.org"})

	require.NoError(t, f.Recovery.Request(ctx, "abby01"))
	first := f.outbox.lastToken(t)
	require.NoError(t, f.Recovery.Request(ctx, "abby01"))

	_, err := f.Recovery.RedeemLink(ctx, first, sessions.Metadata{})
	assert.ErrorIs(t, err, common.ErrExpiredOrNotFound)
	_, err = f.Recovery.RedeemLink(ctx, f.outbox.lastToken(t), sessions.Metadata{})
	assert.NoError(t, err)
}

func TestRecovery_LinkExpires(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.registerTOTP(t, "bert01", "bert@example.com", RecoveryPreference{Contact: "bert@example.org"})

	require.NoError(t, f.Recovery.Request(ctx, "bert01"))
	f.clock.Advance(15*time.Minute + time.Second)

	_, err := f.Recovery.RedeemLink(ctx, f.outbox.lastToken(t), sessions.Metadata{})
	assert.ErrorIs(t, err, common.ErrExpiredOrNotFound)
}

func TestRecovery_RequestIsSilent(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.registerTOTP(t, "cleo01", "cleo@example.com", RecoveryPreference{})
	f.registerTOTP(t, "dina01", "dina@example.com", RecoveryPreference{Contact: "dina@example.org"})
	require.NoError(t, f.Admin.Disable(ctx, "dina01"))
	before := f.outbox.count()

	for _, h := range []string{"cleo01", "nobody1", "dina01"} {
		assert.NoError(t, f.Recovery.Request(ctx, h), h)
	}
	assert.Equal(t, before, f.outbox.count(), "nothing may be sent")
}

// downUsers fails every handle lookup like an unreachable database.
type downUsers struct {
	users.Repository
}

func (downUsers) GetByHandle(context.Context, string) (*models.User, error) {
	return nil, errors.New("dial tcp 127.0.0.1:5432: connection refused")
}

type downStore struct {
	repomanager.RepositoryManager
}

func (d downStore) Repos() repomanager.Repositories {
	r := d.RepositoryManager.Repos()
	r.Users = downUsers{r.Users}
	return r
}

func TestRecovery_RequestFailsWhenStoreIsDown(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.registerTOTP(t, "bob12", "bob@example.com", RecoveryPreference{Contact: "bob@example.org"})
	before := f.outbox.count()

	f.Recovery.Store = downStore{f.store}

	err := f.Recovery.Request(ctx, "bob12")
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection refused")
	assert.NotErrorIs(t, err, common.ErrInvalidOrExpired)
	assert.Equal(t, before, f.outbox.count())
}

func TestRecovery_BackupCode(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	secret, enr := f.registerTOTP(t, "eve001", "eve@example.com", RecoveryPreference{})
	login := f.loginTOTP(t, "eve001", secret)

	code := strings.ToLower(strings.ReplaceAll(enr.BackupCodes[3], "-", " "))
	res, err := f.Recovery.RedeemBackupCode(ctx, "eve001", code)
	require.NoError(t, err)
	assert.Equal(t, enr.UserID, res.UserID)
	assert.Empty(t, res.SessionToken)
	assert.NotEmpty(t, res.Continuation)
	require.Len(t, res.BackupCodes, BackupCodeCount)

	_, err = f.sessions.Validate(ctx, login.SessionToken)
	assert.ErrorIs(t, err, common.ErrExpiredOrNotFound)

	for _, old := range enr.BackupCodes {
		_, err := f.Recovery.RedeemBackupCode(ctx, "eve001", old)
		assert.ErrorIs(t, err, common.ErrBackupCodeInvalid)
	}

	choice, err := f.Registration.ChooseMethod(ctx, res.Continuation, models.MethodTOTP)
	require.NoError(t, err)
	newSecret := decodeChoice(t, choice)
	re, err := f.Registration.Complete(ctx, choice.Continuation, codeFor(newSecret, f.totp, f.clock.Now()), RecoveryPreference{Contact: "eve@example.org"}, sessions.Metadata{})
	require.NoError(t, err)

	u, err := f.store.Repos().Users.GetByID(ctx, enr.UserID)
	require.NoError(t, err)
	assert.True(t, u.RecoveryEnabled)

	_, err = f.sessions.Validate(ctx, re.SessionToken)
	require.NoError(t, err)

	f.clock.Advance(30 * time.Second)
	ch, err := f.Login.Challenge(ctx, "eve001")
	require.NoError(t, err)
	_, err = f.Login.Complete(ctx, ch.ChallengeID, codeFor(secret, f.totp, f.clock.Now()), sessions.Metadata{})
	assert.ErrorIs(t, err, common.ErrCodeMismatch, "old secret is gone")

	f.loginTOTP(t, "eve001", newSecret)
}

func TestRecovery_BackupCodeRevokesPendingLinks(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	_, enr := f.registerTOTP(t, "finn01", "finn@example.com", RecoveryPreference{Contact: "finn@example.org"})

	require.NoError(t, f.Recovery.Request(ctx, "finn01"))
	link := f.outbox.lastToken(t)

	_, err := f.Recovery.RedeemBackupCode(ctx, "finn01", enr.BackupCodes[0])
	require.NoError(t, err)

	_, err = f.Recovery.RedeemLink(ctx, link, sessions.Metadata{})
	assert.ErrorIs(t, err, common.ErrExpiredOrNotFound)
}

func TestRecovery_BackupCodeRejections(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	_, enr := f.registerTOTP(t, "gabe01", "gabe@example.com", RecoveryPreference{})
	_, other := f.registerTOTP(t, "hank01", "hank@example.com", RecoveryPreference{})

	tests := []struct {
		name    string
		handle  string
		code    string
		wantErr error
	}{
		{"unknown handle", "nobody1", enr.BackupCodes[0], common.ErrBackupCodeInvalid},
		{"other user's code", "gabe01", other.BackupCodes[0], common.ErrBackupCodeInvalid},
		{"garbage", "gabe01", "AAAA-AAAA", common.ErrBackupCodeInvalid},
		{"empty", "gabe01", "", common.ErrBackupCodeInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.Recovery.RedeemBackupCode(ctx, tt.handle, tt.code)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, common.Public(err), common.ErrInvalidOrExpired)
		})
	}

	require.NoError(t, f.Admin.Disable(ctx, "gabe01"))
	_, err := f.Recovery.RedeemBackupCode(ctx, "gabe01", enr.BackupCodes[0])
	assert.ErrorIs(t, err, common.ErrAccountDisabled)
}

func TestRecovery_ConcurrentBackupCode(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	_, enr := f.registerTOTP(t, "iris01", "iris@example.com", RecoveryPreference{})

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.Recovery.RedeemBackupCode(ctx, "iris01", enr.BackupCodes[0]); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}

func TestRecovery_ReenrollContinuationIsBoundToUser(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	_, enr := f.registerTOTP(t, "jack01", "jack@example.com", RecoveryPreference{})

	res, err := f.Recovery.RedeemBackupCode(ctx, "jack01", enr.BackupCodes[0])
	require.NoError(t, err)
	choice, err := f.Registration.ChooseMethod(ctx, res.Continuation, models.MethodFIDO2)
	require.NoError(t, err)

	require.NoError(t, f.Admin.DeleteUser(ctx, "jack01"))
	_, err = f.Registration.Complete(ctx, choice.Continuation, keyAnswer(true, 1), RecoveryPreference{}, sessions.Metadata{})
	assert.Error(t, err)

	exists, err := f.store.Repos().Users.HandleExists(ctx, "jack01")
	require.NoError(t, err)
	assert.False(t, exists)
}
