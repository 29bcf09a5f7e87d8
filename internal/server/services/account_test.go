package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_Me(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	_, enr := f.registerTOTP(t, "sara01", "sara@example.com", RecoveryPreference{})

	me, err := f.Account.Me(ctx, enr.UserID)
	require.NoError(t, err)
	assert.Equal(t, "sara01", me.Handle)
	assert.True(t, me.CanDownload)
	assert.False(t, me.IsAdmin)
	assert.Equal(t, BackupCodeCount, me.RemainingBackupCodes)
	assert.Equal(t, f.clock.Now(), me.CreatedAt)
}

func TestAccount_BackupCodes(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	_, enr := f.registerTOTP(t, "tom001", "tom@example.com", RecoveryPreference{})

	res, err := f.Recovery.RedeemBackupCode(ctx, "tom001", enr.BackupCodes[0])
	require.NoError(t, err)
	n, err := f.Account.RemainingBackupCodes(ctx, enr.UserID)
	require.NoError(t, err)
	assert.Equal(t, BackupCodeCount, n, "redemption issues a full batch")

	_, err = f.Recovery.RedeemBackupCode(ctx, "tom001", res.BackupCodes[1])
	require.NoError(t, err)

	codes, err := f.Account.RegenerateBackupCodes(ctx, enr.UserID)
	require.NoError(t, err)
	assert.Len(t, codes, BackupCodeCount)
	assert.NotEqual(t, res.BackupCodes, codes)
}

func TestAccount_UpdateRecoveryContact(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	_, enr := f.registerTOTP(t, "ursa01", "ursa@example.com", RecoveryPreference{})

	assert.ErrorIs(t, f.Account.UpdateRecoveryContact(ctx, enr.UserID, "nope"), common.ErrContactInvalid)

	require.NoError(t, f.Account.UpdateRecoveryContact(ctx, enr.UserID, "ursa@example.org"))
	me, err := f.Account.Me(ctx, enr.UserID)
	require.NoError(t, err)
	assert.True(t, me.RecoveryEnabled)
	assert.False(t, f.storeHolds("ursa@example.org"))

	sent := f.outbox.count()
	require.NoError(t, f.Recovery.Request(ctx, "ursa01"))
	require.Equal(t, sent+1, f.outbox.count())
	assert.Equal(t, "ursa@example.org", f.outbox.msgs[sent].ch.Address)

	require.NoError(t, f.Account.UpdateRecoveryContact(ctx, enr.UserID, ""))
	me, err = f.Account.Me(ctx, enr.UserID)
	require.NoError(t, err)
	assert.False(t, me.RecoveryEnabled)
}
