package services

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/delivery"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/dmitrijs2005/gatekeeper/internal/server/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codeFormat = regexp.MustCompile(`^[A-HJ-NP-Z2-9]{4}-[A-HJ-NP-Z2-9]{4}-[A-HJ-NP-Z2-9]{4}-[A-HJ-NP-Z2-9]{4}$`)

func TestRegistration_TimeCodeScenario(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	secret, enr := f.registerTOTP(t, "bob12", "bob@example.com", RecoveryPreference{})

	require.Equal(t, 1, f.outbox.count())
	assert.Equal(t, delivery.KindEmail, f.outbox.msgs[0].ch.Kind)
	assert.True(t, strings.HasPrefix(f.outbox.msgs[0].msg.Link, "https://media.example/auth/verify?token="))

	require.Len(t, enr.BackupCodes, BackupCodeCount)
	seen := map[string]bool{}
	for _, c := range enr.BackupCodes {
		assert.Regexp(t, codeFormat, c)
		seen[c] = true
	}
	assert.Len(t, seen, BackupCodeCount)

	v, err := f.sessions.Validate(ctx, enr.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, enr.UserID, v.UserID)

	u, err := f.store.Repos().Users.GetByHandle(ctx, "bob12")
	require.NoError(t, err)
	assert.Equal(t, models.MethodTOTP, u.Method)
	assert.False(t, u.RecoveryEnabled)
	assert.Nil(t, u.RecoveryContact)

	assert.False(t, f.storeHolds("bob@example.com"), "contact must not reach the store")
	assert.False(t, f.storeHolds(f.outbox.lastToken(t)), "plaintext token must not reach the store")
	for _, c := range enr.BackupCodes {
		assert.False(t, f.storeHolds(c))
	}

	res := f.loginTOTP(t, "bob12", secret)
	assert.Equal(t, enr.UserID, res.UserID)

	_, err = f.sessions.Validate(ctx, enr.SessionToken)
	assert.ErrorIs(t, err, common.ErrSessionSuperseded)
	_, err = f.sessions.Validate(ctx, res.SessionToken)
	assert.NoError(t, err)
}

func TestRegistration_StartValidation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.registerTOTP(t, "alice01", "alice@example.com", RecoveryPreference{})

	tests := []struct {
		name    string
		handle  string
		contact string
		wantErr error
	}{
		{"too short", "abcd", "x@example.com", common.ErrHandleInvalid},
		{"too long", "abcdefghijklmnopq", "x@example.com", common.ErrHandleInvalid},
		{"control char", "abc\x01def", "x@example.com", common.ErrHandleInvalid},
		{"non ascii", "bjørnsen", "x@example.com", common.ErrHandleInvalid},
		{"taken", "alice01", "x@example.com", common.ErrHandleTaken},
		{"bad contact", "carol99", "not-a-contact", common.ErrContactInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.Registration.Start(ctx, tt.handle, tt.contact)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// case-sensitive
	assert.NoError(t, f.Registration.Start(ctx, "Alice01", "x@example.com"))
	// 16 printable characters including a space
	assert.NoError(t, f.Registration.Start(ctx, "a b!c#d$e%f&g*h+", "+15550001234"))
}

func TestRegistration_VerifyIsSingleUse(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, f.Registration.Start(ctx, "dave01", "dave@example.com"))
	tok := f.outbox.lastToken(t)

	_, err := f.Registration.Verify(ctx, tok)
	require.NoError(t, err)
	_, err = f.Registration.Verify(ctx, tok)
	assert.ErrorIs(t, err, common.ErrExpiredOrNotFound)
	assert.ErrorIs(t, common.Public(err), common.ErrInvalidOrExpired)
}

func TestRegistration_VerifyExpired(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, f.Registration.Start(ctx, "erin01", "erin@example.com"))
	tok := f.outbox.lastToken(t)
	f.clock.Advance(16 * time.Minute)

	_, err := f.Registration.Verify(ctx, tok)
	assert.ErrorIs(t, err, common.ErrExpiredOrNotFound)
}

func TestRegistration_RestartReplacesPending(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, f.Registration.Start(ctx, "frank1", "frank@example.com"))
	first := f.outbox.lastToken(t)
	require.NoError(t, f.Registration.Start(ctx, "frank1", "frank@example.com"))
	second := f.outbox.lastToken(t)

	_, err := f.Registration.Verify(ctx, first)
	assert.ErrorIs(t, err, common.ErrExpiredOrNotFound)
	_, err = f.Registration.Verify(ctx, second)
	assert.NoError(t, err)
}

func TestRegistration_StagesEnforced(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, f.Registration.Start(ctx, "grace1", "grace@example.com"))
	cont, err := f.Registration.Verify(ctx, f.outbox.lastToken(t))
	require.NoError(t, err)

	_, err = f.Registration.Complete(ctx, cont, keyAnswer(true, 1), RecoveryPreference{}, sessions.Metadata{})
	assert.ErrorIs(t, err, common.ErrExpiredOrNotFound, "cannot skip method choice")

	_, err = f.Registration.ChooseMethod(ctx, cont, models.AuthMethod("sms"))
	assert.ErrorIs(t, err, common.ErrUnsupportedMethod)

	choice, err := f.Registration.ChooseMethod(ctx, cont, models.MethodFIDO2)
	require.NoError(t, err)
	_, err = f.Registration.ChooseMethod(ctx, choice.Continuation, models.MethodFIDO2)
	assert.ErrorIs(t, err, common.ErrExpiredOrNotFound, "method already chosen")
}

func TestRegistration_ChallengeConsumedOnFailure(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, f.Registration.Start(ctx, "heidi1", "heidi@example.com"))
	cont, err := f.Registration.Verify(ctx, f.outbox.lastToken(t))
	require.NoError(t, err)
	choice, err := f.Registration.ChooseMethod(ctx, cont, models.MethodFIDO2)
	require.NoError(t, err)

	_, err = f.Registration.Complete(ctx, choice.Continuation, keyAnswer(false, 1), RecoveryPreference{}, sessions.Metadata{})
	assert.ErrorIs(t, err, common.ErrSignatureInvalid)

	_, err = f.Registration.Complete(ctx, choice.Continuation, keyAnswer(true, 1), RecoveryPreference{}, sessions.Metadata{})
	assert.ErrorIs(t, err, common.ErrChallengeExpired)

	exists, err := f.store.Repos().Users.HandleExists(ctx, "heidi1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRegistration_ChallengeExpires(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, f.Registration.Start(ctx, "ivan01", "ivan@example.com"))
	cont, err := f.Registration.Verify(ctx, f.outbox.lastToken(t))
	require.NoError(t, err)
	choice, err := f.Registration.ChooseMethod(ctx, cont, models.MethodFIDO2)
	require.NoError(t, err)

	f.clock.Advance(6 * time.Minute)
	_, err = f.Registration.Complete(ctx, choice.Continuation, keyAnswer(true, 1), RecoveryPreference{}, sessions.Metadata{})
	assert.ErrorIs(t, err, common.ErrChallengeExpired)
}

func TestRegistration_HandleTakenAtCompletion(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, f.Registration.Start(ctx, "judy01", "judy@example.com"))
	contA, err := f.Registration.Verify(ctx, f.outbox.lastToken(t))
	require.NoError(t, err)
	choiceA, err := f.Registration.ChooseMethod(ctx, contA, models.MethodFIDO2)
	require.NoError(t, err)

	f.registerKey(t, "judy01", 1)

	_, err = f.Registration.Complete(ctx, choiceA.Continuation, keyAnswer(true, 1), RecoveryPreference{}, sessions.Metadata{})
	assert.ErrorIs(t, err, common.ErrHandleTaken)
}

func TestRegistration_RecoveryContactIsSealed(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, enr := f.registerTOTP(t, "kate01", "kate@example.com", RecoveryPreference{Contact: "kate.recovery@example.com"})

	u, err := f.store.Repos().Users.GetByID(ctx, enr.UserID)
	require.NoError(t, err)
	assert.True(t, u.RecoveryEnabled)
	assert.NotEmpty(t, u.RecoveryContact)
	assert.False(t, f.storeHolds("kate.recovery@example.com"))
	assert.False(t, f.storeHolds("kate@example.com"))
}

func TestRegistration_InvalidRecoveryContactKeepsChallenge(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	require.NoError(t, f.Registration.Start(ctx, "leo001", "leo@example.com"))
	cont, err := f.Registration.Verify(ctx, f.outbox.lastToken(t))
	require.NoError(t, err)
	choice, err := f.Registration.ChooseMethod(ctx, cont, models.MethodFIDO2)
	require.NoError(t, err)

	_, err = f.Registration.Complete(ctx, choice.Continuation, keyAnswer(true, 1), RecoveryPreference{Contact: "nope"}, sessions.Metadata{})
	assert.ErrorIs(t, err, common.ErrContactInvalid)

	_, err = f.Registration.Complete(ctx, choice.Continuation, keyAnswer(true, 1), RecoveryPreference{}, sessions.Metadata{})
	assert.NoError(t, err)
}

func TestRegistration_CancelledLeavesNoUser(t *testing.T) {
	f := setup(t)

	require.NoError(t, f.Registration.Start(context.Background(), "mia001", "mia@example.com"))
	cont, err := f.Registration.Verify(context.Background(), f.outbox.lastToken(t))
	require.NoError(t, err)
	choice, err := f.Registration.ChooseMethod(context.Background(), cont, models.MethodFIDO2)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.Registration.Complete(ctx, choice.Continuation, keyAnswer(true, 1), RecoveryPreference{}, sessions.Metadata{})
	assert.ErrorIs(t, err, context.Canceled)

	exists, err := f.store.Repos().Users.HandleExists(context.Background(), "mia001")
	require.NoError(t, err)
	assert.False(t, exists)
}
