package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/cryptox"
	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/continuation"
	"github.com/dmitrijs2005/gatekeeper/internal/server/delivery"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/memory"
	"github.com/dmitrijs2005/gatekeeper/internal/server/sessions"
	"github.com/dmitrijs2005/gatekeeper/internal/server/tokens"
	"github.com/dmitrijs2005/gatekeeper/internal/server/verifiers"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

type sent struct {
	ch  delivery.Channel
	msg delivery.Message
}

// outbox records dispatched messages synchronously.
type outbox struct {
	mu   sync.Mutex
	msgs []sent
}

func (o *outbox) Dispatch(_ context.Context, ch delivery.Channel, msg delivery.Message) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.msgs = append(o.msgs, sent{ch, msg})
}

func (o *outbox) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.msgs)
}

func (o *outbox) lastToken(t *testing.T) string {
	t.Helper()
	o.mu.Lock()
	defer o.mu.Unlock()
	require.NotEmpty(t, o.msgs, "nothing dispatched")
	u, err := url.Parse(o.msgs[len(o.msgs)-1].msg.Link)
	require.NoError(t, err)
	return u.Query().Get("token")
}

// keyResponse is the wire format of fakeKey.
type keyResponse struct {
	OK      bool   `json:"ok"`
	Counter uint32 `json:"counter"`
}

func keyAnswer(ok bool, counter uint32) []byte {
	b, _ := json.Marshal(keyResponse{OK: ok, Counter: counter})
	return b
}

// fakeKey is a hardware key verifier whose signatures are a boolean and
// whose counter behaves like a real authenticator's.
type fakeKey struct{}

func (fakeKey) Method() models.AuthMethod { return models.MethodFIDO2 }

func (fakeKey) RegisterChallenge(_ context.Context, sub verifiers.Subject) (verifiers.Challenge, error) {
	return verifiers.Challenge{Options: json.RawMessage(`{"publicKey":{}}`), State: []byte("reg:" + sub.UserID)}, nil
}

func (fakeKey) RegisterComplete(_ context.Context, sub verifiers.Subject, state, response []byte) (verifiers.NewCredential, error) {
	var r keyResponse
	if err := json.Unmarshal(response, &r); err != nil {
		return verifiers.NewCredential{}, common.ErrMalformedResponse
	}
	if !r.OK || string(state) != "reg:"+sub.UserID {
		return verifiers.NewCredential{}, common.ErrSignatureInvalid
	}
	return verifiers.NewCredential{Payload: []byte("key-of-" + sub.UserID), ReplayCounter: int64(r.Counter)}, nil
}

func (fakeKey) AuthChallenge(_ context.Context, sub verifiers.Subject, stored verifiers.Stored) (verifiers.Challenge, error) {
	return verifiers.Challenge{Options: json.RawMessage(`{"publicKey":{}}`), State: []byte("login:" + sub.UserID)}, nil
}

func (fakeKey) DecoyChallenge(context.Context, []byte) (verifiers.Challenge, error) {
	return verifiers.Challenge{Options: json.RawMessage(`{"publicKey":{}}`)}, nil
}

func (fakeKey) AuthComplete(_ context.Context, sub verifiers.Subject, stored verifiers.Stored, state, response []byte) (verifiers.ReplayMark, error) {
	var r keyResponse
	if err := json.Unmarshal(response, &r); err != nil {
		return verifiers.ReplayMark{}, common.ErrMalformedResponse
	}
	if !r.OK || string(state) != "login:"+sub.UserID || string(stored.Payload) != "key-of-"+sub.UserID {
		return verifiers.ReplayMark{}, common.ErrSignatureInvalid
	}
	if r.Counter == 0 && stored.ReplayCounter == 0 {
		return verifiers.ReplayMark{Skip: true}, nil
	}
	if int64(r.Counter) <= stored.ReplayCounter {
		return verifiers.ReplayMark{}, common.ErrCounterReplay
	}
	return verifiers.ReplayMark{Value: int64(r.Counter)}, nil
}

type fixture struct {
	*Services
	store    *memory.Manager
	clock    *clockwork.FakeClock
	totp     *verifiers.TOTP
	outbox   *outbox
	sessions *sessions.Manager
}

func setup(t *testing.T) *fixture {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	store := memory.NewManager()
	log := logging.NewDiscard()

	ts := tokens.NewService(clock, 15*time.Minute)
	sm := sessions.NewManager(store, ts, clock, sessions.Config{
		Grace: 30 * time.Minute, ActiveWindow: 5 * time.Minute, HeartbeatInterval: time.Minute,
	}, log)
	totp := verifiers.NewTOTP(verifiers.DefaultTOTPConfig("Media Library"), clock)
	reg, err := verifiers.NewRegistry(totp, fakeKey{})
	require.NoError(t, err)
	sealer, err := cryptox.NewSealer(cryptox.DeriveKey([]byte("test-master"), []byte("test-salt")))
	require.NoError(t, err)

	box := &outbox{}
	svc := New(Deps{
		Store:         store,
		Tokens:        ts,
		Sessions:      sm,
		Verifiers:     reg,
		Continuations: continuation.NewSigner([]byte("test-signing"), 15*time.Minute, clock),
		Sealer:        sealer,
		Delivery:      box,
		Clock:         clock,
		Log:           log,
		PublicBaseURL: "https://media.example",
		ChallengeTTL:  5 * time.Minute,
		DecoyKey:      []byte("test-decoy"),
	})
	return &fixture{Services: svc, store: store, clock: clock, totp: totp, outbox: box, sessions: sm}
}

func codeFor(secret []byte, v *verifiers.TOTP, at time.Time) []byte {
	b, _ := json.Marshal(verifiers.TOTPResponse{Code: v.CodeAt(secret, at.Unix())})
	return b
}

// registerTOTP walks the full registration flow and returns the secret.
func (f *fixture) registerTOTP(t *testing.T, handle, contact string, pref RecoveryPreference) ([]byte, Enrollment) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, f.Registration.Start(ctx, handle, contact))
	cont, err := f.Registration.Verify(ctx, f.outbox.lastToken(t))
	require.NoError(t, err)

	choice, err := f.Registration.ChooseMethod(ctx, cont, models.MethodTOTP)
	require.NoError(t, err)
	secret := decodeChoice(t, choice)

	enr, err := f.Registration.Complete(ctx, choice.Continuation, codeFor(secret, f.totp, f.clock.Now()), pref, sessions.Metadata{UserAgent: "test"})
	require.NoError(t, err)
	return secret, enr
}

func decodeChoice(t *testing.T, choice MethodChoice) []byte {
	t.Helper()
	var reg verifiers.TOTPRegistration
	require.NoError(t, json.Unmarshal(choice.Options, &reg))
	secret, err := verifiers.DecodeSecret(reg.Secret)
	require.NoError(t, err)
	return secret
}

// registerKey registers a fake hardware key whose counter starts at counter.
func (f *fixture) registerKey(t *testing.T, handle string, counter uint32) Enrollment {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, f.Registration.Start(ctx, handle, "+15550001234"))
	cont, err := f.Registration.Verify(ctx, f.outbox.lastToken(t))
	require.NoError(t, err)
	choice, err := f.Registration.ChooseMethod(ctx, cont, models.MethodFIDO2)
	require.NoError(t, err)
	enr, err := f.Registration.Complete(ctx, choice.Continuation, keyAnswer(true, counter), RecoveryPreference{}, sessions.Metadata{})
	require.NoError(t, err)
	return enr
}

// loginTOTP waits for the next time step and signs in.
func (f *fixture) loginTOTP(t *testing.T, handle string, secret []byte) LoginResult {
	t.Helper()
	ctx := context.Background()
	f.clock.Advance(30 * time.Second)

	ch, err := f.Login.Challenge(ctx, handle)
	require.NoError(t, err)
	require.Equal(t, models.MethodTOTP, ch.Method)
	res, err := f.Login.Complete(ctx, ch.ChallengeID, codeFor(secret, f.totp, f.clock.Now()), sessions.Metadata{})
	require.NoError(t, err)
	return res
}

// storeHolds reports whether value appears anywhere in the store, as a
// string or as raw bytes.
func (f *fixture) storeHolds(value string) bool {
	dump := f.store.Dump()
	raw := strings.Trim(fmt.Sprint([]byte(value)), "[]")
	return strings.Contains(dump, value) || strings.Contains(dump, raw)
}
