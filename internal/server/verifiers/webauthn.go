package verifiers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/webauthn"
)

// relyingParty is the part of the WebAuthn library the verifier drives. The
// Finish calls take the raw client JSON so tests can substitute a fake that
// does not need real authenticator output.
type relyingParty interface {
	BeginRegistration(user webauthn.User, opts ...webauthn.RegistrationOption) (*protocol.CredentialCreation, *webauthn.SessionData, error)
	FinishRegistration(user webauthn.User, session webauthn.SessionData, response []byte) (*webauthn.Credential, error)
	BeginLogin(user webauthn.User, opts ...webauthn.LoginOption) (*protocol.CredentialAssertion, *webauthn.SessionData, error)
	FinishLogin(user webauthn.User, session webauthn.SessionData, response []byte) (*webauthn.Credential, error)
}

type libraryRP struct {
	wa *webauthn.WebAuthn
}

func (l libraryRP) BeginRegistration(user webauthn.User, opts ...webauthn.RegistrationOption) (*protocol.CredentialCreation, *webauthn.SessionData, error) {
	return l.wa.BeginRegistration(user, opts...)
}

func (l libraryRP) FinishRegistration(user webauthn.User, session webauthn.SessionData, response []byte) (*webauthn.Credential, error) {
	parsed, err := protocol.ParseCredentialCreationResponseBytes(response)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}
	return l.wa.CreateCredential(user, session, parsed)
}

func (l libraryRP) BeginLogin(user webauthn.User, opts ...webauthn.LoginOption) (*protocol.CredentialAssertion, *webauthn.SessionData, error) {
	return l.wa.BeginLogin(user, opts...)
}

func (l libraryRP) FinishLogin(user webauthn.User, session webauthn.SessionData, response []byte) (*webauthn.Credential, error) {
	parsed, err := protocol.ParseCredentialRequestResponseBytes(response)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}
	return l.wa.ValidateLogin(user, session, parsed)
}

type RelyingPartyConfig struct {
	ID          string
	DisplayName string
	Origins     []string
}

// WebAuthn verifies public-key credentials. Passkeys and roaming FIDO2 keys
// share the ceremony and differ in the authenticator attachment they ask for
// and whether user verification is mandatory.
type WebAuthn struct {
	method     models.AuthMethod
	attachment protocol.AuthenticatorAttachment
	uv         protocol.UserVerificationRequirement
	rp         relyingParty
}

// ErrRelyingParty rejects a relying party without an id or origins, which
// the library would accept and then fail every ceremony with.
var ErrRelyingParty = errors.New("webauthn config: relying party id and origins are required")

func newRelyingParty(cfg RelyingPartyConfig) (relyingParty, error) {
	if strings.TrimSpace(cfg.ID) == "" || len(cfg.Origins) == 0 {
		return nil, ErrRelyingParty
	}
	wa, err := webauthn.New(&webauthn.Config{
		RPID:          cfg.ID,
		RPDisplayName: cfg.DisplayName,
		RPOrigins:     cfg.Origins,
	})
	if err != nil {
		return nil, fmt.Errorf("webauthn config: %w", err)
	}
	return libraryRP{wa: wa}, nil
}

// NewPasskey returns the verifier for platform authenticators.
func NewPasskey(cfg RelyingPartyConfig) (*WebAuthn, error) {
	rp, err := newRelyingParty(cfg)
	if err != nil {
		return nil, err
	}
	return &WebAuthn{
		method:     models.MethodPasskey,
		attachment: protocol.Platform,
		uv:         protocol.VerificationRequired,
		rp:         rp,
	}, nil
}

// NewFIDO2 returns the verifier for roaming security keys.
func NewFIDO2(cfg RelyingPartyConfig) (*WebAuthn, error) {
	rp, err := newRelyingParty(cfg)
	if err != nil {
		return nil, err
	}
	return &WebAuthn{
		method:     models.MethodFIDO2,
		attachment: protocol.CrossPlatform,
		uv:         protocol.VerificationPreferred,
		rp:         rp,
	}, nil
}

func (w *WebAuthn) Method() models.AuthMethod { return w.method }

type waUser struct {
	id    []byte
	name  string
	creds []webauthn.Credential
}

func (u *waUser) WebAuthnID() []byte                         { return u.id }
func (u *waUser) WebAuthnName() string                       { return u.name }
func (u *waUser) WebAuthnDisplayName() string                { return u.name }
func (u *waUser) WebAuthnCredentials() []webauthn.Credential { return u.creds }

func userFor(subject Subject) *waUser {
	return &waUser{id: []byte(subject.UserID), name: subject.Handle}
}

func (w *WebAuthn) RegisterChallenge(_ context.Context, subject Subject) (Challenge, error) {
	creation, session, err := w.rp.BeginRegistration(userFor(subject),
		webauthn.WithAuthenticatorSelection(protocol.AuthenticatorSelection{
			AuthenticatorAttachment: w.attachment,
			ResidentKey:             protocol.ResidentKeyRequirementPreferred,
			UserVerification:        w.uv,
		}),
		webauthn.WithConveyancePreference(protocol.PreferNoAttestation),
	)
	if err != nil {
		return Challenge{}, fmt.Errorf("begin registration: %w", err)
	}
	return encodeChallenge(creation, session)
}

func (w *WebAuthn) RegisterComplete(_ context.Context, subject Subject, state, response []byte) (NewCredential, error) {
	session, err := decodeSession(state)
	if err != nil {
		return NewCredential{}, err
	}

	cred, err := w.rp.FinishRegistration(userFor(subject), session, response)
	if err != nil {
		return NewCredential{}, rejection(err)
	}

	payload, err := json.Marshal(cred)
	if err != nil {
		return NewCredential{}, err
	}
	return NewCredential{Payload: payload, ReplayCounter: int64(cred.Authenticator.SignCount)}, nil
}

func (w *WebAuthn) AuthChallenge(_ context.Context, subject Subject, stored Stored) (Challenge, error) {
	user, err := storedUser(subject, stored)
	if err != nil {
		return Challenge{}, err
	}

	assertion, session, err := w.rp.BeginLogin(user, webauthn.WithUserVerification(w.uv))
	if err != nil {
		return Challenge{}, fmt.Errorf("begin login: %w", err)
	}
	return encodeChallenge(assertion, session)
}

// DecoyChallenge asks for an assertion from a credential id derived from
// seed. No authenticator holds it, so the ceremony can never complete.
func (w *WebAuthn) DecoyChallenge(_ context.Context, seed []byte) (Challenge, error) {
	if len(seed) < 16 {
		return Challenge{}, fmt.Errorf("decoy seed too short")
	}
	user := &waUser{id: seed[:16], creds: []webauthn.Credential{{ID: seed}}}

	assertion, _, err := w.rp.BeginLogin(user, webauthn.WithUserVerification(w.uv))
	if err != nil {
		return Challenge{}, fmt.Errorf("begin login: %w", err)
	}
	opts, err := json.Marshal(assertion)
	if err != nil {
		return Challenge{}, err
	}
	return Challenge{Options: opts}, nil
}

func (w *WebAuthn) AuthComplete(_ context.Context, subject Subject, stored Stored, state, response []byte) (ReplayMark, error) {
	user, err := storedUser(subject, stored)
	if err != nil {
		return ReplayMark{}, err
	}
	session, err := decodeSession(state)
	if err != nil {
		return ReplayMark{}, err
	}

	cred, err := w.rp.FinishLogin(user, session, response)
	if err != nil {
		return ReplayMark{}, rejection(err)
	}

	if cred.Authenticator.CloneWarning {
		return ReplayMark{}, common.ErrCounterReplay
	}
	presented := int64(cred.Authenticator.SignCount)
	if presented == 0 && stored.ReplayCounter == 0 {
		return ReplayMark{Skip: true}, nil
	}
	if presented <= stored.ReplayCounter {
		return ReplayMark{}, common.ErrCounterReplay
	}
	return ReplayMark{Value: presented}, nil
}

// storedUser rebuilds the library user from a stored credential. The counter
// authority is the store, not the payload snapshot.
func storedUser(subject Subject, stored Stored) (*waUser, error) {
	if len(stored.Payload) == 0 {
		return nil, common.ErrCredentialNotFound
	}
	var cred webauthn.Credential
	if err := json.Unmarshal(stored.Payload, &cred); err != nil {
		return nil, fmt.Errorf("decode stored credential: %w", err)
	}
	cred.Authenticator.SignCount = uint32(stored.ReplayCounter)
	cred.Authenticator.CloneWarning = false

	u := userFor(subject)
	u.creds = []webauthn.Credential{cred}
	return u, nil
}

func encodeChallenge(options any, session *webauthn.SessionData) (Challenge, error) {
	opts, err := json.Marshal(options)
	if err != nil {
		return Challenge{}, err
	}
	state, err := json.Marshal(session)
	if err != nil {
		return Challenge{}, err
	}
	return Challenge{Options: opts, State: state}, nil
}

func decodeSession(state []byte) (webauthn.SessionData, error) {
	var s webauthn.SessionData
	if err := json.Unmarshal(state, &s); err != nil {
		return s, fmt.Errorf("decode challenge state: %w", err)
	}
	return s, nil
}

// rejection classifies a library failure. Anything the library reports about
// the client's response is a signature failure; parse errors stay malformed.
func rejection(err error) error {
	if errors.Is(err, common.ErrMalformedResponse) {
		return err
	}
	return fmt.Errorf("%w: %v", common.ErrSignatureInvalid, err)
}
