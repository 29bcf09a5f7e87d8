// Package verifiers implements the credential ceremonies for each supported
// authentication method behind one capability set.
//
// Verifiers are pure: they never touch the store. The caller seals and
// persists challenge state and credential payloads, and commits the returned
// ReplayMark in the same transaction that consumes the challenge.
package verifiers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
)

// Subject identifies whom a ceremony is for. UserID is assigned before a
// registration ceremony starts so authenticators can bind to it.
type Subject struct {
	UserID string
	Handle string
}

// Challenge is produced by the challenge steps. Options are handed to the
// client as-is; State stays on the server until the matching complete step.
type Challenge struct {
	Options json.RawMessage
	State   []byte
}

// NewCredential is the plaintext payload to seal and store for a new
// registration, with the replay counter it starts from.
type NewCredential struct {
	Payload       []byte
	ReplayCounter int64
}

// Stored is an opened credential as read from the store.
type Stored struct {
	Payload       []byte
	ReplayCounter int64
}

// ReplayMark is the replay state a successful assertion moves to. Skip is set
// for authenticators that do not implement a signature counter.
type ReplayMark struct {
	Value int64
	Skip  bool
}

type Verifier interface {
	Method() models.AuthMethod
	RegisterChallenge(ctx context.Context, subject Subject) (Challenge, error)
	RegisterComplete(ctx context.Context, subject Subject, state, response []byte) (NewCredential, error)
	AuthChallenge(ctx context.Context, subject Subject, stored Stored) (Challenge, error)
	AuthComplete(ctx context.Context, subject Subject, stored Stored, state, response []byte) (ReplayMark, error)
	// DecoyChallenge returns options shaped like AuthChallenge's for a
	// subject that does not exist. The same seed yields the same shape.
	DecoyChallenge(ctx context.Context, seed []byte) (Challenge, error)
}

// Registry is the closed set of verifiers, keyed by method.
type Registry struct {
	byMethod map[models.AuthMethod]Verifier
}

func NewRegistry(vs ...Verifier) (*Registry, error) {
	r := &Registry{byMethod: make(map[models.AuthMethod]Verifier, len(vs))}
	for _, v := range vs {
		m := v.Method()
		if !m.Valid() {
			return nil, fmt.Errorf("verifier for unknown method %q", m)
		}
		if _, dup := r.byMethod[m]; dup {
			return nil, fmt.Errorf("duplicate verifier for %q", m)
		}
		r.byMethod[m] = v
	}
	return r, nil
}

func (r *Registry) Get(m models.AuthMethod) (Verifier, error) {
	v, ok := r.byMethod[m]
	if !ok {
		return nil, common.ErrUnsupportedMethod
	}
	return v, nil
}

// Methods returns the registered methods in models.Methods order.
func (r *Registry) Methods() []models.AuthMethod {
	var out []models.AuthMethod
	for _, m := range models.Methods {
		if _, ok := r.byMethod[m]; ok {
			out = append(out, m)
		}
	}
	return out
}
