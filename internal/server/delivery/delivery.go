// Package delivery carries one-time links to a user's contact out of band.
// The engine never waits for a reply; it only logs the outcome.
package delivery

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/go-playground/validator/v10"
)

type Kind string

const (
	KindEmail Kind = "email"
	KindSMS   Kind = "sms"
)

// Channel is an ephemeral contact. It must never be persisted in plaintext.
type Channel struct {
	Kind    Kind
	Address string
}

type Message struct {
	Subject string
	Body    string
	Link    string
}

// Transport delivers a message or reports why it could not.
type Transport interface {
	Send(ctx context.Context, ch Channel, msg Message) error
}

var validate = validator.New()

// ParseChannel classifies a raw contact as an e-mail address or an E.164
// phone number.
func ParseChannel(contact string) (Channel, error) {
	contact = strings.TrimSpace(contact)
	if validate.Var(contact, "required,email") == nil {
		return Channel{Kind: KindEmail, Address: contact}, nil
	}
	phone := strings.NewReplacer(" ", "", "-", "").Replace(contact)
	if validate.Var(phone, "required,e164") == nil {
		return Channel{Kind: KindSMS, Address: phone}, nil
	}
	return Channel{}, common.ErrContactInvalid
}

// Router picks a transport by channel kind.
type Router struct {
	byKind map[Kind]Transport
}

func NewRouter() *Router {
	return &Router{byKind: map[Kind]Transport{}}
}

func (r *Router) Handle(k Kind, t Transport) *Router {
	r.byKind[k] = t
	return r
}

func (r *Router) Send(ctx context.Context, ch Channel, msg Message) error {
	t, ok := r.byKind[ch.Kind]
	if !ok {
		return fmt.Errorf("no transport for %q", ch.Kind)
	}
	return t.Send(ctx, ch, msg)
}
