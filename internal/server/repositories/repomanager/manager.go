// Package repomanager vends repository sets and runs store-wide transactions.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/backupcodes"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/challenges"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/pending"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/users"
)

// Repositories is one consistent view of the credential store: either the
// pool or a single open transaction.
type Repositories struct {
	Users       users.Repository
	Credentials credentials.Repository
	Sessions    sessions.Repository
	Pending     pending.Repository
	BackupCodes backupcodes.Repository
	Challenges  challenges.Repository
}

// TxFunc runs inside a transaction. Returning an error rolls back.
type TxFunc func(ctx context.Context, repos Repositories) error

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	// Repos returns repositories outside of any transaction.
	Repos() Repositories
	// WithTx runs fn in a serializable transaction and commits when it
	// returns nil. Cancellation of ctx rolls back.
	WithTx(ctx context.Context, fn TxFunc) error
	Close() error
}
