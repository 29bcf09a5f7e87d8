// Package memory is a process-local credential store. Transactions are
// serialized by a single mutex and run against a copy of the state that is
// swapped in only on commit, so a failed or cancelled transaction leaves no
// trace. It backs "-d memory" and the engine tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/repomanager"
)

type state struct {
	users         map[string]models.User
	handles       map[string]string
	credentials   map[string]models.Credential
	sessions      map[string]models.Session
	sessionByHash map[string]string
	pending       map[models.PendingPurpose]map[string]models.PendingToken
	backupCodes   map[string]map[string]models.BackupCode
	challenges    map[string]models.Challenge
}

func newState() *state {
	return &state{
		users:         map[string]models.User{},
		handles:       map[string]string{},
		credentials:   map[string]models.Credential{},
		sessions:      map[string]models.Session{},
		sessionByHash: map[string]string{},
		pending: map[models.PendingPurpose]map[string]models.PendingToken{
			models.PurposeRegistration: {},
			models.PurposeRecovery:     {},
		},
		backupCodes: map[string]map[string]models.BackupCode{},
		challenges:  map[string]models.Challenge{},
	}
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// clone copies every table. Rows are plain values and byte slices are never
// mutated in place, so a shallow copy per row is enough.
func (s *state) clone() *state {
	c := &state{
		users:         copyMap(s.users),
		handles:       copyMap(s.handles),
		credentials:   copyMap(s.credentials),
		sessions:      copyMap(s.sessions),
		sessionByHash: copyMap(s.sessionByHash),
		pending:       make(map[models.PendingPurpose]map[string]models.PendingToken, len(s.pending)),
		backupCodes:   make(map[string]map[string]models.BackupCode, len(s.backupCodes)),
		challenges:    copyMap(s.challenges),
	}
	for k, v := range s.pending {
		c.pending[k] = copyMap(v)
	}
	for k, v := range s.backupCodes {
		c.backupCodes[k] = copyMap(v)
	}
	return c
}

// access runs fn against a state. Outside a transaction it takes the lock;
// inside one the lock is already held.
type access func(fn func(s *state) error) error

type Manager struct {
	mu    sync.Mutex
	state *state
}

var _ repomanager.RepositoryManager = (*Manager)(nil)

func NewManager() *Manager {
	return &Manager{state: newState()}
}

func (m *Manager) RunMigrations(context.Context) error { return nil }

func (m *Manager) Close() error { return nil }

func (m *Manager) locked(fn func(s *state) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(m.state)
}

func bind(do access) repomanager.Repositories {
	return repomanager.Repositories{
		Users:       &userRepo{do: do},
		Credentials: &credentialRepo{do: do},
		Sessions:    &sessionRepo{do: do},
		Pending:     &pendingRepo{do: do},
		BackupCodes: &backupCodeRepo{do: do},
		Challenges:  &challengeRepo{do: do},
	}
}

func (m *Manager) Repos() repomanager.Repositories {
	return bind(m.locked)
}

func (m *Manager) WithTx(ctx context.Context, fn repomanager.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	work := m.state.clone()
	direct := func(f func(s *state) error) error { return f(work) }

	if err := fn(ctx, bind(direct)); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.state = work
	return nil
}

// Dump renders every stored row. It exists so tests can assert that a value
// never reached the store.
func (m *Manager) Dump() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fmt.Sprintf("%+v", *m.state)
}
