package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/dbx"
	"github.com/dmitrijs2005/gatekeeper/internal/server/migrations"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/backupcodes"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/challenges"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/pending"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager binds PostgreSQL repositories to a pool or to a
// transaction and runs the embedded goose migrations.
type PostgresRepositoryManager struct {
	db *sql.DB
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// NewPostgresRepositoryManager wraps an open pool.
func NewPostgresRepositoryManager(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{db: db}
}

// OpenPostgres opens a pgx pool for dsn and checks connectivity.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	return NewPostgresRepositoryManager(db), nil
}

func bind(db dbx.DBTX) Repositories {
	return Repositories{
		Users:       users.NewPostgresRepository(db),
		Credentials: credentials.NewPostgresRepository(db),
		Sessions:    sessions.NewPostgresRepository(db),
		Pending:     pending.NewPostgresRepository(db),
		BackupCodes: backupcodes.NewPostgresRepository(db),
		Challenges:  challenges.NewPostgresRepository(db),
	}
}

func (m *PostgresRepositoryManager) Repos() Repositories {
	return bind(m.db)
}

func (m *PostgresRepositoryManager) WithTx(ctx context.Context, fn TxFunc) error {
	return dbx.WithTx(ctx, m.db, dbx.Serializable, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, bind(tx))
	})
}

// RunMigrations sets up goose with the embedded migrations and applies them.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, ".")
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}
