// Package dbx holds the small database/sql helpers every repository shares:
// the DBTX handle, the transaction runner and PostgreSQL error mapping.
package dbx

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Serializable is the isolation level every check-and-mutate step runs at.
var Serializable = &sql.TxOptions{Isolation: sql.LevelSerializable}

// WithTx runs fn inside a transaction. It commits when fn returns nil and rolls
// back on error or panic; panics are re-raised after rollback.
//
//	err := dbx.WithTx(ctx, db, dbx.Serializable, func(ctx context.Context, tx dbx.DBTX) error {
//	    _, err := tx.ExecContext(ctx, "DELETE FROM challenges WHERE id = $1", id)
//	    return err
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return MapError(err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = MapError(tx.Commit())
	}()

	err = fn(ctx, tx)
	return err
}

const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// MapError translates driver errors into common sentinels:
// sql.ErrNoRows becomes ErrorNotFound, unique violations and serialization
// failures become ErrConflict. Anything else is returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgSerializationFailure, pgDeadlockDetected:
			return errors.Join(common.ErrConflict, err)
		}
	}
	return err
}
