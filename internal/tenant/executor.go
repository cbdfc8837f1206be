package tenant

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the query surface shared by a tenant pool and a transaction,
// so repositories work unchanged inside and outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB is the database handle for one café. It is scoped to exactly one
// tenant's data and is obtained only through Manager.Resolve.
type DB struct {
	cafename string
	pool     *pgxpool.Pool
}

// CafeName returns the café this handle belongs to.
func (db *DB) CafeName() string {
	return db.cafename
}

// Pool exposes the tenant pool as a Querier for single-statement reads and
// writes.
func (db *DB) Pool() Querier {
	return db.pool
}

// conn is a borrowed pool connection. *pgxpool.Conn satisfies it.
type conn interface {
	Querier
	Release()
}

// RunQuery borrows a connection from the tenant pool, runs work with it and
// returns it on every exit path.
func (db *DB) RunQuery(ctx context.Context, work func(ctx context.Context, q Querier) error) error {
	c, err := db.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	return runWithConn(ctx, c, work)
}

func runWithConn(ctx context.Context, c conn, work func(ctx context.Context, q Querier) error) error {
	defer c.Release()
	return work(ctx, c)
}

// RunTransaction wraps work in a transaction. Any error from work rolls the
// whole transaction back and propagates; a caller observes either the fully
// applied result or the original error, never partial state.
func (db *DB) RunTransaction(ctx context.Context, work func(ctx context.Context, tx pgx.Tx) error) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	return runInTx(ctx, tx, work)
}

func runInTx(ctx context.Context, tx pgx.Tx, work func(ctx context.Context, tx pgx.Tx) error) error {
	defer func() {
		// no-op after a successful commit
		_ = tx.Rollback(ctx)
	}()

	if err := work(ctx, tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
