// Package sqlstore implements the booking repositories on top of sqlx.
// Queries are written with '?' placeholders and rebound for the driver.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hotelBooking/internal/storage"

	"github.com/jmoiron/sqlx"
)

// Dialect carries what differs between the supported databases.
type Dialect struct {
	// LockClause is appended to selects that must lock the row for the
	// rest of the surrounding transaction.
	LockClause string
	TxOptions  *sql.TxOptions

	IsUniqueViolation func(err error) bool
}

type Store struct {
	db      *sqlx.DB
	dialect Dialect
	now     func() time.Time
}

type txKey struct{}

func New(db *sqlx.DB, dialect Dialect) *Store {
	if dialect.IsUniqueViolation == nil {
		dialect.IsUniqueViolation = func(error) bool { return false }
	}

	return &Store{
		db:      db,
		dialect: dialect,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) DB() *sqlx.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.db.Close()
}

// WithTx runs fn in a transaction carried by the context passed to fn.
// Repository calls made with that context join the transaction.
// A nested call reuses the outer transaction.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	const op = "storage.sqlstore.WithTx"

	if _, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := s.db.BeginTxx(ctx, s.dialect.TxOptions)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}

	return nil
}

func (s *Store) ext(ctx context.Context) sqlx.ExtContext {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return s.db
}

func (s *Store) inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	return ok
}

func (s *Store) get(ctx context.Context, dest any, query string, args ...any) error {
	q := s.ext(ctx)

	err := sqlx.GetContext(ctx, q, dest, q.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}

	return err
}

func (s *Store) selectAll(ctx context.Context, dest any, query string, args ...any) error {
	q := s.ext(ctx)
	return sqlx.SelectContext(ctx, q, dest, q.Rebind(query), args...)
}

func (s *Store) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	q := s.ext(ctx)
	return q.ExecContext(ctx, q.Rebind(query), args...)
}
