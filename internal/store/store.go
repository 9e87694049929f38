package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool the store issues queries through. Kept
// narrow so tests can substitute a mock pool.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ErrEmptyTable is returned by the id allocators when the table has no rows
// to compute a maximum from.
var ErrEmptyTable = errors.New("table is empty")

// DataAccessError wraps any failure to execute a store operation.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *DataAccessError) Unwrap() error { return e.Err }

func dataErr(op string, err error) error {
	return &DataAccessError{Op: op, Err: err}
}

type Store struct {
	db    DB
	actor string
}

// New returns a Store issuing queries through db. actor is stamped into the
// created_by/updated_by audit columns on every write.
func New(db DB, actor string) *Store {
	if actor == "" {
		actor = "app"
	}
	return &Store{db: db, actor: actor}
}

// nextID computes max(id)+1 for the given table. The read-then-insert pair
// this backs is not isolated: two concurrent allocators can be handed the
// same id, and the primary key turns that into an insert error rather than a
// duplicate row. Callers that can hold a transaction should prefer the
// CreateX variants, which allocate and insert atomically.
func (s *Store) nextID(ctx context.Context, table string) (int, error) {
	var max sql.NullInt64
	if err := s.db.QueryRow(ctx, `SELECT MAX(id) FROM `+table).Scan(&max); err != nil {
		return 0, dataErr("next id "+table, err)
	}
	if !max.Valid {
		return 0, dataErr("next id "+table, ErrEmptyTable)
	}
	return int(max.Int64) + 1, nil
}
