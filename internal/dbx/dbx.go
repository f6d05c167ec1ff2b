// Package dbx is a thin dialect-neutral query layer over database/sql.
// Repositories write portable SQL once ("?" markers, 0/1 flags) and the
// configured Dialect decides how it reaches the driver.
package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

var ErrAcquireTimeout = errors.New("dbx: timed out acquiring connection")

type Querier interface {
	Run(ctx context.Context, query string, args ...any) (Result, error)
	Get(ctx context.Context, query string, args ...any) (Row, bool, error)
	All(ctx context.Context, query string, args ...any) ([]Row, error)
}

type Options struct {
	AcquireTimeout time.Duration
}

type DB struct {
	sql            *sql.DB
	dialect        Dialect
	acquireTimeout time.Duration
}

func New(db *sql.DB, dialect Dialect, opts Options) *DB {
	return &DB{
		sql:            db,
		dialect:        dialect,
		acquireTimeout: opts.AcquireTimeout,
	}
}

func (d *DB) Dialect() Dialect { return d.dialect }

func (d *DB) Run(ctx context.Context, query string, args ...any) (Result, error) {
	conn, err := d.acquire(ctx)
	if err != nil {
		return Result{}, err
	}
	defer conn.Close()

	return run(ctx, conn, d.dialect, query, args)
}

func (d *DB) Get(ctx context.Context, query string, args ...any) (Row, bool, error) {
	conn, err := d.acquire(ctx)
	if err != nil {
		return nil, false, err
	}
	defer conn.Close()

	return get(ctx, conn, d.dialect, query, args)
}

func (d *DB) All(ctx context.Context, query string, args ...any) ([]Row, error) {
	conn, err := d.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return all(ctx, conn, d.dialect, query, args)
}

// Tx runs fn inside a transaction on a single connection. The
// transaction commits when fn returns nil and rolls back otherwise,
// including when fn panics.
func (d *DB) Tx(ctx context.Context, fn func(q Querier) error) (err error) {
	conn, err := d.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("dbx: begin: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&txQuerier{tx: tx, dialect: d.dialect}); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("dbx: commit: %w", err)
	}
	return nil
}

func (d *DB) acquire(ctx context.Context) (*sql.Conn, error) {
	actx := ctx
	if d.acquireTimeout > 0 {
		var cancel context.CancelFunc
		actx, cancel = context.WithTimeout(ctx, d.acquireTimeout)
		defer cancel()
	}

	conn, err := d.sql.Conn(actx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, ErrAcquireTimeout
		}
		return nil, fmt.Errorf("dbx: acquire: %w", err)
	}
	return conn, nil
}

type txQuerier struct {
	tx      *sql.Tx
	dialect Dialect
}

func (t *txQuerier) Run(ctx context.Context, query string, args ...any) (Result, error) {
	return run(ctx, t.tx, t.dialect, query, args)
}

func (t *txQuerier) Get(ctx context.Context, query string, args ...any) (Row, bool, error) {
	return get(ctx, t.tx, t.dialect, query, args)
}

func (t *txQuerier) All(ctx context.Context, query string, args ...any) ([]Row, error) {
	return all(ctx, t.tx, t.dialect, query, args)
}

type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func run(ctx context.Context, ex executor, dialect Dialect, query string, args []any) (Result, error) {
	q := dialect.Translate(query)

	if dialect == Postgres && hasReturning(q) {
		rows, err := queryRows(ctx, ex, q, args)
		if err != nil {
			return Result{}, err
		}
		res := Result{Rows: rows, Changes: int64(len(rows))}
		if len(rows) > 0 {
			res.LastID = rows[0].Int64("id")
		}
		return res, nil
	}

	sr, err := ex.ExecContext(ctx, q, args...)
	if err != nil {
		return Result{}, err
	}

	var res Result
	if n, err := sr.RowsAffected(); err == nil {
		res.Changes = n
	}
	if isInsert(q) {
		if id, err := sr.LastInsertId(); err == nil {
			res.LastID = id
		}
	}
	return res, nil
}

func get(ctx context.Context, ex executor, dialect Dialect, query string, args []any) (Row, bool, error) {
	rows, err := queryRows(ctx, ex, dialect.Translate(query), args)
	if err != nil {
		return nil, false, err
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	return rows[0], true, nil
}

func all(ctx context.Context, ex executor, dialect Dialect, query string, args []any) ([]Row, error) {
	return queryRows(ctx, ex, dialect.Translate(query), args)
}

func queryRows(ctx context.Context, ex executor, query string, args []any) ([]Row, error) {
	rows, err := ex.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := make([]Row, 0)
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(Row, len(cols))
		for i, col := range cols {
			row[col] = vals[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// IsUniqueViolation reports whether err is a unique constraint failure
// from either supported driver.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
