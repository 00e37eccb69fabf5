package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"jobmatch/internal/database"
)

var errNilDB = errors.New("nil db")

// DB adapts a *sql.DB to database.DB.
type DB struct {
	db *sql.DB
}

func New(db *sql.DB) *DB {
	return &DB{db: db}
}

func (d *DB) Ping(ctx context.Context) error {
	if d == nil || d.db == nil {
		return errNilDB
	}
	return d.db.PingContext(ctx)
}

func (d *DB) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

func (d *DB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	if d == nil || d.db == nil {
		return nil, errNilDB
	}
	r, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows{r: r}, nil
}

func (d *DB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	if d == nil || d.db == nil {
		return errRow{}
	}
	return d.db.QueryRowContext(ctx, query, args...)
}

func (d *DB) SQLDB() *sql.DB {
	if d == nil {
		return nil
	}
	return d.db
}

type rows struct {
	r *sql.Rows
}

func (r rows) Close()                 { _ = r.r.Close() }
func (r rows) Next() bool             { return r.r.Next() }
func (r rows) Scan(dest ...any) error { return r.r.Scan(dest...) }
func (r rows) Err() error             { return r.r.Err() }

type errRow struct{}

func (errRow) Scan(_ ...any) error { return errNilDB }
