package database

import (
	"context"
	"database/sql"
)

// DB is the narrow query surface the repositories and migrations need. It is
// implemented by the pgx pool in production and by a database/sql wrapper in
// tests.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	SQLDB() *sql.DB
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
