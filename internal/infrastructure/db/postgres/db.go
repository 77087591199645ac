package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// DB is the slice of pgxpool.Pool the repositories need. Kept narrow so
// tests can substitute a pgxmock pool.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
