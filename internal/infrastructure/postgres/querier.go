package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx, so every
// repository works against the pool or inside a transaction unchanged.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// lockSlack is the tolerance added to a form's baseline timestamp before a
// write counts as stale. One second absorbs clock and serialization noise
// between sessions; anything newer than baseline+slack is a concurrent edit.
const lockSlack = time.Second

// staleCutoff returns the newest stored Timestamp a conditional update still
// accepts for the given baseline.
func staleCutoff(baseline time.Time) time.Time {
	return baseline.Add(lockSlack)
}
