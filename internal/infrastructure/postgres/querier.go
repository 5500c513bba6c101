package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier hem *pgxpool.Pool hem pgx.Tx tarafından sağlanan sorgu yüzeyi.
// Adaptörler bu arayüz üzerinden çalışır; transaction'a bağlamak için yeterlidir.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
