package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cruisebook/internal/domain"
)

// Postgres stores blobs in the storefront_blobs table, one row per key.
// The ledger is the only writer of its key, so a plain upsert is enough.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `
SELECT value
FROM storefront_blobs
WHERE key = $1
`
	var blob []byte
	if err := p.pool.QueryRow(ctx, q, key).Scan(&blob); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return blob, nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	const q = `
INSERT INTO storefront_blobs (key, value, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
`
	_, err := p.pool.Exec(ctx, q, key, value)
	return err
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}
