package storage

import (
	"context"
	"errors"

	"rental-cart/internal/infra"
	"rental-cart/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgQuerier is satisfied by *pgxpool.Pool and pgx.Tx.
type pgQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Postgres struct {
	q pgQuerier
}

func NewPostgres(q pgQuerier) *Postgres {
	return &Postgres{q: q}
}

func (p *Postgres) Load(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := p.q.QueryRow(ctx, `SELECT value FROM cart_states WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, shared.ErrStateNotFound
	}
	if err != nil {
		return nil, infra.WrapStorageErr("failed to load cart state", err)
	}
	return []byte(value), nil
}

func (p *Postgres) Save(ctx context.Context, key string, data []byte) error {
	_, err := p.q.Exec(ctx, `
		INSERT INTO cart_states (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, string(data),
	)
	if err != nil {
		return infra.WrapStorageErr("failed to save cart state", err)
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	if _, err := p.q.Exec(ctx, `DELETE FROM cart_states WHERE key = $1`, key); err != nil {
		return infra.WrapStorageErr("failed to delete cart state", err)
	}
	return nil
}
