package db

import (
	"context"

	"rental-cart/internal/infra"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS cart_states (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS cart_states (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

type execFunc func(ctx context.Context, ddl string) error

func ensureSchema(ctx context.Context, exec execFunc, ddl string) error {
	if err := exec(ctx, ddl); err != nil {
		return infra.WrapStorageErr("failed to ensure cart schema", err, infra.KindSchema)
	}
	return nil
}
