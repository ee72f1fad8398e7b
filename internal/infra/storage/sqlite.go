package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rental-cart/internal/infra"
	"rental-cart/internal/usecase/shared"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

func (s *SQLite) Load(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM cart_states WHERE key = ?`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, shared.ErrStateNotFound
	}
	if err != nil {
		return nil, infra.WrapStorageErr("failed to load cart state", err)
	}
	return []byte(value), nil
}

func (s *SQLite) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cart_states (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(data), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return infra.WrapStorageErr("failed to save cart state", err)
	}
	return nil
}

func (s *SQLite) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cart_states WHERE key = ?`, key); err != nil {
		return infra.WrapStorageErr("failed to delete cart state", err)
	}
	return nil
}
