package db

import (
	"context"
	"fmt"
	"time"

	"rental-cart/internal/infra"
	"rental-cart/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a pgx pool, verifies it and makes sure the cart table exists.
func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	poolCfg.MaxConns = 20
	poolCfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, infra.WrapStorageErr("failed to ping database", err, infra.KindUnavailable)
	}

	err = ensureSchema(ctx, func(ctx context.Context, ddl string) error {
		_, err := pool.Exec(ctx, ddl)
		return err
	}, postgresSchema)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}

	return pool, pool.Close, nil
}
