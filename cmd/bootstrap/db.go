package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"rental-cart/internal/infra"
	"rental-cart/internal/infra/db"
	"rental-cart/internal/infra/storage"
	"rental-cart/internal/pkg/config"
	"rental-cart/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewStateStorage,
	),
)

// NewStateStorage opens only the backend selected by STORAGE_DRIVER.
func NewStateStorage(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.StateStorage, error) {
	logger.Info("cart storage selected", "driver", cfg.Storage.Driver)

	switch cfg.Storage.Driver {
	case config.StorageDriverNop:
		return storage.NewNop(), nil

	case config.StorageDriverMemory:
		return storage.NewMemory(), nil

	case config.StorageDriverSQLite:
		sqlDB, err := db.OpenSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			logOpenFailure(logger, cfg.Storage.Driver, err)
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return sqlDB.Close()
			},
		})
		return storage.NewSQLite(sqlDB), nil

	case config.StorageDriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store := storage.NewRedis(client, cfg.Storage.TTL)
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return store.Ping(ctx)
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		return store, nil

	case config.StorageDriverPostgres:
		pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
		if err != nil {
			logOpenFailure(logger, cfg.Storage.Driver, err)
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		return storage.NewPostgres(pool), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func logOpenFailure(logger *slog.Logger, driver string, err error) {
	switch {
	case infra.IsKind(err, infra.KindSchema):
		logger.Error("cart table could not be created, check database privileges", "driver", driver, "error", err)
	case infra.IsKind(err, infra.KindUnavailable):
		logger.Error("cart storage unreachable", "driver", driver, "error", err)
	default:
		logger.Error("cart storage could not be opened", "driver", driver, "error", err)
	}
}
