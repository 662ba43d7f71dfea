package bootstrap

import (
	"context"
	"log/slog"

	"campus-reserve/internal/infra/db"
	"campus-reserve/internal/infra/memstore"
	"campus-reserve/internal/infra/mongostore"
	"campus-reserve/internal/infra/uow"
	"campus-reserve/internal/pkg/config"
	"campus-reserve/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewUnitOfWork,
	),
)

// NewUnitOfWork opens the store selected by STORE_DRIVER and closes it on shutdown.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.UnitOfWork, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		logger.Warn("using in-memory store; data is lost on restart")
		return memstore.NewMemoryUoW(memstore.NewStore(), cfg.Store.TxRetryBase), nil

	case config.StoreDriverMongo:
		client, cleanup, err := mongostore.Connect(context.Background(), cfg.Mongo)
		if err != nil {
			return nil, err
		}
		appendCleanup(lc, cleanup)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.Timeout)
		defer cancel()
		if err := mongostore.EnsureSchema(ctx, client.Database(cfg.Mongo.Database)); err != nil {
			return nil, err
		}
		return mongostore.NewMongoUoW(client, cfg.Mongo.Database), nil

	default:
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, err
		}
		appendCleanup(lc, cleanup)
		return uow.NewPostgresUoW(pool, cfg.Store), nil
	}
}

func appendCleanup(lc fx.Lifecycle, cleanup func()) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})
}
