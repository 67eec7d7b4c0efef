package cache

import (
	"context"
	"fmt"

	"github.com/Marat1506/hadj-admin/pkg/badgerfx"
	"github.com/Marat1506/hadj-admin/pkg/resource"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"cache",
		logger.WithNamedLogger("cache"),
		fx.Provide(New),
	)
}

// New builds the configured cache. It returns a nil cache for
// BackendNone, which disables caching in resource.Client.
func New(cfg Config, logger *zap.Logger, lc fx.Lifecycle) (resource.Cache, error) {
	switch cfg.Backend {
	case BackendNone, "":
		logger.Debug("read cache disabled")
		return nil, nil //nolint:nilnil //no cache is a valid configuration
	case BackendMemory:
		db, err := badgerfx.New(badgerfx.Config{InMemory: true}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open memory cache: %w", err)
		}

		lc.Append(fx.StopHook(db.Close))
		logger.Info("using in-memory read cache", zap.Duration("ttl", cfg.TTL))

		return NewMemory(db, cfg.TTL), nil
	case BackendRedis:
		r, err := NewRedis(cfg.RedisURL, cfg.TTL)
		if err != nil {
			return nil, err
		}

		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := r.Ping(ctx); err != nil {
					logger.Warn("redis is not reachable, reads will go to the backend", zap.Error(err))
				}
				return nil
			},
			OnStop: func(_ context.Context) error {
				return r.Close()
			},
		})
		logger.Info("using redis read cache", zap.Duration("ttl", cfg.TTL))

		return r, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
