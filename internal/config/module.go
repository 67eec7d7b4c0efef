package config

import (
	"github.com/Marat1506/hadj-admin/internal/auth"
	"github.com/Marat1506/hadj-admin/internal/cache"
	"github.com/Marat1506/hadj-admin/pkg/badgerfx"
	"github.com/Marat1506/hadj-admin/pkg/resource"
	"github.com/go-core-fx/fiberfx"
	"go.uber.org/fx"
)

// Module fans a loaded Config out into the per-package configs. The Config
// itself must be supplied by the caller.
func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(func(cfg Config) resource.Config {
			return resource.Config{
				BaseURL:   cfg.API.BaseURL,
				Timeout:   cfg.API.Timeout,
				Token:     cfg.API.Token,
				UserAgent: cfg.API.UserAgent,
			}
		}),
		fx.Provide(func(cfg Config) cache.Config {
			return cache.Config{
				Backend:  cache.Backend(cfg.Cache.Backend),
				TTL:      cfg.Cache.TTL,
				RedisURL: cfg.Cache.RedisURL,
			}
		}),
		fx.Provide(func(cfg Config) fiberfx.Config {
			return fiberfx.Config{
				Address:     cfg.HTTP.Address,
				ProxyHeader: cfg.HTTP.ProxyHeader,
				Proxies:     cfg.HTTP.Proxies,
			}
		}),
		fx.Provide(func(cfg Config) badgerfx.Config {
			return badgerfx.Config{
				Dir:      cfg.Storage.DataDir,
				InMemory: cfg.Storage.InMemory,
			}
		}),
		fx.Provide(func(cfg Config) auth.Config {
			return auth.Config{
				SecretKey: []byte(cfg.Auth.Secret),
				Issuer:    cfg.Auth.Issuer,
				TokenTTL:  cfg.Auth.TokenTTL,
			}
		}),
	)
}
