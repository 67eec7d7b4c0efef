package server

import (
	"github.com/Marat1506/hadj-admin/internal/auth"
	"github.com/Marat1506/hadj-admin/internal/storage"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-core-fx/fiberfx/health"
	"github.com/go-core-fx/logger"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"server",
		logger.WithNamedLogger("server"),

		fx.Provide(func(log *zap.Logger) fiberfx.Options {
			opts := fiberfx.Options{}
			opts.WithErrorHandler(fiberfx.NewJSONErrorHandler(log))
			opts.WithMetrics()
			return opts
		}),

		fx.Provide(
			fx.Annotate(health.NewHandler, fx.ResultTags(`name:"health-handler"`)), fx.Private,
			fx.Annotate(Handlers, fx.ResultTags(`name:"handlers"`)), fx.Private,
		),

		fx.Invoke(
			fx.Annotate(
				func(
					handlers []handler.Handler,
					healthHandler handler.Handler,
					app *fiber.App,
					repos *storage.Repositories,
					authSvc *auth.Service,
					log *zap.Logger,
				) {
					healthHandler.Register(app)

					Mount(app, repos, authSvc, log, handlers...)
				},
				fx.ParamTags(`name:"handlers"`, `name:"health-handler"`),
			),
		),
	)
}
