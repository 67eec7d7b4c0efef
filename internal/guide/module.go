package guide

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"guide",
		logger.WithNamedLogger("guide"),
		fx.Provide(NewService),
	)
}
