package analytics

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"analytics",
		logger.WithNamedLogger("analytics"),
		fx.Provide(NewService),
	)
}
