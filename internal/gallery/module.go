package gallery

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"gallery",
		logger.WithNamedLogger("gallery"),
		fx.Provide(NewService),
	)
}
