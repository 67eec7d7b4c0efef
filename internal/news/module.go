package news

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"news",
		logger.WithNamedLogger("news"),
		fx.Provide(NewService),
	)
}
