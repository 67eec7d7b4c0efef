package carousel

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"carousel",
		logger.WithNamedLogger("carousel"),
		fx.Provide(NewService),
	)
}
