package attractions

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"attractions",
		logger.WithNamedLogger("attractions"),
		fx.Provide(NewService),
	)
}
