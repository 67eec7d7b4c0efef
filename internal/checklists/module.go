package checklists

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"checklists",
		logger.WithNamedLogger("checklists"),
		fx.Provide(NewService),
	)
}
