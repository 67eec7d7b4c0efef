package api

import (
	"github.com/Marat1506/hadj-admin/pkg/resource"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the shared CMS client. It expects a resource.Config, a
// prometheus.Registerer and an optional resource.Cache.
func Module() fx.Option {
	return fx.Module(
		"api",
		logger.WithNamedLogger("api"),
		fx.Provide(resource.NewMetrics, fx.Private),
		fx.Provide(New),
	)
}

type Params struct {
	fx.In

	Config  resource.Config
	Cache   resource.Cache `optional:"true"`
	Metrics *resource.Metrics
	Logger  *zap.Logger
}

func New(p Params) (*resource.Client, error) {
	opts := []resource.Option{resource.WithMetrics(p.Metrics)}
	if p.Cache != nil {
		opts = append(opts, resource.WithCache(p.Cache))
	}

	client, err := resource.NewClient(p.Config, p.Logger, opts...)
	if err != nil {
		return nil, err //nolint:wrapcheck //already descriptive
	}

	p.Logger.Debug("cms client ready", zap.String("base_url", client.BaseURL()))

	return client, nil
}
