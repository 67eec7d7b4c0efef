package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Marat1506/hadj-admin/internal/analytics"
	"github.com/Marat1506/hadj-admin/internal/api"
	"github.com/Marat1506/hadj-admin/internal/attractions"
	"github.com/Marat1506/hadj-admin/internal/cache"
	"github.com/Marat1506/hadj-admin/internal/carousel"
	"github.com/Marat1506/hadj-admin/internal/checklists"
	"github.com/Marat1506/hadj-admin/internal/config"
	"github.com/Marat1506/hadj-admin/internal/gallery"
	"github.com/Marat1506/hadj-admin/internal/guide"
	"github.com/Marat1506/hadj-admin/internal/news"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Services is what a command works with.
type Services struct {
	fx.In

	Attractions *attractions.Service
	Carousel    *carousel.Service
	Checklists  *checklists.Service
	Gallery     *gallery.Service
	Guide       *guide.Service
	News        *news.Service
	Analytics   *analytics.Service
}

type runtime struct {
	flags globalFlags
}

func (r *runtime) loadConfig() (config.Config, error) {
	cfg, err := config.New(r.flags.configPath)
	if err != nil {
		return config.Config{}, err //nolint:wrapcheck //already wrapped
	}

	if r.flags.baseURL != "" {
		cfg.API.BaseURL = r.flags.baseURL
	}
	if r.flags.token != "" {
		cfg.API.Token = r.flags.token
	}

	return cfg, nil
}

func (r *runtime) newLogger(w io.Writer) *zap.Logger {
	level := zapcore.WarnLevel
	if r.flags.verbose {
		level = zapcore.DebugLevel
	}

	encoder := zap.NewDevelopmentEncoderConfig()
	encoder.EncodeLevel = zapcore.CapitalColorLevelEncoder

	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(encoder), zapcore.AddSync(w), level))
}

// run starts a short-lived application for one command and hands its
// services to fn.
func (r *runtime) run(cmd *cobra.Command, fn func(ctx context.Context, s Services) error) error {
	cfg, err := r.loadConfig()
	if err != nil {
		return err
	}

	logger := r.newLogger(cmd.ErrOrStderr())
	defer func() { _ = logger.Sync() }()

	registry := prometheus.NewRegistry()

	var services Services
	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg, logger),
		fx.Provide(func() prometheus.Registerer { return registry }),
		config.Module(),
		cache.Module(),
		api.Module(),
		attractions.Module(),
		carousel.Module(),
		checklists.Module(),
		gallery.Module(),
		guide.Module(),
		news.Module(),
		analytics.Module(),
		fx.Invoke(func(s Services) { services = s }),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}

	runErr := fn(ctx, services)

	if r.flags.metrics {
		if err := dumpMetrics(cmd.ErrOrStderr(), registry); err != nil {
			logger.Warn("failed to print metrics", zap.Error(err))
		}
	}

	return errors.Join(runErr, app.Stop(context.WithoutCancel(ctx)))
}

func dumpMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	encoder := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := encoder.Encode(family); err != nil {
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}

	return nil
}
