package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/Marat1506/hadj-admin/internal/auth"
	"github.com/Marat1506/hadj-admin/internal/config"
	"github.com/Marat1506/hadj-admin/internal/server"
	"github.com/Marat1506/hadj-admin/internal/storage"
	"github.com/Marat1506/hadj-admin/pkg/badgerfx"
	"github.com/capcom6/go-infra-fx/validator"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/healthfx"
	"github.com/go-core-fx/logger"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type twinFlags struct {
	address  string
	inMemory bool
	secret   string
}

func twinCommand(rt *runtime) *cobra.Command {
	var flags twinFlags

	cmd := &cobra.Command{
		Use:   "twin",
		Short: "Run a local CMS backend for development",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := rt.loadConfig()
			if err != nil {
				return err
			}
			flags.apply(&cfg)

			fx.New(twinModules(cfg)...).Run()

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.address, "address", "", "listen address, overrides http.address")
	cmd.Flags().BoolVar(&flags.inMemory, "in-memory", false, "keep data in memory only")
	cmd.Flags().StringVar(&flags.secret, "secret", "", "enable bearer authentication with this signing secret")

	cmd.AddCommand(twinTokenCommand(rt, &flags))

	return cmd
}

func (f twinFlags) apply(cfg *config.Config) {
	if f.address != "" {
		cfg.HTTP.Address = f.address
	}
	if f.inMemory {
		cfg.Storage.InMemory = true
	}
	if f.secret != "" {
		cfg.Auth.Secret = f.secret
	}
}

func twinModules(cfg config.Config) []fx.Option {
	return []fx.Option{
		// CORE MODULES
		logger.Module(),
		logger.WithFxDefaultLogger(),
		badgerfx.Module(),
		healthfx.Module(),
		fiberfx.Module(),
		validator.Module,
		//
		// APP MODULES
		fx.Supply(cfg),
		config.Module(),
		storage.Module(),
		auth.Module(),
		server.Module(),
		//
		fx.Provide(func() healthfx.Version { return healthfx.Version{Version: Version, ReleaseID: 1} }),
		//
		// LIFECYCLE MANAGEMENT
		fx.Invoke(func(lc fx.Lifecycle, authSvc *auth.Service, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					logger.Info("CMS twin starting up",
						zap.String("address", cfg.HTTP.Address),
						zap.Bool("in_memory", cfg.Storage.InMemory),
						zap.Bool("auth", authSvc.Enabled()),
					)
					return nil
				},
				OnStop: func(_ context.Context) error {
					logger.Info("CMS twin shutting down")
					return nil
				},
			})
		}),
	}
}

func twinTokenCommand(rt *runtime, twin *twinFlags) *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token accepted by the twin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := rt.loadConfig()
			if err != nil {
				return err
			}
			twin.apply(&cfg)
			if ttl > 0 {
				cfg.Auth.TokenTTL = ttl
			}

			var authSvc *auth.Service
			app := fx.New(
				fx.NopLogger,
				fx.Supply(cfg, rt.newLogger(cmd.ErrOrStderr())),
				config.Module(),
				auth.Module(),
				fx.Populate(&authSvc),
			)
			if err := app.Err(); err != nil {
				return fmt.Errorf("failed to build: %w", err)
			}

			token, err := authSvc.GenerateToken(subject, auth.UserRole(role))
			if err != nil {
				return fmt.Errorf("failed to issue token: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err //nolint:wrapcheck //write errors are reported as is
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "admin", "token subject")
	cmd.Flags().StringVar(&role, "role", string(auth.UserRoleAdmin), "token role")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime, overrides auth.token_ttl")
	cmd.Flags().StringVar(&twin.secret, "secret", "", "signing secret, overrides auth.secret")

	return cmd
}
