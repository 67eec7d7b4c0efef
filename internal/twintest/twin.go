// Package twintest runs the REST API on a loopback listener backed by an
// in-memory badger database.
package twintest

import (
	"net"
	"testing"
	"time"

	"github.com/Marat1506/hadj-admin/internal/auth"
	"github.com/Marat1506/hadj-admin/internal/server"
	"github.com/Marat1506/hadj-admin/internal/storage"
	"github.com/Marat1506/hadj-admin/pkg/badgerfx"
	"github.com/Marat1506/hadj-admin/pkg/resource"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

const (
	Issuer = "hadj-admin-test"
)

type Twin struct {
	// URL is the API root, e.g. http://127.0.0.1:43121/api
	URL   string
	Repos *storage.Repositories
	Auth  *auth.Service

	logger *zap.Logger
}

type Option func(*options)

type options struct {
	secret []byte
}

// WithSecret enables bearer authentication.
func WithSecret(secret string) Option {
	return func(o *options) {
		o.secret = []byte(secret)
	}
}

func Start(t *testing.T, opts ...Option) *Twin {
	t.Helper()

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	logger := zaptest.NewLogger(t)

	db, err := badgerfx.New(badgerfx.Config{InMemory: true}, logger)
	require.NoError(t, err)

	repos := storage.NewRepositories(db)
	authSvc := auth.NewService(auth.Config{SecretKey: o.secret, Issuer: Issuer, TokenTTL: time.Hour}, logger)

	app := fiber.New(fiber.Config{
		ErrorHandler:          fiberfx.NewJSONErrorHandler(logger),
		DisableStartupMessage: true,
	})
	server.Mount(app, repos, authSvc, logger, server.Handlers(repos, validator.New(), logger)...)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		_ = app.Listener(ln)
	}()

	t.Cleanup(func() {
		_ = app.Shutdown()
		_ = db.Close()
	})

	return &Twin{
		URL:   "http://" + ln.Addr().String() + server.APIPrefix,
		Repos: repos,
		Auth:  authSvc,

		logger: logger,
	}
}

// Client returns a client for the twin. Options are applied on top of a
// test logger.
func (tw *Twin) Client(t *testing.T, token string, opts ...resource.Option) *resource.Client {
	t.Helper()

	client, err := resource.NewClient(resource.Config{
		BaseURL: tw.URL,
		Token:   token,
		Timeout: 5 * time.Second,
	}, tw.logger, opts...)
	require.NoError(t, err)

	return client
}

// Token issues an admin token. Authentication must be enabled.
func (tw *Twin) Token(t *testing.T) string {
	t.Helper()

	token, err := tw.Auth.GenerateToken("test", auth.UserRoleAdmin)
	require.NoError(t, err)

	return token
}
