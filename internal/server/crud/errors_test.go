package crud_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Marat1506/hadj-admin/internal/server/crud"
	"github.com/Marat1506/hadj-admin/internal/storage"
	"github.com/go-core-fx/fiberfx"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestErrorsHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: fiberfx.NewJSONErrorHandler(zaptest.NewLogger(t))})

	r := app.Group("/")
	r.Use(crud.ErrorsHandler)
	r.Get("/missing", func(*fiber.Ctx) error {
		return fmt.Errorf("failed to get news item: %w", storage.ErrNotFound)
	})
	r.Get("/invalid", func(*fiber.Ctx) error {
		return fmt.Errorf("failed to update news item: %w", fiber.NewError(fiber.StatusBadRequest, "order has an invalid value"))
	})
	r.Get("/internal", func(*fiber.Ctx) error {
		return errors.New("badger: value log is corrupted")
	})
	r.Get("/canceled", func(*fiber.Ctx) error {
		return fmt.Errorf("failed to list news: %w", context.Canceled)
	})

	tests := []struct {
		path    string
		code    int
		message string
	}{
		{"/missing", fiber.StatusNotFound, "failed to get news item: not found"},
		{"/invalid", fiber.StatusBadRequest, "order has an invalid value"},
		{"/internal", fiber.StatusInternalServerError, "Internal Server Error"},
		{"/canceled", fiberfx.StatusClientClosedRequest, "client closed request"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			res, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			defer res.Body.Close()

			var body fiberfx.ErrorResponse
			require.NoError(t, json.NewDecoder(res.Body).Decode(&body))

			assert.Equal(t, tt.code, res.StatusCode)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}
