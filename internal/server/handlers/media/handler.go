package media

import (
	"errors"
	"fmt"

	"github.com/Marat1506/hadj-admin/internal/storage"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves uploaded files. It is mounted outside of authentication so
// that media URLs can be embedded directly.
type Handler struct {
	media *storage.Media

	logger *zap.Logger
}

func NewHandler(repos *storage.Repositories, logger *zap.Logger) handler.Handler {
	return &Handler{
		media: repos.Media,

		logger: logger,
	}
}

func (h *Handler) Register(r fiber.Router) {
	r.Get("/media/:name", h.get)
}

func (h *Handler) get(c *fiber.Ctx) error {
	contentType, data, err := h.media.Open(c.UserContext(), c.Params("name"))
	if errors.Is(err, storage.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "media not found")
	}
	if err != nil {
		return fmt.Errorf("failed to open media: %w", err)
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400, immutable")

	return c.Send(data)
}
