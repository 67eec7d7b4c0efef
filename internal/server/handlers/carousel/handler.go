package carousel

import (
	"fmt"

	"github.com/Marat1506/hadj-admin/internal/server/crud"
	"github.com/Marat1506/hadj-admin/internal/storage"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	banners *storage.Banners
	media   *storage.Media

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(repos *storage.Repositories, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		banners: repos.Banners,
		media:   repos.Media,

		validator: validator,
		logger:    logger,
	}
}

func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/carousel")
	r.Use(crud.ErrorsHandler)

	r.Get("/", h.list)
	r.Post("/", h.post)
	r.Get("/:id", h.get)
	r.Put("/:id", h.put)
	r.Delete("/:id", h.delete)
}

func (h *Handler) list(c *fiber.Ctx) error {
	banners, err := h.banners.List(c.UserContext(), nil)
	if err != nil {
		return fmt.Errorf("failed to list carousel items: %w", err)
	}

	return c.JSON(banners)
}

func (h *Handler) get(c *fiber.Ctx) error {
	id, err := crud.ID(c)
	if err != nil {
		return err
	}

	banner, err := h.banners.Get(c.UserContext(), id)
	if err != nil {
		return fmt.Errorf("failed to get carousel item: %w", err)
	}

	return c.JSON(banner)
}

func (h *Handler) post(c *fiber.Ctx) error {
	patch, err := crud.ReadPatch(c)
	if err != nil {
		return err
	}

	upload, err := crud.SaveUpload(c, h.media, patch, "photo")
	if err != nil {
		return err
	}
	defer upload.Discard(c.UserContext())

	banner := new(storage.Banner)
	if err := h.apply(patch, banner, upload); err != nil {
		return err
	}
	if err := h.validator.Struct(banner); err != nil {
		return err //nolint:wrapcheck //handled by crud.ErrorsHandler
	}

	if err := h.banners.Create(c.UserContext(), banner); err != nil {
		return fmt.Errorf("failed to create carousel item: %w", err)
	}
	upload.Commit()

	h.logger.Info("carousel item created", zap.Int64("id", banner.ID))

	return c.Status(fiber.StatusCreated).JSON(banner)
}

func (h *Handler) put(c *fiber.Ctx) error {
	id, err := crud.ID(c)
	if err != nil {
		return err
	}

	patch, err := crud.ReadPatch(c)
	if err != nil {
		return err
	}

	upload, err := crud.SaveUpload(c, h.media, patch, "photo")
	if err != nil {
		return err
	}
	defer upload.Discard(c.UserContext())

	banner, err := h.banners.Update(c.UserContext(), id, func(b *storage.Banner) error {
		if err := h.apply(patch, b, upload); err != nil {
			return err
		}
		return h.validator.Struct(b)
	})
	if err != nil {
		return fmt.Errorf("failed to update carousel item: %w", err)
	}
	upload.Commit()

	return c.JSON(banner)
}

func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := crud.ID(c)
	if err != nil {
		return err
	}

	if err := h.banners.Delete(c.UserContext(), id); err != nil {
		return fmt.Errorf("failed to delete carousel item: %w", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) apply(p *crud.Patch, b *storage.Banner, upload *crud.Upload) error {
	if err := p.String("title", &b.Title); err != nil {
		return err
	}
	if err := p.OptionalString("link", &b.Link); err != nil {
		return err
	}

	if upload != nil {
		b.Image = upload.URL()
	}

	return nil
}
