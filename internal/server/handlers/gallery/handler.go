package gallery

import (
	"fmt"

	"github.com/Marat1506/hadj-admin/internal/server/crud"
	"github.com/Marat1506/hadj-admin/internal/storage"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

type Handler struct {
	gallery *storage.GalleryItems
	media   *storage.Media

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(repos *storage.Repositories, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		gallery: repos.Gallery,
		media:   repos.Media,

		validator: validator,
		logger:    logger,
	}
}

func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/gallery")
	r.Use(crud.ErrorsHandler)

	r.Get("/", h.list)
	r.Post("/", h.post)
	r.Get("/:id", h.get)
	r.Put("/:id", h.put)
	r.Delete("/:id", h.delete)
}

func (h *Handler) list(c *fiber.Ctx) error {
	mediaType := c.Query("mediaType")

	items, err := h.gallery.List(c.UserContext(), func(g *storage.GalleryItem) bool {
		return mediaType == "" || g.MediaType == mediaType
	})
	if err != nil {
		return fmt.Errorf("failed to list gallery items: %w", err)
	}

	return c.JSON(items)
}

func (h *Handler) get(c *fiber.Ctx) error {
	id, err := crud.ID(c)
	if err != nil {
		return err
	}

	item, err := h.gallery.Get(c.UserContext(), id)
	if err != nil {
		return fmt.Errorf("failed to get gallery item: %w", err)
	}

	return c.JSON(item)
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

	item := new(storage.GalleryItem)
	if err := h.apply(patch, item, upload); err != nil {
		return err
	}
	if err := h.validator.Struct(item); err != nil {
		return err //nolint:wrapcheck //handled by crud.ErrorsHandler
	}

	if err := h.gallery.Create(c.UserContext(), item); err != nil {
		return fmt.Errorf("failed to create gallery item: %w", err)
	}
	upload.Commit()

	h.logger.Info("gallery item created", zap.Int64("id", item.ID), zap.String("media_type", item.MediaType))

	return c.Status(fiber.StatusCreated).JSON(item)
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

	item, err := h.gallery.Update(c.UserContext(), id, func(g *storage.GalleryItem) error {
		if err := h.apply(patch, g, upload); err != nil {
			return err
		}
		return h.validator.Struct(g)
	})
	if err != nil {
		return fmt.Errorf("failed to update gallery item: %w", err)
	}
	upload.Commit()

	return c.JSON(item)
}

func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := crud.ID(c)
	if err != nil {
		return err
	}

	if err := h.gallery.Delete(c.UserContext(), id); err != nil {
		return fmt.Errorf("failed to delete gallery item: %w", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// apply sets mediaUrl from an uploaded photo, a videoUrl or a plain
// mediaUrl field, in that order.
func (h *Handler) apply(p *crud.Patch, g *storage.GalleryItem, upload *crud.Upload) error {
	var videoURL string
	for _, err := range []error{
		p.String("mediaType", &g.MediaType),
		p.OptionalString("title", &g.Title),
		p.OptionalString("description", &g.Description),
		p.Int64("order", &g.Order),
		p.String("mediaUrl", &g.MediaURL),
		p.String("videoUrl", &videoURL),
	} {
		if err != nil {
			return err
		}
	}

	if upload != nil {
		g.MediaURL = upload.URL()
		if g.MediaType == "" {
			g.MediaType = MediaTypeImage
		}
		return nil
	}

	if videoURL != "" {
		g.MediaURL = videoURL
		if g.MediaType == "" {
			g.MediaType = MediaTypeVideo
		}
	}

	return nil
}
