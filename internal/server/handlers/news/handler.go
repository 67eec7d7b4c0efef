package news

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
	news  *storage.NewsItems
	media *storage.Media

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(repos *storage.Repositories, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		news:  repos.News,
		media: repos.Media,

		validator: validator,
		logger:    logger,
	}
}

func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/news")
	r.Use(crud.ErrorsHandler)

	r.Get("/", h.list)
	r.Post("/", h.post)
	r.Get("/:id", h.get)
	r.Put("/:id", h.put)
	r.Delete("/:id", h.delete)
}

func (h *Handler) list(c *fiber.Ctx) error {
	publishedOnly := c.QueryBool("published", false)

	items, err := h.news.List(c.UserContext(), func(n *storage.NewsItem) bool {
		return !publishedOnly || n.IsPublished
	})
	if err != nil {
		return fmt.Errorf("failed to list news: %w", err)
	}

	return c.JSON(items)
}

func (h *Handler) get(c *fiber.Ctx) error {
	id, err := crud.ID(c)
	if err != nil {
		return err
	}

	item, err := h.news.Get(c.UserContext(), id)
	if err != nil {
		return fmt.Errorf("failed to get news item: %w", err)
	}

	return c.JSON(item)
}

func (h *Handler) post(c *fiber.Ctx) error {
	patch, err := crud.ReadPatch(c)
	if err != nil {
		return err
	}

	upload, err := crud.SaveUpload(c, h.media, patch, "cover")
	if err != nil {
		return err
	}
	defer upload.Discard(c.UserContext())

	item := new(storage.NewsItem)
	if err := h.apply(patch, item, upload); err != nil {
		return err
	}
	if err := h.validator.Struct(item); err != nil {
		return err //nolint:wrapcheck //handled by crud.ErrorsHandler
	}

	if err := h.news.Create(c.UserContext(), item); err != nil {
		return fmt.Errorf("failed to create news item: %w", err)
	}
	upload.Commit()

	h.logger.Info("news item created", zap.Int64("id", item.ID))

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

	upload, err := crud.SaveUpload(c, h.media, patch, "cover")
	if err != nil {
		return err
	}
	defer upload.Discard(c.UserContext())

	item, err := h.news.Update(c.UserContext(), id, func(n *storage.NewsItem) error {
		if err := h.apply(patch, n, upload); err != nil {
			return err
		}
		return h.validator.Struct(n)
	})
	if err != nil {
		return fmt.Errorf("failed to update news item: %w", err)
	}
	upload.Commit()

	return c.JSON(item)
}

func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := crud.ID(c)
	if err != nil {
		return err
	}

	if err := h.news.Delete(c.UserContext(), id); err != nil {
		return fmt.Errorf("failed to delete news item: %w", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) apply(p *crud.Patch, n *storage.NewsItem, upload *crud.Upload) error {
	for _, err := range []error{
		p.String("title", &n.Title),
		p.String("description", &n.Description),
		p.String("additionalInformation", &n.AdditionalInformation),
		p.Bool("isPublished", &n.IsPublished),
	} {
		if err != nil {
			return err
		}
	}

	if upload != nil {
		n.Cover = upload.URL()
	}

	return nil
}
