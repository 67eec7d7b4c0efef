package guide

import (
	"fmt"

	"github.com/Marat1506/hadj-admin/internal/server/crud"
	"github.com/Marat1506/hadj-admin/internal/storage"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CategoriesHandler struct {
	categories *storage.GuideCategories
	media      *storage.Media

	validator *validator.Validate
	logger    *zap.Logger
}

func NewCategoriesHandler(repos *storage.Repositories, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &CategoriesHandler{
		categories: repos.GuideCategories,
		media:      repos.Media,

		validator: validator,
		logger:    logger,
	}
}

func (h *CategoriesHandler) Register(r fiber.Router) {
	r = r.Group("/guide-categories")
	r.Use(crud.ErrorsHandler)

	r.Get("/", h.list)
	r.Post("/", h.post)
	r.Get("/:id", h.get)
	r.Patch("/:id", h.patch)
	r.Delete("/:id", h.delete)
}

func (h *CategoriesHandler) list(c *fiber.Ctx) error {
	categories, err := h.categories.List(c.UserContext(), nil)
	if err != nil {
		return fmt.Errorf("failed to list guide categories: %w", err)
	}

	return c.JSON(categories)
}

func (h *CategoriesHandler) get(c *fiber.Ctx) error {
	id, err := crud.ID(c)
	if err != nil {
		return err
	}

	category, err := h.categories.Get(c.UserContext(), id)
	if err != nil {
		return fmt.Errorf("failed to get guide category: %w", err)
	}

	return c.JSON(category)
}

func (h *CategoriesHandler) post(c *fiber.Ctx) error {
	patch, err := crud.ReadPatch(c)
	if err != nil {
		return err
	}

	upload, err := crud.SaveUpload(c, h.media, patch, "icon")
	if err != nil {
		return err
	}
	defer upload.Discard(c.UserContext())

	category := new(storage.GuideCategory)
	if err := h.apply(patch, category, upload); err != nil {
		return err
	}
	if err := h.validator.Struct(category); err != nil {
		return err //nolint:wrapcheck //handled by crud.ErrorsHandler
	}

	if err := h.categories.Create(c.UserContext(), category); err != nil {
		return fmt.Errorf("failed to create guide category: %w", err)
	}
	upload.Commit()

	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *CategoriesHandler) patch(c *fiber.Ctx) error {
	id, err := crud.ID(c)
	if err != nil {
		return err
	}

	patch, err := crud.ReadPatch(c)
	if err != nil {
		return err
	}

	upload, err := crud.SaveUpload(c, h.media, patch, "icon")
	if err != nil {
		return err
	}
	defer upload.Discard(c.UserContext())

	category, err := h.categories.Update(c.UserContext(), id, func(g *storage.GuideCategory) error {
		if err := h.apply(patch, g, upload); err != nil {
			return err
		}
		return h.validator.Struct(g)
	})
	if err != nil {
		return fmt.Errorf("failed to update guide category: %w", err)
	}
	upload.Commit()

	return c.JSON(category)
}

func (h *CategoriesHandler) delete(c *fiber.Ctx) error {
	id, err := crud.ID(c)
	if err != nil {
		return err
	}

	if err := h.categories.Delete(c.UserContext(), id); err != nil {
		return fmt.Errorf("failed to delete guide category: %w", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CategoriesHandler) apply(p *crud.Patch, g *storage.GuideCategory, upload *crud.Upload) error {
	if err := p.String("title", &g.Title); err != nil {
		return err
	}
	if err := p.OptionalString("iconUrl", &g.IconURL); err != nil {
		return err
	}

	if upload != nil {
		url := upload.URL()
		g.IconURL = &url
	}

	return nil
}
