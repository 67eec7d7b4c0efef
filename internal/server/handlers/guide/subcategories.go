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

type SubcategoriesHandler struct {
	subcategories *storage.GuideSubcategories
	categories    *storage.GuideCategories
	media         *storage.Media

	validator *validator.Validate
	logger    *zap.Logger
}

func NewSubcategoriesHandler(repos *storage.Repositories, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &SubcategoriesHandler{
		subcategories: repos.GuideSubcategories,
		categories:    repos.GuideCategories,
		media:         repos.Media,

		validator: validator,
		logger:    logger,
	}
}

func (h *SubcategoriesHandler) Register(r fiber.Router) {
	r = r.Group("/guide-subcategories")
	r.Use(crud.ErrorsHandler)

	r.Get("/", h.list)
	r.Post("/", h.post)
	r.Get("/:id", h.get)
	r.Patch("/:id", h.patch)
	r.Delete("/:id", h.delete)
}

func (h *SubcategoriesHandler) list(c *fiber.Ctx) error {
	categoryID, scoped, err := crud.QueryInt64(c, "categoryId")
	if err != nil {
		return err
	}

	subcategories, err := h.subcategories.List(c.UserContext(), func(s *storage.GuideSubcategory) bool {
		return !scoped || s.CategoryID == categoryID
	})
	if err != nil {
		return fmt.Errorf("failed to list guide subcategories: %w", err)
	}

	return c.JSON(subcategories)
}

func (h *SubcategoriesHandler) get(c *fiber.Ctx) error {
	id, err := crud.ID(c)
	if err != nil {
		return err
	}

	subcategory, err := h.subcategories.Get(c.UserContext(), id)
	if err != nil {
		return fmt.Errorf("failed to get guide subcategory: %w", err)
	}

	return c.JSON(subcategory)
}

func (h *SubcategoriesHandler) post(c *fiber.Ctx) error {
	patch, err := crud.ReadPatch(c)
	if err != nil {
		return err
	}

	upload, err := crud.SaveUpload(c, h.media, patch, "image")
	if err != nil {
		return err
	}
	defer upload.Discard(c.UserContext())

	subcategory := new(storage.GuideSubcategory)
	if err := h.apply(patch, subcategory, upload); err != nil {
		return err
	}
	if err := h.validate(c, subcategory); err != nil {
		return err
	}

	if err := h.subcategories.Create(c.UserContext(), subcategory); err != nil {
		return fmt.Errorf("failed to create guide subcategory: %w", err)
	}
	upload.Commit()

	return c.Status(fiber.StatusCreated).JSON(subcategory)
}

func (h *SubcategoriesHandler) patch(c *fiber.Ctx) error {
	id, err := crud.ID(c)
	if err != nil {
		return err
	}

	patch, err := crud.ReadPatch(c)
	if err != nil {
		return err
	}

	upload, err := crud.SaveUpload(c, h.media, patch, "image")
	if err != nil {
		return err
	}
	defer upload.Discard(c.UserContext())

	subcategory, err := h.subcategories.Update(c.UserContext(), id, func(s *storage.GuideSubcategory) error {
		if err := h.apply(patch, s, upload); err != nil {
			return err
		}
		return h.validate(c, s)
	})
	if err != nil {
		return fmt.Errorf("failed to update guide subcategory: %w", err)
	}
	upload.Commit()

	return c.JSON(subcategory)
}

func (h *SubcategoriesHandler) delete(c *fiber.Ctx) error {
	id, err := crud.ID(c)
	if err != nil {
		return err
	}

	if err := h.subcategories.Delete(c.UserContext(), id); err != nil {
		return fmt.Errorf("failed to delete guide subcategory: %w", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SubcategoriesHandler) apply(p *crud.Patch, s *storage.GuideSubcategory, upload *crud.Upload) error {
	for _, err := range []error{
		p.String("title", &s.Title),
		p.OptionalString("description", &s.Description),
		p.Int64("categoryId", &s.CategoryID),
	} {
		if err != nil {
			return err
		}
	}

	if upload != nil {
		url := upload.URL()
		s.Image = &url
	}

	return nil
}

func (h *SubcategoriesHandler) validate(c *fiber.Ctx, s *storage.GuideSubcategory) error {
	if err := h.validator.Struct(s); err != nil {
		return err //nolint:wrapcheck //handled by crud.ErrorsHandler
	}

	return requireCategory(c, h.categories, s.CategoryID)
}

func requireCategory(c *fiber.Ctx, categories *storage.GuideCategories, id int64) error {
	if _, err := categories.Get(c.UserContext(), id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("guide category %d does not exist", id))
	}

	return nil
}
