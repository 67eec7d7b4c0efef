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

type ContentHandler struct {
	content       *storage.GuideContents
	categories    *storage.GuideCategories
	subcategories *storage.GuideSubcategories
	media         *storage.Media

	validator *validator.Validate
	logger    *zap.Logger
}

func NewContentHandler(repos *storage.Repositories, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &ContentHandler{
		content:       repos.GuideContent,
		categories:    repos.GuideCategories,
		subcategories: repos.GuideSubcategories,
		media:         repos.Media,

		validator: validator,
		logger:    logger,
	}
}

func (h *ContentHandler) Register(r fiber.Router) {
	r = r.Group("/guide-content")
	r.Use(crud.ErrorsHandler)

	r.Get("/", h.list)
	r.Post("/", h.post)
	r.Get("/:id", h.get)
	r.Put("/:id", h.put)
	r.Delete("/:id", h.delete)
}

func (h *ContentHandler) list(c *fiber.Ctx) error {
	categoryID, byCategory, err := crud.QueryInt64(c, "categoryId")
	if err != nil {
		return err
	}
	subcategoryID, bySubcategory, err := crud.QueryInt64(c, "subcategoryId")
	if err != nil {
		return err
	}

	content, err := h.content.List(c.UserContext(), func(g *storage.GuideContent) bool {
		return (!byCategory || g.CategoryID == categoryID) &&
			(!bySubcategory || g.SubcategoryID == subcategoryID)
	})
	if err != nil {
		return fmt.Errorf("failed to list guide content: %w", err)
	}

	return c.JSON(content)
}

func (h *ContentHandler) get(c *fiber.Ctx) error {
	id, err := crud.ID(c)
	if err != nil {
		return err
	}

	content, err := h.content.Get(c.UserContext(), id)
	if err != nil {
		return fmt.Errorf("failed to get guide content: %w", err)
	}

	return c.JSON(content)
}

func (h *ContentHandler) post(c *fiber.Ctx) error {
	patch, err := crud.ReadPatch(c)
	if err != nil {
		return err
	}

	upload, err := crud.SaveUpload(c, h.media, patch, "media")
	if err != nil {
		return err
	}
	defer upload.Discard(c.UserContext())

	content := new(storage.GuideContent)
	if err := h.apply(patch, content, upload); err != nil {
		return err
	}
	if err := h.validate(c, content); err != nil {
		return err
	}

	if err := h.content.Create(c.UserContext(), content); err != nil {
		return fmt.Errorf("failed to create guide content: %w", err)
	}
	upload.Commit()

	h.logger.Info("guide content created", zap.Int64("id", content.ID))

	return c.Status(fiber.StatusCreated).JSON(content)
}

func (h *ContentHandler) put(c *fiber.Ctx) error {
	id, err := crud.ID(c)
	if err != nil {
		return err
	}

	patch, err := crud.ReadPatch(c)
	if err != nil {
		return err
	}

	upload, err := crud.SaveUpload(c, h.media, patch, "media")
	if err != nil {
		return err
	}
	defer upload.Discard(c.UserContext())

	content, err := h.content.Update(c.UserContext(), id, func(g *storage.GuideContent) error {
		if err := h.apply(patch, g, upload); err != nil {
			return err
		}
		return h.validate(c, g)
	})
	if err != nil {
		return fmt.Errorf("failed to update guide content: %w", err)
	}
	upload.Commit()

	return c.JSON(content)
}

func (h *ContentHandler) delete(c *fiber.Ctx) error {
	id, err := crud.ID(c)
	if err != nil {
		return err
	}

	if err := h.content.Delete(c.UserContext(), id); err != nil {
		return fmt.Errorf("failed to delete guide content: %w", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ContentHandler) apply(p *crud.Patch, g *storage.GuideContent, upload *crud.Upload) error {
	for _, err := range []error{
		p.String("title", &g.Title),
		p.String("description", &g.Description),
		p.OptionalString("article", &g.Article),
		p.Int64("categoryId", &g.CategoryID),
		p.Int64("subcategoryId", &g.SubcategoryID),
		p.String("mediaType", &g.MediaType),
		p.OptionalString("mediaUrl", &g.MediaURL),
	} {
		if err != nil {
			return err
		}
	}

	if upload != nil {
		url := upload.URL()
		g.MediaURL = &url
	}

	return nil
}

func (h *ContentHandler) validate(c *fiber.Ctx, g *storage.GuideContent) error {
	if err := h.validator.Struct(g); err != nil {
		return err //nolint:wrapcheck //handled by crud.ErrorsHandler
	}

	if err := requireCategory(c, h.categories, g.CategoryID); err != nil {
		return err
	}

	subcategory, err := h.subcategories.Get(c.UserContext(), g.SubcategoryID)
	if err != nil || subcategory.CategoryID != g.CategoryID {
		return fiber.NewError(
			fiber.StatusBadRequest,
			fmt.Sprintf("guide subcategory %d does not belong to category %d", g.SubcategoryID, g.CategoryID),
		)
	}

	return nil
}
