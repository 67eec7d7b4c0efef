package attractions

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
	attractions *storage.Attractions
	media       *storage.Media

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(repos *storage.Repositories, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		attractions: repos.Attractions,
		media:       repos.Media,

		validator: validator,
		logger:    logger,
	}
}

func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/attractions")
	r.Use(crud.ErrorsHandler)

	r.Get("/", h.list)
	r.Post("/", h.post)
	r.Get("/:id", h.get)
	r.Put("/:id", h.put)
	r.Delete("/:id", h.delete)
}

func (h *Handler) list(c *fiber.Ctx) error {
	category := c.Query("category")

	attractions, err := h.attractions.List(c.UserContext(), func(a *storage.Attraction) bool {
		return category == "" || (a.Category != nil && *a.Category == category)
	})
	if err != nil {
		return fmt.Errorf("failed to list attractions: %w", err)
	}

	return c.JSON(attractions)
}

func (h *Handler) get(c *fiber.Ctx) error {
	id, err := crud.ID(c)
	if err != nil {
		return err
	}

	attraction, err := h.attractions.Get(c.UserContext(), id)
	if err != nil {
		return fmt.Errorf("failed to get attraction: %w", err)
	}

	return c.JSON(attraction)
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

	attraction := new(storage.Attraction)
	if err := h.apply(patch, attraction, upload); err != nil {
		return err
	}
	if err := h.validator.Struct(attraction); err != nil {
		return err //nolint:wrapcheck //handled by crud.ErrorsHandler
	}

	if err := h.attractions.Create(c.UserContext(), attraction); err != nil {
		return fmt.Errorf("failed to create attraction: %w", err)
	}
	upload.Commit()

	h.logger.Info("attraction created", zap.Int64("id", attraction.ID))

	return c.Status(fiber.StatusCreated).JSON(attraction)
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

	attraction, err := h.attractions.Update(c.UserContext(), id, func(a *storage.Attraction) error {
		if err := h.apply(patch, a, upload); err != nil {
			return err
		}
		return h.validator.Struct(a)
	})
	if err != nil {
		return fmt.Errorf("failed to update attraction: %w", err)
	}
	upload.Commit()

	return c.JSON(attraction)
}

func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := crud.ID(c)
	if err != nil {
		return err
	}

	if err := h.attractions.Delete(c.UserContext(), id); err != nil {
		return fmt.Errorf("failed to delete attraction: %w", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) apply(p *crud.Patch, a *storage.Attraction, upload *crud.Upload) error {
	for _, err := range []error{
		p.String("title", &a.Title),
		p.String("description", &a.Description),
		p.OptionalString("additionalInformation", &a.AdditionalInformation),
		p.OptionalString("location", &a.Location),
		p.OptionalString("category", &a.Category),
	} {
		if err != nil {
			return err
		}
	}

	if upload != nil {
		a.Cover = upload.URL()
	}

	return nil
}
