package checklist

import (
	"fmt"
	"time"

	"github.com/Marat1506/hadj-admin/internal/server/crud"
	"github.com/Marat1506/hadj-admin/internal/storage"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	items *storage.ChecklistItems

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(repos *storage.Repositories, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		items: repos.Checklist,

		validator: validator,
		logger:    logger,
	}
}

func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/checklist")
	r.Use(crud.ErrorsHandler)

	r.Get("/", h.list)
	r.Post("/", h.post)
	r.Get("/stats", h.stats)
	r.Get("/:id", h.get)
	r.Patch("/:id", h.patch)
	r.Patch("/:id/toggle", h.toggle)
	r.Delete("/:id", h.delete)
}

func (h *Handler) list(c *fiber.Ctx) error {
	includeCompleted := c.QueryBool("includeCompleted", true)
	category := c.Query("category")
	userID, hasUser, err := crud.QueryInt64(c, "userId")
	if err != nil {
		return err
	}

	items, err := h.items.List(c.UserContext(), func(i *storage.ChecklistItem) bool {
		switch {
		case !includeCompleted && i.IsCompleted:
			return false
		case category != "" && i.Category != category:
			return false
		case hasUser && (i.UserID == nil || *i.UserID != userID):
			return false
		}
		return true
	})
	if err != nil {
		return fmt.Errorf("failed to list checklist items: %w", err)
	}

	return c.JSON(items)
}

func (h *Handler) stats(c *fiber.Ctx) error {
	items, err := h.items.List(c.UserContext(), nil)
	if err != nil {
		return fmt.Errorf("failed to list checklist items: %w", err)
	}

	return c.JSON(NewStats(items, time.Now()))
}

func (h *Handler) get(c *fiber.Ctx) error {
	id, err := crud.ID(c)
	if err != nil {
		return err
	}

	item, err := h.items.Get(c.UserContext(), id)
	if err != nil {
		return fmt.Errorf("failed to get checklist item: %w", err)
	}

	return c.JSON(item)
}

func (h *Handler) post(c *fiber.Ctx) error {
	patch, err := crud.ReadPatch(c)
	if err != nil {
		return err
	}

	item := &storage.ChecklistItem{Priority: PriorityMedium}
	if err := apply(patch, item); err != nil {
		return err
	}
	if err := h.validator.Struct(item); err != nil {
		return err //nolint:wrapcheck //handled by crud.ErrorsHandler
	}

	if err := h.items.Create(c.UserContext(), item); err != nil {
		return fmt.Errorf("failed to create checklist item: %w", err)
	}

	h.logger.Info("checklist item created", zap.Int64("id", item.ID))

	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *Handler) patch(c *fiber.Ctx) error {
	id, err := crud.ID(c)
	if err != nil {
		return err
	}

	patch, err := crud.ReadPatch(c)
	if err != nil {
		return err
	}

	item, err := h.items.Update(c.UserContext(), id, func(i *storage.ChecklistItem) error {
		wasCompleted := i.IsCompleted
		if err := apply(patch, i); err != nil {
			return err
		}
		if !patch.Has("completedAt") && wasCompleted != i.IsCompleted {
			markCompleted(i, time.Now())
		}
		return h.validator.Struct(i)
	})
	if err != nil {
		return fmt.Errorf("failed to update checklist item: %w", err)
	}

	return c.JSON(item)
}

func (h *Handler) toggle(c *fiber.Ctx) error {
	id, err := crud.ID(c)
	if err != nil {
		return err
	}

	item, err := h.items.Update(c.UserContext(), id, func(i *storage.ChecklistItem) error {
		i.IsCompleted = !i.IsCompleted
		markCompleted(i, time.Now())
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to toggle checklist item: %w", err)
	}

	h.logger.Debug("checklist item toggled", zap.Int64("id", id), zap.Bool("completed", item.IsCompleted))

	return c.JSON(item)
}

func (h *Handler) delete(c *fiber.Ctx) error {
	id, err := crud.ID(c)
	if err != nil {
		return err
	}

	if err := h.items.Delete(c.UserContext(), id); err != nil {
		return fmt.Errorf("failed to delete checklist item: %w", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func apply(p *crud.Patch, i *storage.ChecklistItem) error {
	for _, err := range []error{
		p.OptionalInt64("userId", &i.UserID),
		p.String("title", &i.Title),
		p.OptionalString("description", &i.Description),
		p.String("category", &i.Category),
		p.String("priority", &i.Priority),
		p.Bool("isCompleted", &i.IsCompleted),
		p.OptionalTime("completedAt", &i.CompletedAt),
		p.OptionalTime("dueDate", &i.DueDate),
		p.OptionalInt64("order", &i.Order),
		p.OptionalBool("isActive", &i.IsActive),
	} {
		if err != nil {
			return err
		}
	}

	return nil
}

func markCompleted(i *storage.ChecklistItem, now time.Time) {
	if !i.IsCompleted {
		i.CompletedAt = nil
		return
	}

	completedAt := now.UTC()
	i.CompletedAt = &completedAt
}
