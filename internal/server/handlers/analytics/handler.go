package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/Marat1506/hadj-admin/internal/storage"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// trendWindow is the period new customers are counted over.
const trendWindow = 30 * 24 * time.Hour

type Dashboard struct {
	TotalCustomers int     `json:"totalCustomers"`
	CustomersTrend float64 `json:"customersTrend"`
	TasksProgress  float64 `json:"tasksProgress"`
}

type Handler struct {
	checklist *storage.ChecklistItems

	logger *zap.Logger
}

func NewHandler(repos *storage.Repositories, logger *zap.Logger) handler.Handler {
	return &Handler{
		checklist: repos.Checklist,

		logger: logger,
	}
}

func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/analytics")

	r.Get("/dashboard", h.dashboard)
}

func (h *Handler) dashboard(c *fiber.Ctx) error {
	items, err := h.checklist.List(c.UserContext(), nil)
	if err != nil {
		return fmt.Errorf("failed to list checklist items: %w", err)
	}

	return c.JSON(NewDashboard(items, time.Now()))
}

// NewDashboard derives the dashboard from checklist items. A customer is a
// distinct userId; the trend compares customers first seen within the last
// 30 days with those seen before.
func NewDashboard(items []storage.ChecklistItem, now time.Time) Dashboard {
	firstSeen := map[int64]time.Time{}
	for _, item := range items {
		if item.UserID == nil {
			continue
		}
		if seen, ok := firstSeen[*item.UserID]; !ok || item.CreatedAt.Before(seen) {
			firstSeen[*item.UserID] = item.CreatedAt
		}
	}

	recent := lo.CountBy(lo.Values(firstSeen), func(t time.Time) bool {
		return now.Sub(t) <= trendWindow
	})
	older := len(firstSeen) - recent

	dashboard := Dashboard{TotalCustomers: len(firstSeen)}
	switch {
	case older > 0:
		dashboard.CustomersTrend = round(float64(recent) / float64(older) * 100)
	case recent > 0:
		dashboard.CustomersTrend = 100
	}

	if len(items) > 0 {
		completed := lo.CountBy(items, func(i storage.ChecklistItem) bool { return i.IsCompleted })
		dashboard.TasksProgress = round(float64(completed) / float64(len(items)) * 100)
	}

	return dashboard
}

func round(v float64) float64 {
	return math.Round(v*10) / 10
}
