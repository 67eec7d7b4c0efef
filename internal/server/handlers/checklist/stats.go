package checklist

import (
	"time"

	"github.com/Marat1506/hadj-admin/internal/storage"
)

const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// Stats summarizes the checklist. Overdue items are pending items whose
// due date has passed.
type Stats struct {
	Total      int            `json:"total"`
	Completed  int            `json:"completed"`
	Pending    int            `json:"pending"`
	Overdue    int            `json:"overdue"`
	ByCategory map[string]int `json:"byCategory"`
	ByPriority map[string]int `json:"byPriority"`
}

func NewStats(items []storage.ChecklistItem, now time.Time) Stats {
	stats := Stats{
		Total:      len(items),
		ByCategory: map[string]int{},
		ByPriority: map[string]int{},
	}

	for _, item := range items {
		stats.ByCategory[item.Category]++
		stats.ByPriority[item.Priority]++

		if item.IsCompleted {
			stats.Completed++
			continue
		}

		stats.Pending++
		if item.DueDate != nil && item.DueDate.Before(now) {
			stats.Overdue++
		}
	}

	return stats
}
