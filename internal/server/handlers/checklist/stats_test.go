package checklist_test

import (
	"testing"
	"time"

	"github.com/Marat1506/hadj-admin/internal/server/handlers/checklist"
	"github.com/Marat1506/hadj-admin/internal/storage"
	"github.com/stretchr/testify/assert"
)

func TestNewStats(t *testing.T) {
	now := time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	stats := checklist.NewStats([]storage.ChecklistItem{
		{Category: "documents", Priority: checklist.PriorityHigh, DueDate: &past},
		{Category: "documents", Priority: checklist.PriorityHigh, DueDate: &past, IsCompleted: true},
		{Category: "packing", Priority: checklist.PriorityLow, DueDate: &future},
		{Category: "packing", Priority: checklist.PriorityLow},
	}, now)

	assert.Equal(t, checklist.Stats{
		Total:      4,
		Completed:  1,
		Pending:    3,
		Overdue:    1,
		ByCategory: map[string]int{"documents": 2, "packing": 2},
		ByPriority: map[string]int{"high": 2, "low": 2},
	}, stats)

	empty := checklist.NewStats(nil, now)
	assert.Equal(t, 0, empty.Total)
	assert.NotNil(t, empty.ByCategory)
}
