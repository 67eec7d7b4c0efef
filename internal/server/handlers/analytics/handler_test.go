package analytics_test

import (
	"testing"
	"time"

	"github.com/Marat1506/hadj-admin/internal/server/handlers/analytics"
	"github.com/Marat1506/hadj-admin/internal/storage"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func item(userID int64, createdAt time.Time, completed bool) storage.ChecklistItem {
	i := storage.ChecklistItem{UserID: lo.ToPtr(userID), IsCompleted: completed}
	i.CreatedAt = createdAt
	return i
}

func TestNewDashboard(t *testing.T) {
	now := time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)
	old := now.Add(-90 * 24 * time.Hour)
	recent := now.Add(-24 * time.Hour)

	tests := []struct {
		name  string
		items []storage.ChecklistItem
		want  analytics.Dashboard
	}{
		{
			name: "empty",
			want: analytics.Dashboard{},
		},
		{
			name: "only new customers",
			items: []storage.ChecklistItem{
				item(1, recent, true),
				item(2, recent, false),
			},
			want: analytics.Dashboard{TotalCustomers: 2, CustomersTrend: 100, TasksProgress: 50},
		},
		{
			name: "growth over existing customers",
			items: []storage.ChecklistItem{
				item(1, old, true),
				item(1, recent, true),
				item(2, old, false),
				item(3, recent, false),
				{IsCompleted: true},
				item(4, old, false),
			},
			want: analytics.Dashboard{TotalCustomers: 4, CustomersTrend: 33.3, TasksProgress: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, analytics.NewDashboard(tt.items, now))
		})
	}
}
