package analytics_test

import (
	"context"
	"testing"

	"github.com/Marat1506/hadj-admin/internal/analytics"
	"github.com/Marat1506/hadj-admin/internal/storage"
	"github.com/Marat1506/hadj-admin/internal/twintest"
	"github.com/Marat1506/hadj-admin/pkg/resource"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestLoader_Dashboard(t *testing.T) {
	twin := twintest.Start(t)
	svc := analytics.NewService(twin.Client(t, ""), zaptest.NewLogger(t))
	ctx := context.Background()

	loader := svc.NewLoader()
	defer loader.Close()

	empty, err := loader.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, analytics.Dashboard{}, empty)

	for i, userID := range []int64{1, 1, 2, 3} {
		require.NoError(t, twin.Repos.Checklist.Create(ctx, &storage.ChecklistItem{
			UserID:      lo.ToPtr(userID),
			Title:       "task",
			Category:    "general",
			Priority:    "low",
			IsCompleted: i == 0,
		}))
	}

	dashboard, err := loader.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, dashboard.TotalCustomers)
	assert.InDelta(t, 100.0, dashboard.CustomersTrend, 0.001)
	assert.InDelta(t, 25.0, dashboard.TasksProgress, 0.001)

	state := loader.Snapshot()
	assert.True(t, state.Loaded)
	assert.False(t, state.IsLoading)
	assert.Equal(t, dashboard, state.Value)
}

func TestLoader_KeepsValueOnFailure(t *testing.T) {
	twin := twintest.Start(t, twintest.WithSecret("s3cret"))
	ctx := context.Background()
	logger := zaptest.NewLogger(t)

	require.NoError(t, twin.Repos.Checklist.Create(ctx, &storage.ChecklistItem{
		UserID: lo.ToPtr(int64(1)), Title: "task", Category: "general", Priority: "low",
	}))

	authorized := analytics.NewService(twin.Client(t, twin.Token(t)), logger)
	anonymous := analytics.NewService(twin.Client(t, "bogus"), logger)

	fail := false
	loader := resource.NewLoader(func(ctx context.Context) (analytics.Dashboard, error) {
		if fail {
			return anonymous.Dashboard(ctx)
		}
		return authorized.Dashboard(ctx)
	}, logger)
	defer loader.Close()

	loaded, err := loader.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.TotalCustomers)

	fail = true
	_, err = loader.Load(ctx)
	require.ErrorIs(t, err, resource.ErrServerError)
	assert.Contains(t, err.Error(), "failed to fetch dashboard statistics: server responded 401")

	state := loader.Snapshot()
	assert.True(t, state.Loaded)
	assert.Equal(t, loaded, state.Value)
	assert.Equal(t, err.Error(), state.Error)
}
