package checklists_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/Marat1506/hadj-admin/internal/checklists"
	"github.com/Marat1506/hadj-admin/internal/twintest"
	"github.com/Marat1506/hadj-admin/pkg/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newStore(t *testing.T) *checklists.Store {
	t.Helper()

	twin := twintest.Start(t)
	svc := checklists.NewService(twin.Client(t, ""), zaptest.NewLogger(t))

	store := svc.NewStore()
	t.Cleanup(store.Close)

	return store
}

func TestStore_Toggle(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	require.NoError(t, store.Mount(ctx))

	item, err := store.Create(ctx, checklists.Draft{
		Title:    "Book flights",
		Category: "travel",
		Priority: checklists.PriorityHigh,
		UserID:   resource.Set(int64(7)),
	})
	require.NoError(t, err)
	assert.False(t, item.IsCompleted)

	var loading []bool
	unsubscribe := store.Subscribe(func(s resource.State[checklists.Item]) {
		loading = append(loading, s.IsLoading)
	})

	toggled, err := store.Toggle(ctx, item.ID)
	unsubscribe()
	require.NoError(t, err)
	assert.True(t, toggled.IsCompleted)
	assert.NotNil(t, toggled.CompletedAt)
	assert.Equal(t, []bool{true, false}, loading)
	assert.True(t, store.Items()[0].IsCompleted)

	toggled, err = store.Toggle(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsCompleted)
	assert.Nil(t, toggled.CompletedAt)

	_, err = store.Toggle(ctx, 999)
	require.ErrorIs(t, err, resource.ErrNotFound)
	assert.Equal(t, "checklist item not found", store.Snapshot().Error)
}

func TestStore_FilterKeptOnRefetch(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	done, err := store.Create(ctx, checklists.Draft{Title: "Vaccination", Category: "health"})
	require.NoError(t, err)
	_, err = store.Toggle(ctx, done.ID)
	require.NoError(t, err)
	require.Len(t, store.Items(), 1)

	require.NoError(t, store.Filter(ctx, false))
	assert.Empty(t, store.Items())

	_, err = store.Create(ctx, checklists.Draft{Title: "Pack ihram", Category: "packing"})
	require.NoError(t, err)
	require.Len(t, store.Items(), 1)
	assert.Equal(t, "Pack ihram", store.Items()[0].Title)

	require.NoError(t, store.Filter(ctx, true))
	assert.Len(t, store.Items(), 2)
}

func TestStore_UpdateCompletion(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	item, err := store.Create(ctx, checklists.Draft{
		Title:       "Exchange money",
		Category:    "finance",
		Description: resource.Set("SAR in cash"),
	})
	require.NoError(t, err)
	assert.Equal(t, checklists.PriorityMedium, item.Priority)

	updated, err := store.Update(ctx, item.ID, checklists.Update{
		IsCompleted: resource.Set(true),
		Description: resource.Clear[string](),
	})
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)
	assert.NotNil(t, updated.CompletedAt)
	assert.Nil(t, updated.Description)

	_, err = store.Update(ctx, item.ID, checklists.Update{Priority: resource.Set(checklists.Priority("urgent"))})
	require.ErrorIs(t, err, resource.ErrInvalidInput)
	assert.Contains(t, err.Error(), "priority must be one of: low, medium, high, critical")
}

func TestStore_Stats(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	yesterday := time.Now().Add(-24 * time.Hour).UTC().Truncate(time.Second)
	drafts := []checklists.Draft{
		{Title: "Passport", Category: "documents", Priority: checklists.PriorityCritical, DueDate: resource.Set(yesterday)},
		{Title: "Visa", Category: "documents", Priority: checklists.PriorityCritical},
		{Title: "Towels", Category: "packing", Priority: checklists.PriorityLow},
	}
	for _, d := range drafts {
		_, err := store.Create(ctx, d)
		require.NoError(t, err)
	}

	items := store.Items()
	require.Len(t, items, 3)
	_, err := store.Toggle(ctx, items[1].ID)
	require.NoError(t, err)

	before := store.Items()
	stats, err := store.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 1, stats.Overdue)
	assert.Equal(t, map[string]int{"documents": 2, "packing": 1}, stats.ByCategory)
	assert.Equal(t, map[string]int{"critical": 2, "low": 1}, stats.ByPriority)
	assert.Equal(t, before, store.Items())
	assert.True(t, store.Items()[0].Overdue(time.Now()))
}

func TestStore_IncludesCompletedByDefault(t *testing.T) {
	var (
		mu      sync.Mutex
		queries []url.Values
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		queries = append(queries, r.URL.Query())
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]checklists.Item{})
	}))
	t.Cleanup(srv.Close)

	client, err := resource.NewClient(resource.Config{BaseURL: srv.URL + "/api"}, zaptest.NewLogger(t))
	require.NoError(t, err)
	store := checklists.NewService(client, zaptest.NewLogger(t)).NewStore()
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Mount(ctx))
	require.NoError(t, store.Filter(ctx, false))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, queries, 2)
	assert.Equal(t, "true", queries[0].Get("includeCompleted"))
	assert.Equal(t, "false", queries[1].Get("includeCompleted"))
}
