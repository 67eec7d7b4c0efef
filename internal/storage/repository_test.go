package storage_test

import (
	"context"
	"sync"
	"testing"

	"github.com/Marat1506/hadj-admin/internal/storage"
	"github.com/Marat1506/hadj-admin/pkg/badgerfx"
	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func openDB(t *testing.T) *badger.DB {
	t.Helper()

	db, err := badgerfx.New(badgerfx.Config{InMemory: true}, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestRepository_CRUD(t *testing.T) {
	repo := storage.NewRepository[storage.Banner](openDB(t), "banner")
	ctx := context.Background()

	first := &storage.Banner{Title: "Umrah"}
	require.NoError(t, repo.Create(ctx, first))
	second := &storage.Banner{Title: "Hajj"}
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())

	got, err := repo.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Hajj", got.Title)

	updated, err := repo.Update(ctx, 1, func(b *storage.Banner) error {
		b.Title = "Umrah 2026"
		b.ID = 99
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.ID, "id is immutable")
	assert.Equal(t, first.CreatedAt, updated.CreatedAt)

	require.NoError(t, repo.Delete(ctx, 2))
	assert.ErrorIs(t, repo.Delete(ctx, 2), storage.ErrNotFound)

	_, err = repo.Get(ctx, 2)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = repo.Update(ctx, 999, func(*storage.Banner) error { return nil })
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRepository_ListOrderAndFilter(t *testing.T) {
	repo := storage.NewRepository[storage.ChecklistItem](openDB(t), "checklist")
	ctx := context.Background()

	items, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	for i := range 12 {
		require.NoError(t, repo.Create(ctx, &storage.ChecklistItem{
			Title:       "item",
			IsCompleted: i%2 == 0,
		}))
	}

	items, err = repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, items, 12)
	for i, item := range items {
		assert.Equal(t, int64(i+1), item.ID, "ids 10 and above must sort after 9")
	}

	pending, err := repo.List(ctx, func(c *storage.ChecklistItem) bool { return !c.IsCompleted })
	require.NoError(t, err)
	assert.Len(t, pending, 6)
}

func TestRepository_ConcurrentCreate(t *testing.T) {
	repo := storage.NewRepository[storage.NewsItem](openDB(t), "news")
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Create(ctx, &storage.NewsItem{Title: "n"})
		}()
	}
	wg.Wait()
	close(errs)

	failed := 0
	for err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, storage.ErrConflict)
			failed++
		}
	}

	items, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, items, 8-failed)

	seen := map[int64]bool{}
	for _, item := range items {
		assert.False(t, seen[item.ID], "duplicate id %d", item.ID)
		seen[item.ID] = true
	}
}

func TestMedia(t *testing.T) {
	media := storage.NewMedia(openDB(t))
	ctx := context.Background()

	name, err := media.Save(ctx, "Cover.PNG", "image/png", []byte("png"))
	require.NoError(t, err)
	assert.True(t, len(name) > len(".png"))
	assert.Equal(t, ".png", name[len(name)-4:])

	contentType, data, err := media.Open(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, []byte("png"), data)

	_, _, err = media.Open(ctx, "missing.png")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	names, err := media.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{name}, names)

	require.NoError(t, media.Delete(ctx, name))
	_, _, err = media.Open(ctx, name)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	names, err = media.Names(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}
