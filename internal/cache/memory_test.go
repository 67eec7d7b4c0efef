package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/Marat1506/hadj-admin/internal/cache"
	"github.com/Marat1506/hadj-admin/pkg/badgerfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newMemory(t *testing.T, ttl time.Duration) *cache.Memory {
	t.Helper()

	db, err := badgerfx.New(badgerfx.Config{InMemory: true}, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return cache.NewMemory(db, ttl)
}

func TestMemory_GetSet(t *testing.T) {
	c := newMemory(t, time.Minute)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "news:list:")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "news:list:", []byte(`[]`)))

	value, ok, err := c.Get(ctx, "news:list:")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(value))
}

func TestMemory_Invalidate(t *testing.T) {
	c := newMemory(t, 0)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "news:list:", []byte(`[]`)))
	require.NoError(t, c.Set(ctx, "news:item:1", []byte(`{}`)))
	require.NoError(t, c.Set(ctx, "newsletter:list:", []byte(`[]`)))

	require.NoError(t, c.Invalidate(ctx, "news:"))

	for _, key := range []string{"news:list:", "news:item:1"} {
		_, ok, err := c.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}

	_, ok, err := c.Get(ctx, "newsletter:list:")
	require.NoError(t, err)
	assert.True(t, ok, "other resources are kept")
}
