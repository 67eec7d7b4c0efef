package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Marat1506/hadj-admin/internal/cache"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL is not set")
	}

	r, err := cache.NewRedis(url, time.Minute)
	require.NoError(t, err)
	defer r.Close()

	ctx := context.Background()
	require.NoError(t, r.Ping(ctx))

	prefix := "test-" + uuid.NewString() + ":"
	require.NoError(t, r.Set(ctx, prefix+"list:", []byte(`[1]`)))

	value, ok, err := r.Get(ctx, prefix+"list:")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[1]`, string(value))

	require.NoError(t, r.Invalidate(ctx, prefix))

	_, ok, err = r.Get(ctx, prefix+"list:")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewRedis_InvalidURL(t *testing.T) {
	_, err := cache.NewRedis("not a url", time.Minute)
	assert.Error(t, err)
}
