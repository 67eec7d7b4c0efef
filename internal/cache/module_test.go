package cache_test

import (
	"testing"
	"time"

	"github.com/Marat1506/hadj-admin/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap/zaptest"
)

func TestNew(t *testing.T) {
	logger := zaptest.NewLogger(t)

	c, err := cache.New(cache.Config{Backend: cache.BackendNone}, logger, fxtest.NewLifecycle(t))
	require.NoError(t, err)
	assert.Nil(t, c)

	lc := fxtest.NewLifecycle(t)
	c, err = cache.New(cache.Config{Backend: cache.BackendMemory, TTL: time.Minute}, logger, lc)
	require.NoError(t, err)
	assert.IsType(t, &cache.Memory{}, c)
	lc.RequireStart().RequireStop()

	_, err = cache.New(cache.Config{Backend: "memcached"}, logger, fxtest.NewLifecycle(t))
	assert.ErrorIs(t, err, cache.ErrUnknownBackend)
}
