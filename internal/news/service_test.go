package news_test

import (
	"context"
	"testing"

	"github.com/Marat1506/hadj-admin/internal/news"
	"github.com/Marat1506/hadj-admin/internal/twintest"
	"github.com/Marat1506/hadj-admin/pkg/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestStore_Publish(t *testing.T) {
	twin := twintest.Start(t)
	svc := news.NewService(twin.Client(t, ""), zaptest.NewLogger(t))
	ctx := context.Background()

	store := svc.NewStore()
	defer store.Close()
	require.NoError(t, store.Mount(ctx))

	first, err := store.Create(ctx, news.Draft{Title: "Visa rules", Description: "Updated requirements"})
	require.NoError(t, err)
	_, err = store.Create(ctx, news.Draft{Title: "Flights", Description: "New routes", IsPublished: true})
	require.NoError(t, err)
	require.Len(t, store.Items(), 2)

	published, err := svc.Transport().GetAll(ctx, news.PublishedQuery())
	require.NoError(t, err)
	assert.Len(t, published, 1)

	item, err := news.Publish(ctx, store, first.ID, true)
	require.NoError(t, err)
	assert.True(t, item.IsPublished)
	assert.Equal(t, "Visa rules", item.Title)

	published, err = svc.Transport().GetAll(ctx, news.PublishedQuery())
	require.NoError(t, err)
	assert.Len(t, published, 2)
}

func TestStore_Unauthorized(t *testing.T) {
	twin := twintest.Start(t, twintest.WithSecret("s3cret"))
	ctx := context.Background()

	authorized := news.NewService(twin.Client(t, twin.Token(t)), zaptest.NewLogger(t))
	_, err := authorized.Transport().Create(ctx, news.Draft{Title: "t", Description: "d"})
	require.NoError(t, err)

	store := authorized.NewStore()
	defer store.Close()
	require.NoError(t, store.Mount(ctx))
	require.Len(t, store.Items(), 1)

	anonymous := news.NewService(twin.Client(t, ""), zaptest.NewLogger(t)).NewStore()
	defer anonymous.Close()

	err = anonymous.FetchAll(ctx)
	require.ErrorIs(t, err, resource.ErrServerError)
	assert.Contains(t, anonymous.Snapshot().Error, "server responded 401")
	assert.Empty(t, anonymous.Items())
	assert.False(t, anonymous.Snapshot().IsLoading)
}
