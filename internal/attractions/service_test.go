package attractions_test

import (
	"context"
	"strings"
	"testing"

	"github.com/Marat1506/hadj-admin/internal/attractions"
	"github.com/Marat1506/hadj-admin/internal/twintest"
	"github.com/Marat1506/hadj-admin/pkg/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestStore_RefetchAfterWrites(t *testing.T) {
	twin := twintest.Start(t)
	svc := attractions.NewService(twin.Client(t, ""), zaptest.NewLogger(t))
	ctx := context.Background()

	store := svc.NewStore("")
	defer store.Close()
	require.NoError(t, store.Mount(ctx))

	var loading []bool
	defer store.Subscribe(func(s resource.State[attractions.Attraction]) {
		loading = append(loading, s.IsLoading)
	})()

	created, err := store.Create(ctx, attractions.Draft{
		Title:       "Mount Uhud",
		Description: "Site of the battle of Uhud",
		Location:    resource.Set("Medina"),
		Category:    resource.Set("history"),
		Cover:       resource.Set(resource.File{Name: "uhud.jpg", ContentType: "image/jpeg", Content: strings.NewReader("jpg")}),
	})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, loading)
	require.Len(t, store.Items(), 1)
	assert.True(t, strings.HasPrefix(store.Items()[0].Cover, "/media/"))

	_, err = store.Update(ctx, created.ID, attractions.Update{
		Location:              resource.Clear[string](),
		AdditionalInformation: resource.Set("Open all day"),
	})
	require.NoError(t, err)
	got := store.Items()[0]
	assert.Nil(t, got.Location)
	require.NotNil(t, got.AdditionalInformation)
	assert.Equal(t, "Open all day", *got.AdditionalInformation)
	assert.Equal(t, "Mount Uhud", got.Title)

	require.NoError(t, store.Delete(ctx, created.ID))
	assert.Empty(t, store.Items())
}

func TestStore_CategoryScope(t *testing.T) {
	twin := twintest.Start(t)
	svc := attractions.NewService(twin.Client(t, ""), zaptest.NewLogger(t))
	ctx := context.Background()

	for _, category := range []string{"history", "nature", "history"} {
		_, err := svc.Transport().Create(ctx, attractions.Draft{
			Title:       "place",
			Description: "d",
			Category:    resource.Set(category),
		})
		require.NoError(t, err)
	}

	store := svc.NewStore("history")
	defer store.Close()
	require.NoError(t, store.Mount(ctx))
	assert.Len(t, store.Items(), 2)

	_, err := store.Create(ctx, attractions.Draft{Title: "park", Description: "d", Category: resource.Set("nature")})
	require.NoError(t, err)
	assert.Len(t, store.Items(), 2, "refetch keeps the category scope")
}

func TestStore_UpdateMissing(t *testing.T) {
	twin := twintest.Start(t)
	svc := attractions.NewService(twin.Client(t, ""), zaptest.NewLogger(t))

	store := svc.NewStore("")
	defer store.Close()

	_, err := store.Update(context.Background(), 7, attractions.Update{Title: resource.Set("x")})
	require.ErrorIs(t, err, resource.ErrNotFound)
	assert.Equal(t, "attraction not found", store.Snapshot().Error)
}
