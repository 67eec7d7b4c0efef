package gallery_test

import (
	"context"
	"strings"
	"testing"

	"github.com/Marat1506/hadj-admin/internal/gallery"
	"github.com/Marat1506/hadj-admin/internal/twintest"
	"github.com/Marat1506/hadj-admin/pkg/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestStore_ImagesAndVideos(t *testing.T) {
	twin := twintest.Start(t)
	svc := gallery.NewService(twin.Client(t, ""), zaptest.NewLogger(t))
	ctx := context.Background()

	store := svc.NewStore()
	defer store.Close()
	require.NoError(t, store.Mount(ctx))

	image, err := store.Create(ctx, gallery.Draft{
		MediaType: gallery.MediaTypeImage,
		Title:     resource.Set("Kaaba at night"),
		Order:     resource.Set(int64(2)),
		Photo:     resource.Set(resource.File{Name: "kaaba.jpg", ContentType: "image/jpeg", Content: strings.NewReader("jpg")}),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(image.MediaURL, "/media/"))
	assert.Equal(t, int64(2), image.Order)

	video, err := store.Create(ctx, gallery.Draft{
		MediaType: gallery.MediaTypeVideo,
		VideoURL:  resource.Set("https://video.example.com/tawaf.mp4"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://video.example.com/tawaf.mp4", video.MediaURL)
	assert.Len(t, store.Items(), 2)

	updated, err := store.Update(ctx, image.ID, gallery.Update{Title: resource.Clear[string]()})
	require.NoError(t, err)
	assert.Nil(t, updated.Title)
	assert.Equal(t, image.MediaURL, updated.MediaURL)
}

func TestStore_MissingMedia(t *testing.T) {
	twin := twintest.Start(t)
	svc := gallery.NewService(twin.Client(t, ""), zaptest.NewLogger(t))

	store := svc.NewStore()
	defer store.Close()

	_, err := store.Create(context.Background(), gallery.Draft{MediaType: gallery.MediaTypeImage})
	require.ErrorIs(t, err, resource.ErrInvalidInput)
	assert.Contains(t, store.Snapshot().Error, "mediaURL is required")
}
