package gallery

import (
	"time"

	"github.com/Marat1506/hadj-admin/pkg/resource"
)

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

type Item struct {
	ID          int64     `json:"id"`
	MediaType   MediaType `json:"mediaType"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	MediaURL    string    `json:"mediaUrl"`
	Order       int64     `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (i Item) RecordID() int64 {
	return i.ID
}

// Draft is a new gallery item. Images are uploaded as Photo, videos are
// referenced by VideoURL.
type Draft struct {
	MediaType   MediaType
	Title       resource.Field[string]
	Description resource.Field[string]
	Order       resource.Field[int64]
	Photo       resource.Field[resource.File]
	VideoURL    resource.Field[string]
}

func (d Draft) EncodeForm(f *resource.Form) {
	f.Add("mediaType", string(d.MediaType))
	resource.AddField(f, "title", d.Title)
	resource.AddField(f, "description", d.Description)
	resource.AddField(f, "order", d.Order)
	resource.AddField(f, "photo", d.Photo)
	resource.AddField(f, "videoUrl", d.VideoURL)
}

type Update struct {
	MediaType   resource.Field[MediaType]
	Title       resource.Field[string]
	Description resource.Field[string]
	Order       resource.Field[int64]
	Photo       resource.Field[resource.File]
	VideoURL    resource.Field[string]
}

func (u Update) EncodeForm(f *resource.Form) {
	resource.AddField(f, "mediaType", u.MediaType)
	resource.AddField(f, "title", u.Title)
	resource.AddField(f, "description", u.Description)
	resource.AddField(f, "order", u.Order)
	resource.AddField(f, "photo", u.Photo)
	resource.AddField(f, "videoUrl", u.VideoURL)
}
