package carousel

import (
	"time"

	"github.com/Marat1506/hadj-admin/pkg/resource"
)

type Banner struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Link      *string   `json:"link"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b Banner) RecordID() int64 {
	return b.ID
}

// Draft is the body of a new banner. Photo is uploaded as multipart.
type Draft struct {
	Title string
	Link  resource.Field[string]
	Photo resource.Field[resource.File]
}

func (d Draft) EncodeForm(f *resource.Form) {
	f.Add("title", d.Title)
	resource.AddField(f, "link", d.Link)
	resource.AddField(f, "photo", d.Photo)
}

type Update struct {
	Title resource.Field[string]
	Link  resource.Field[string]
	Photo resource.Field[resource.File]
}

func (u Update) EncodeForm(f *resource.Form) {
	resource.AddField(f, "title", u.Title)
	resource.AddField(f, "link", u.Link)
	resource.AddField(f, "photo", u.Photo)
}
