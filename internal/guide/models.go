package guide

import (
	"time"

	"github.com/Marat1506/hadj-admin/pkg/resource"
)

type Category struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	IconURL   *string   `json:"iconUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c Category) RecordID() int64 { return c.ID }

type CategoryDraft struct {
	Title string
	Icon  resource.Field[resource.File]
}

func (d CategoryDraft) EncodeForm(f *resource.Form) {
	f.Add("title", d.Title)
	resource.AddField(f, "icon", d.Icon)
}

type CategoryUpdate struct {
	Title resource.Field[string]
	Icon  resource.Field[resource.File]
	// IconURL replaces or, when cleared, removes the icon.
	IconURL resource.Field[string]
}

func (u CategoryUpdate) EncodeForm(f *resource.Form) {
	resource.AddField(f, "title", u.Title)
	resource.AddField(f, "icon", u.Icon)
	resource.AddField(f, "iconUrl", u.IconURL)
}

type Subcategory struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	CategoryID  int64     `json:"categoryId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (s Subcategory) RecordID() int64 { return s.ID }

type SubcategoryDraft struct {
	Title       string
	CategoryID  int64
	Description resource.Field[string]
	Image       resource.Field[resource.File]
}

func (d SubcategoryDraft) EncodeForm(f *resource.Form) {
	f.Add("title", d.Title)
	f.Add("categoryId", d.CategoryID)
	resource.AddField(f, "description", d.Description)
	resource.AddField(f, "image", d.Image)
}

type SubcategoryUpdate struct {
	Title       resource.Field[string]
	CategoryID  resource.Field[int64]
	Description resource.Field[string]
	Image       resource.Field[resource.File]
}

func (u SubcategoryUpdate) EncodeForm(f *resource.Form) {
	resource.AddField(f, "title", u.Title)
	resource.AddField(f, "categoryId", u.CategoryID)
	resource.AddField(f, "description", u.Description)
	resource.AddField(f, "image", u.Image)
}

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

type Content struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Article       *string   `json:"article"`
	CategoryID    int64     `json:"categoryId"`
	SubcategoryID int64     `json:"subcategoryId"`
	MediaType     MediaType `json:"mediaType"`
	MediaURL      *string   `json:"mediaUrl"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (c Content) RecordID() int64 { return c.ID }

type ContentDraft struct {
	Title         string
	Description   string
	CategoryID    int64
	SubcategoryID int64
	Article       resource.Field[string]
	MediaType     resource.Field[MediaType]
	Media         resource.Field[resource.File]
	MediaURL      resource.Field[string]
}

func (d ContentDraft) EncodeForm(f *resource.Form) {
	f.Add("title", d.Title)
	f.Add("description", d.Description)
	f.Add("categoryId", d.CategoryID)
	f.Add("subcategoryId", d.SubcategoryID)
	resource.AddField(f, "article", d.Article)
	resource.AddField(f, "mediaType", d.MediaType)
	resource.AddField(f, "media", d.Media)
	resource.AddField(f, "mediaUrl", d.MediaURL)
}

type ContentUpdate struct {
	Title         resource.Field[string]
	Description   resource.Field[string]
	CategoryID    resource.Field[int64]
	SubcategoryID resource.Field[int64]
	Article       resource.Field[string]
	MediaType     resource.Field[MediaType]
	Media         resource.Field[resource.File]
	MediaURL      resource.Field[string]
}

func (u ContentUpdate) EncodeForm(f *resource.Form) {
	resource.AddField(f, "title", u.Title)
	resource.AddField(f, "description", u.Description)
	resource.AddField(f, "categoryId", u.CategoryID)
	resource.AddField(f, "subcategoryId", u.SubcategoryID)
	resource.AddField(f, "article", u.Article)
	resource.AddField(f, "mediaType", u.MediaType)
	resource.AddField(f, "media", u.Media)
	resource.AddField(f, "mediaUrl", u.MediaURL)
}
