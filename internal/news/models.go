package news

import (
	"time"

	"github.com/Marat1506/hadj-admin/pkg/resource"
)

type Item struct {
	ID                    int64     `json:"id"`
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	AdditionalInformation string    `json:"additionalInformation"`
	Cover                 string    `json:"cover"`
	IsPublished           bool      `json:"isPublished"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

func (i Item) RecordID() int64 {
	return i.ID
}

type Draft struct {
	Title                 string
	Description           string
	AdditionalInformation string
	IsPublished           bool
	Cover                 resource.Field[resource.File]
}

func (d Draft) EncodeForm(f *resource.Form) {
	f.Add("title", d.Title)
	f.Add("description", d.Description)
	f.Add("additionalInformation", d.AdditionalInformation)
	f.Add("isPublished", d.IsPublished)
	resource.AddField(f, "cover", d.Cover)
}

type Update struct {
	Title                 resource.Field[string]
	Description           resource.Field[string]
	AdditionalInformation resource.Field[string]
	IsPublished           resource.Field[bool]
	Cover                 resource.Field[resource.File]
}

func (u Update) EncodeForm(f *resource.Form) {
	resource.AddField(f, "title", u.Title)
	resource.AddField(f, "description", u.Description)
	resource.AddField(f, "additionalInformation", u.AdditionalInformation)
	resource.AddField(f, "isPublished", u.IsPublished)
	resource.AddField(f, "cover", u.Cover)
}
