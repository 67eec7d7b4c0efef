package attractions

import (
	"time"

	"github.com/Marat1506/hadj-admin/pkg/resource"
)

type Attraction struct {
	ID                    int64     `json:"id"`
	Title                 string    `json:"title"`
	Description           string    `json:"description"`
	AdditionalInformation *string   `json:"additionalInformation"`
	Cover                 string    `json:"cover"`
	Location              *string   `json:"location"`
	Category              *string   `json:"category"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

func (a Attraction) RecordID() int64 {
	return a.ID
}

type Draft struct {
	Title                 string
	Description           string
	AdditionalInformation resource.Field[string]
	Location              resource.Field[string]
	Category              resource.Field[string]
	Cover                 resource.Field[resource.File]
}

func (d Draft) EncodeForm(f *resource.Form) {
	f.Add("title", d.Title)
	f.Add("description", d.Description)
	resource.AddField(f, "additionalInformation", d.AdditionalInformation)
	resource.AddField(f, "location", d.Location)
	resource.AddField(f, "category", d.Category)
	resource.AddField(f, "cover", d.Cover)
}

type Update struct {
	Title                 resource.Field[string]
	Description           resource.Field[string]
	AdditionalInformation resource.Field[string]
	Location              resource.Field[string]
	Category              resource.Field[string]
	Cover                 resource.Field[resource.File]
}

func (u Update) EncodeForm(f *resource.Form) {
	resource.AddField(f, "title", u.Title)
	resource.AddField(f, "description", u.Description)
	resource.AddField(f, "additionalInformation", u.AdditionalInformation)
	resource.AddField(f, "location", u.Location)
	resource.AddField(f, "category", u.Category)
	resource.AddField(f, "cover", u.Cover)
}
