package storage

import (
	"time"
)

// BaseEntity provides common fields for all storage entities.
type BaseEntity struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (e *BaseEntity) Base() *BaseEntity {
	return e
}

// Entity is anything stored by a Repository.
type Entity interface {
	Base() *BaseEntity
}

type Attraction struct {
	BaseEntity

	Title                 string  `json:"title"                 validate:"required,max=255"`
	Description           string  `json:"description"           validate:"required"`
	AdditionalInformation *string `json:"additionalInformation"`
	Cover                 string  `json:"cover"`
	Location              *string `json:"location"`
	Category              *string `json:"category"`
}

type Banner struct {
	BaseEntity

	Title string  `json:"title" validate:"required,max=255"`
	Link  *string `json:"link"  validate:"omitempty,url"`
	Image string  `json:"image"`
}

type ChecklistItem struct {
	BaseEntity

	UserID      *int64     `json:"userId"`
	Title       string     `json:"title"       validate:"required,max=255"`
	Description *string    `json:"description"`
	Category    string     `json:"category"    validate:"required"`
	Priority    string     `json:"priority"    validate:"required,oneof=low medium high critical"`
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt"`
	DueDate     *time.Time `json:"dueDate"`
	Order       *int64     `json:"order"`
	IsActive    *bool      `json:"isActive"`
}

type GalleryItem struct {
	BaseEntity

	MediaType   string  `json:"mediaType"   validate:"required,oneof=image video"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	MediaURL    string  `json:"mediaUrl"    validate:"required"`
	Order       int64   `json:"order"`
}

type GuideCategory struct {
	BaseEntity

	Title   string  `json:"title"   validate:"required,max=255"`
	IconURL *string `json:"iconUrl"`
}

type GuideSubcategory struct {
	BaseEntity

	Title       string  `json:"title"       validate:"required,max=255"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	CategoryID  int64   `json:"categoryId"  validate:"required"`
}

type GuideContent struct {
	BaseEntity

	Title         string  `json:"title"         validate:"required,max=255"`
	Description   string  `json:"description"   validate:"required"`
	Article       *string `json:"article"`
	CategoryID    int64   `json:"categoryId"    validate:"required"`
	SubcategoryID int64   `json:"subcategoryId" validate:"required"`
	MediaType     string  `json:"mediaType"     validate:"omitempty,oneof=image video"`
	MediaURL      *string `json:"mediaUrl"`
}

type NewsItem struct {
	BaseEntity

	Title                 string `json:"title"                 validate:"required,max=255"`
	Description           string `json:"description"           validate:"required"`
	AdditionalInformation string `json:"additionalInformation"`
	Cover                 string `json:"cover"`
	IsPublished           bool   `json:"isPublished"`
}

type media struct {
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}
