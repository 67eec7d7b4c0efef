package storage

import (
	"github.com/dgraph-io/badger/v4"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

type (
	Attractions        = Repository[Attraction, *Attraction]
	Banners            = Repository[Banner, *Banner]
	ChecklistItems     = Repository[ChecklistItem, *ChecklistItem]
	GalleryItems       = Repository[GalleryItem, *GalleryItem]
	GuideCategories    = Repository[GuideCategory, *GuideCategory]
	GuideSubcategories = Repository[GuideSubcategory, *GuideSubcategory]
	GuideContents      = Repository[GuideContent, *GuideContent]
	NewsItems          = Repository[NewsItem, *NewsItem]
)

// Repositories groups every collection of the twin.
type Repositories struct {
	Attractions        *Attractions
	Banners            *Banners
	Checklist          *ChecklistItems
	Gallery            *GalleryItems
	GuideCategories    *GuideCategories
	GuideSubcategories *GuideSubcategories
	GuideContent       *GuideContents
	News               *NewsItems
	Media              *Media
}

func NewRepositories(db *badger.DB) *Repositories {
	return &Repositories{
		Attractions:        NewRepository[Attraction](db, "attraction"),
		Banners:            NewRepository[Banner](db, "banner"),
		Checklist:          NewRepository[ChecklistItem](db, "checklist"),
		Gallery:            NewRepository[GalleryItem](db, "gallery"),
		GuideCategories:    NewRepository[GuideCategory](db, "guide-category"),
		GuideSubcategories: NewRepository[GuideSubcategory](db, "guide-subcategory"),
		GuideContent:       NewRepository[GuideContent](db, "guide-content"),
		News:               NewRepository[NewsItem](db, "news"),
		Media:              NewMedia(db),
	}
}

func Module() fx.Option {
	return fx.Module(
		"storage",
		logger.WithNamedLogger("storage"),
		fx.Provide(NewRepositories),
	)
}
