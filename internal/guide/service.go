package guide

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/Marat1506/hadj-admin/pkg/resource"
	"go.uber.org/zap"
)

const (
	CategoriesPath    = "/guide-categories"
	SubcategoriesPath = "/guide-subcategories"
	ContentPath       = "/guide-content"
)

//nolint:gochecknoglobals //constant
var (
	CategoryNames    = resource.Names{Singular: "guide category", Plural: "guide categories"}
	SubcategoryNames = resource.Names{Singular: "guide subcategory", Plural: "guide subcategories"}
	ContentNames     = resource.Names{Singular: "guide content", Plural: "guide content"}
)

// Service binds the three levels of the guide: categories, their
// subcategories and the content of a subcategory.
type Service struct {
	categories    *resource.Transport[Category]
	subcategories *resource.Transport[Subcategory]
	content       *resource.Transport[Content]

	logger *zap.Logger
}

func NewService(client *resource.Client, logger *zap.Logger) *Service {
	return &Service{
		categories: resource.NewTransport[Category](
			client, CategoriesPath, CategoryNames, resource.WithUpdateMethod(http.MethodPatch),
		),
		subcategories: resource.NewTransport[Subcategory](
			client, SubcategoriesPath, SubcategoryNames, resource.WithUpdateMethod(http.MethodPatch),
		),
		content: resource.NewTransport[Content](client, ContentPath, ContentNames),

		logger: logger,
	}
}

func (s *Service) Categories() *resource.Transport[Category] {
	return s.categories
}

func (s *Service) Subcategories() *resource.Transport[Subcategory] {
	return s.subcategories
}

func (s *Service) Content() *resource.Transport[Content] {
	return s.content
}

func (s *Service) NewCategoriesStore() *resource.Store[Category] {
	return resource.NewStore(s.categories, s.logger.Named("categories"), resource.WithStrategy(resource.PatchLocally))
}

// NewSubcategoriesStore returns a store scoped to one category. Zero means
// every category.
func (s *Service) NewSubcategoriesStore(categoryID int64) *resource.Store[Subcategory] {
	return resource.NewStore(s.subcategories, s.logger.Named("subcategories"),
		resource.WithStrategy(resource.PatchLocally),
		resource.WithQuery(scope(categoryID, 0)),
	)
}

// NewContentStore returns a store scoped to a category and subcategory.
// Zero ids are not filtered on.
func (s *Service) NewContentStore(categoryID, subcategoryID int64) *resource.Store[Content] {
	return resource.NewStore(s.content, s.logger.Named("content"),
		resource.WithStrategy(resource.RefetchAll),
		resource.WithQuery(scope(categoryID, subcategoryID)),
	)
}

func scope(categoryID, subcategoryID int64) resource.Query {
	params := url.Values{}
	if categoryID > 0 {
		params.Set("categoryId", strconv.FormatInt(categoryID, 10))
	}
	if subcategoryID > 0 {
		params.Set("subcategoryId", strconv.FormatInt(subcategoryID, 10))
	}

	return resource.Query{Params: params}
}
