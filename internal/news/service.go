package news

import (
	"context"
	"net/url"

	"github.com/Marat1506/hadj-admin/pkg/resource"
	"go.uber.org/zap"
)

const Path = "/news"

//nolint:gochecknoglobals //constant
var Names = resource.Names{Singular: "news item", Plural: "news"}

type Service struct {
	transport *resource.Transport[Item]

	logger *zap.Logger
}

func NewService(client *resource.Client, logger *zap.Logger) *Service {
	return &Service{
		transport: resource.NewTransport[Item](client, Path, Names),

		logger: logger,
	}
}

func (s *Service) Transport() *resource.Transport[Item] {
	return s.transport
}

func (s *Service) NewStore() *resource.Store[Item] {
	return resource.NewStore(s.transport, s.logger, resource.WithStrategy(resource.RefetchAll))
}

// Publish sets the published flag of a news item through store.
func Publish(ctx context.Context, store *resource.Store[Item], id int64, published bool) (Item, error) {
	return store.Update(ctx, id, Update{IsPublished: resource.Set(published)})
}

// PublishedQuery narrows a list to published items.
func PublishedQuery() resource.Query {
	return resource.Query{Params: url.Values{"published": {"true"}}}
}
