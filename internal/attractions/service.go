package attractions

import (
	"net/url"

	"github.com/Marat1506/hadj-admin/pkg/resource"
	"go.uber.org/zap"
)

const Path = "/attractions"

//nolint:gochecknoglobals //constant
var Names = resource.Names{Singular: "attraction", Plural: "attractions"}

type Service struct {
	transport *resource.Transport[Attraction]

	logger *zap.Logger
}

func NewService(client *resource.Client, logger *zap.Logger) *Service {
	return &Service{
		transport: resource.NewTransport[Attraction](client, Path, Names),

		logger: logger,
	}
}

func (s *Service) Transport() *resource.Transport[Attraction] {
	return s.transport
}

// NewStore returns a store that refetches after every write. A non-empty
// category narrows the collection.
func (s *Service) NewStore(category string) *resource.Store[Attraction] {
	opts := []resource.StoreOption{resource.WithStrategy(resource.RefetchAll)}
	if category != "" {
		opts = append(opts, resource.WithQuery(resource.Query{Params: url.Values{"category": {category}}}))
	}

	return resource.NewStore(s.transport, s.logger, opts...)
}
