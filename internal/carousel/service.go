package carousel

import (
	"github.com/Marat1506/hadj-admin/pkg/resource"
	"go.uber.org/zap"
)

const Path = "/carousel"

//nolint:gochecknoglobals //constant
var (
	Names = resource.Names{Singular: "carousel item", Plural: "carousel items"}

	// Strategy keeps new and removed banners local; edits are shown at once
	// and confirmed by a refetch.
	Strategy = resource.Strategy{
		Create: resource.CreateAppend,
		Update: resource.UpdateReplaceThenRefetch,
		Delete: resource.DeleteRemove,
	}
)

type Service struct {
	transport *resource.Transport[Banner]

	logger *zap.Logger
}

func NewService(client *resource.Client, logger *zap.Logger) *Service {
	return &Service{
		transport: resource.NewTransport[Banner](client, Path, Names),

		logger: logger,
	}
}

func (s *Service) Transport() *resource.Transport[Banner] {
	return s.transport
}

// NewStore returns a fresh, unmounted store. Its list reads always bypass
// caches.
func (s *Service) NewStore() *resource.Store[Banner] {
	return resource.NewStore(s.transport, s.logger,
		resource.WithStrategy(Strategy),
		resource.WithQuery(resource.Query{BypassCache: true}),
	)
}
