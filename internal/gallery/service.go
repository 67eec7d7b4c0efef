package gallery

import (
	"github.com/Marat1506/hadj-admin/pkg/resource"
	"go.uber.org/zap"
)

const Path = "/gallery"

//nolint:gochecknoglobals //constant
var Names = resource.Names{Singular: "gallery item", Plural: "gallery items"}

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
