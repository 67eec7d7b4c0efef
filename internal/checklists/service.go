package checklists

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Marat1506/hadj-admin/pkg/resource"
	"go.uber.org/zap"
)

const Path = "/checklist"

const (
	OpToggle resource.Op = "toggle checklist item"
	OpStats  resource.Op = "fetch checklist stats"
)

//nolint:gochecknoglobals //constant
var Names = resource.Names{Singular: "checklist item", Plural: "checklist items"}

type Service struct {
	transport *resource.Transport[Item]

	logger *zap.Logger
}

func NewService(client *resource.Client, logger *zap.Logger) *Service {
	return &Service{
		transport: resource.NewTransport[Item](client, Path, Names, resource.WithUpdateMethod(http.MethodPatch)),

		logger: logger,
	}
}

func (s *Service) Transport() *resource.Transport[Item] {
	return s.transport
}

// NewStore returns a store listing completed items too.
func (s *Service) NewStore() *Store {
	return &Store{
		Store: resource.NewStore(s.transport, s.logger,
			resource.WithStrategy(resource.RefetchAll),
			resource.WithQuery(completionQuery(true)),
		),
		transport: s.transport,
	}
}

// Store is the checklist store. Every write, toggles included, refetches
// the collection with the current completion filter.
type Store struct {
	*resource.Store[Item]

	transport *resource.Transport[Item]
}

// Filter fetches the collection, leaving out completed items unless
// includeCompleted is set. The filter applies to later refetches as well.
func (s *Store) Filter(ctx context.Context, includeCompleted bool) error {
	s.SetQuery(completionQuery(includeCompleted))

	return s.FetchAll(ctx)
}

func completionQuery(includeCompleted bool) resource.Query {
	return resource.Query{Params: url.Values{
		"includeCompleted": {strconv.FormatBool(includeCompleted)},
	}}
}

// Toggle flips the completion of an item.
func (s *Store) Toggle(ctx context.Context, id int64) (Item, error) {
	return s.Do(ctx, resource.Mutation{Kind: OpToggle, ID: id}, func(ctx context.Context) (Item, error) {
		var item Item
		err := s.transport.Action(ctx, OpToggle, http.MethodPatch, strconv.FormatInt(id, 10)+"/toggle", nil, &item)
		return item, err
	})
}

// Stats fetches the checklist summary. The collection is left untouched.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	return resource.Read(ctx, s.Store, func(ctx context.Context) (Stats, error) {
		var stats Stats
		err := s.transport.Action(ctx, OpStats, http.MethodGet, "stats", nil, &stats)
		return stats, err
	})
}
