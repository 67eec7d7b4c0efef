package resource

import (
	"context"
	"slices"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Record is anything with a server-assigned, immutable id.
type Record interface {
	RecordID() int64
}

// Backend is the transport a Store talks to. *Transport[R] implements it.
type Backend[R any] interface {
	GetAll(ctx context.Context, q Query) ([]R, error)
	GetByID(ctx context.Context, id int64, opts ...GetOption) (R, error)
	Create(ctx context.Context, p Payload) (R, error)
	Update(ctx context.Context, id int64, p Payload) (R, error)
	Delete(ctx context.Context, id int64) error
}

type CreateStrategy uint8

const (
	CreateRefetch CreateStrategy = iota
	CreateAppend
)

type UpdateStrategy uint8

const (
	UpdateRefetch UpdateStrategy = iota
	UpdateReplace
	UpdateReplaceThenRefetch
)

type DeleteStrategy uint8

const (
	DeleteRefetch DeleteStrategy = iota
	DeleteRemove
)

// Strategy tells a Store how to bring its collection back in sync after a
// successful mutation. The zero value refetches after everything.
type Strategy struct {
	Create CreateStrategy
	Update UpdateStrategy
	Delete DeleteStrategy
}

var (
	RefetchAll   = Strategy{}
	PatchLocally = Strategy{Create: CreateAppend, Update: UpdateReplace, Delete: DeleteRemove}
)

// State is what a consumer renders.
type State[R any] struct {
	Items     []R
	IsLoading bool
	Error     string
}

// Mutation describes one in-flight write.
type Mutation struct {
	Kind    Op
	ID      int64
	Payload Payload
}

type StoreOption func(*storeOptions)

type storeOptions struct {
	strategy Strategy
	query    Query
}

func WithStrategy(s Strategy) StoreOption {
	return func(o *storeOptions) {
		o.strategy = s
	}
}

// WithQuery sets the query used by every fetch of the store.
func WithQuery(q Query) StoreOption {
	return func(o *storeOptions) {
		o.query = q
	}
}

// Store owns one cached collection of a resource.
//
// Operations may overlap. Each one enters the loading state when it starts
// and leaves it when it settles, and the last response to settle wins the
// collection. After Close every result is dropped.
type Store[R Record] struct {
	backend  Backend[R]
	strategy Strategy
	logger   *zap.Logger

	mu        sync.Mutex
	query     Query
	items     []R
	loading   bool
	errMsg    string
	closed    bool
	observers map[int]func(State[R])
	nextObs   int
}

func NewStore[R Record](backend Backend[R], logger *zap.Logger, opts ...StoreOption) *Store[R] {
	var options storeOptions
	for _, opt := range opts {
		opt(&options)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Store[R]{
		backend:   backend,
		strategy:  options.strategy,
		logger:    logger,
		query:     options.query,
		items:     []R{},
		observers: make(map[int]func(State[R])),
	}
}

// Mount performs the initial fetch of a freshly created store.
func (s *Store[R]) Mount(ctx context.Context) error {
	s.logger.Debug("mounting store")
	return s.FetchAll(ctx)
}

// FetchAll replaces the collection with the backend's. On failure the
// collection is kept and the error is both recorded and returned.
func (s *Store[R]) FetchAll(ctx context.Context) error {
	if err := s.begin(); err != nil {
		return err
	}

	items, err := s.backend.GetAll(ctx, s.currentQuery())
	if err != nil {
		s.logger.Debug("fetch failed", zap.Error(err))
		s.settle(err, nil)
		return err
	}

	s.settle(nil, func() {
		s.items = items
	})

	return nil
}

// Fetch replaces the store query and fetches with it.
func (s *Store[R]) Fetch(ctx context.Context, q Query) error {
	s.SetQuery(q)
	return s.FetchAll(ctx)
}

func (s *Store[R]) SetQuery(q Query) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = q
}

func (s *Store[R]) Create(ctx context.Context, p Payload) (R, error) {
	return s.Do(ctx, Mutation{Kind: OpCreate, Payload: p}, func(ctx context.Context) (R, error) {
		return s.backend.Create(ctx, p)
	})
}

func (s *Store[R]) Update(ctx context.Context, id int64, p Payload) (R, error) {
	return s.Do(ctx, Mutation{Kind: OpUpdate, ID: id, Payload: p}, func(ctx context.Context) (R, error) {
		return s.backend.Update(ctx, id, p)
	})
}

func (s *Store[R]) Delete(ctx context.Context, id int64) error {
	_, err := s.Do(ctx, Mutation{Kind: OpDelete, ID: id}, func(ctx context.Context) (R, error) {
		var zero R
		return zero, s.backend.Delete(ctx, id)
	})

	return err
}

// GetByID reads one record without touching the collection.
func (s *Store[R]) GetByID(ctx context.Context, id int64, opts ...GetOption) (R, error) {
	return Read(ctx, s, func(ctx context.Context) (R, error) {
		return s.backend.GetByID(ctx, id, opts...)
	})
}

// Do runs a write inside the loading window and applies the store strategy
// afterwards. Create and Delete kinds use the create and delete strategies;
// every other kind, custom actions included, is treated as an update of
// m.ID.
//
// A refetch failing after a successful write is recorded in the store
// state, but the write itself is reported as successful.
func (s *Store[R]) Do(ctx context.Context, m Mutation, fn func(ctx context.Context) (R, error)) (R, error) {
	var zero R

	if err := s.begin(); err != nil {
		return zero, err
	}

	logger := s.logger.With(zap.String("mutation", string(m.Kind)), zap.Int64("id", m.ID))
	logger.Debug("mutation started")

	rec, err := fn(ctx)
	if err != nil {
		logger.Debug("mutation failed", zap.Error(err))
		s.settle(err, nil)
		return zero, err
	}

	switch m.Kind {
	case OpCreate:
		s.afterCreate(ctx, rec)
	case OpDelete:
		s.afterDelete(ctx, m.ID)
	default:
		s.afterUpdate(ctx, m.ID, rec)
	}

	logger.Debug("mutation settled")

	return rec, nil
}

func (s *Store[R]) afterCreate(ctx context.Context, rec R) {
	if s.strategy.Create == CreateAppend {
		s.settle(nil, func() {
			s.items = append(slices.Clone(s.items), rec)
		})
		return
	}

	s.refetch(ctx)
}

func (s *Store[R]) afterUpdate(ctx context.Context, id int64, rec R) {
	replace := func() {
		s.items = lo.Map(s.items, func(item R, _ int) R {
			if item.RecordID() == id {
				return rec
			}
			return item
		})
	}

	switch s.strategy.Update {
	case UpdateReplace:
		s.settle(nil, replace)
	case UpdateReplaceThenRefetch:
		s.apply(replace)
		s.refetch(ctx)
	default:
		s.refetch(ctx)
	}
}

func (s *Store[R]) afterDelete(ctx context.Context, id int64) {
	if s.strategy.Delete == DeleteRemove {
		s.settle(nil, func() {
			s.items = lo.Reject(s.items, func(item R, _ int) bool {
				return item.RecordID() == id
			})
		})
		return
	}

	s.refetch(ctx)
}

func (s *Store[R]) refetch(ctx context.Context) {
	q, open := s.openQuery()
	if !open {
		s.logger.Debug("store closed, refetch skipped")
		return
	}

	items, err := s.backend.GetAll(ctx, q)
	if err != nil {
		s.logger.Warn("refetch after mutation failed", zap.Error(err))
		s.settle(err, nil)
		return
	}

	s.settle(nil, func() {
		s.items = items
	})
}

// Read runs a read-only call inside the loading window of s. The
// collection is never modified; failures are recorded and returned.
func Read[R Record, T any](ctx context.Context, s *Store[R], fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if err := s.begin(); err != nil {
		return zero, err
	}

	v, err := fn(ctx)
	s.settle(err, nil)
	if err != nil {
		return zero, err
	}

	return v, nil
}

// Items returns a copy of the collection.
func (s *Store[R]) Items() []R {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.items)
}

func (s *Store[R]) Snapshot() State[R] {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

// Subscribe registers fn for every state transition. The returned function
// removes it.
func (s *Store[R]) Subscribe(fn func(State[R])) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.observers, id)
	}
}

// Close detaches the store. Operations still in flight complete against the
// backend but no longer change the state or notify observers; new
// operations fail with ErrStoreClosed.
func (s *Store[R]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.observers = make(map[int]func(State[R]))
}

func (s *Store[R]) currentQuery() Query {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.query
}

// openQuery returns the store query unless the store was closed.
func (s *Store[R]) openQuery() (Query, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.query, !s.closed
}

func (s *Store[R]) begin() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrStoreClosed
	}

	s.loading = true
	s.errMsg = ""
	state, observers := s.snapshotLocked(), s.observersLocked()
	s.mu.Unlock()

	notify(observers, state)

	return nil
}

// apply changes the collection without leaving the loading window.
func (s *Store[R]) apply(mutate func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	mutate()
	state, observers := s.snapshotLocked(), s.observersLocked()
	s.mu.Unlock()

	notify(observers, state)
}

// settle ends the loading window, recording err when not nil.
func (s *Store[R]) settle(err error, mutate func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	if mutate != nil {
		mutate()
	}
	s.loading = false
	if err != nil {
		s.errMsg = err.Error()
	}
	state, observers := s.snapshotLocked(), s.observersLocked()
	s.mu.Unlock()

	notify(observers, state)
}

func (s *Store[R]) snapshotLocked() State[R] {
	return State[R]{
		Items:     slices.Clone(s.items),
		IsLoading: s.loading,
		Error:     s.errMsg,
	}
}

func (s *Store[R]) observersLocked() []func(State[R]) {
	return lo.Values(s.observers)
}

func notify[R any](observers []func(State[R]), state State[R]) {
	for _, fn := range observers {
		fn(state)
	}
}
