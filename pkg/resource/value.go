package resource

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// ValueState is the state of a Loader.
type ValueState[T any] struct {
	Value     T
	Loaded    bool
	IsLoading bool
	Error     string
}

// Loader is the single value counterpart of Store, for read-only
// endpoints such as dashboards.
type Loader[T any] struct {
	fetch  func(ctx context.Context) (T, error)
	logger *zap.Logger

	mu     sync.Mutex
	state  ValueState[T]
	closed bool
}

func NewLoader[T any](fetch func(ctx context.Context) (T, error), logger *zap.Logger) *Loader[T] {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Loader[T]{
		fetch:  fetch,
		logger: logger,
	}
}

// Load fetches the value. On failure the previous value is kept.
func (l *Loader[T]) Load(ctx context.Context) (T, error) {
	var zero T

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return zero, ErrStoreClosed
	}
	l.state.IsLoading = true
	l.state.Error = ""
	l.mu.Unlock()

	v, err := l.fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.closed {
		l.state.IsLoading = false
		if err != nil {
			l.state.Error = err.Error()
		} else {
			l.state.Value = v
			l.state.Loaded = true
		}
	}

	if err != nil {
		l.logger.Debug("load failed", zap.Error(err))
		return zero, err
	}

	return v, nil
}

func (l *Loader[T]) Snapshot() ValueState[T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.state
}

func (l *Loader[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
}
