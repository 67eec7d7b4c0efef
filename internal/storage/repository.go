package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const maxTxnAttempts = 3

type entityPtr[T any] interface {
	*T
	Entity
}

// Repository stores one record type under "<name>:id:" keys. Ids are
// assigned from a per-repository sequence and listing follows id order.
type Repository[T any, P entityPtr[T]] struct {
	db *badger.DB

	prefixByID []byte
	seqKey     []byte
}

func NewRepository[T any, P entityPtr[T]](db *badger.DB, name string) *Repository[T, P] {
	return &Repository[T, P]{
		db:         db,
		prefixByID: []byte(name + ":id:"),
		seqKey:     []byte(name + ":seq"),
	}
}

// List returns every record accepted by filter. A nil filter accepts all.
func (r *Repository[T, P]) List(_ context.Context, filter func(*T) bool) ([]T, error) {
	entities := []T{}

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = r.prefixByID

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			entity := new(T)
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, entity)
			}); err != nil {
				return fmt.Errorf("failed to unmarshal entity: %w", err)
			}

			if filter == nil || filter(entity) {
				entities = append(entities, *entity)
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list entities: %w", err)
	}

	return entities, nil
}

func (r *Repository[T, P]) Get(_ context.Context, id int64) (*T, error) {
	var entity *T

	err := r.db.View(func(txn *badger.Txn) error {
		found, err := r.read(txn, id)
		if err == nil {
			entity = found
		}

		return err
	})
	if err != nil {
		return nil, err
	}

	return entity, nil
}

// Create assigns the id and timestamps of entity and stores it.
func (r *Repository[T, P]) Create(_ context.Context, entity *T) error {
	return r.update(func(txn *badger.Txn) error {
		id, err := r.nextID(txn)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		base := P(entity).Base()
		base.ID = id
		base.CreatedAt = now
		base.UpdatedAt = now

		return r.write(txn, entity)
	})
}

// Update loads the record, applies updater and stores the result. The id
// and creation time cannot be changed by updater.
func (r *Repository[T, P]) Update(_ context.Context, id int64, updater func(*T) error) (*T, error) {
	var updated *T

	err := r.update(func(txn *badger.Txn) error {
		entity, err := r.read(txn, id)
		if err != nil {
			return err
		}

		original := *P(entity).Base()
		if updErr := updater(entity); updErr != nil {
			return updErr
		}

		base := P(entity).Base()
		base.ID = original.ID
		base.CreatedAt = original.CreatedAt
		base.UpdatedAt = time.Now().UTC()

		updated = entity

		return r.write(txn, entity)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *Repository[T, P]) Delete(_ context.Context, id int64) error {
	return r.update(func(txn *badger.Txn) error {
		if _, err := r.read(txn, id); err != nil {
			return err
		}

		if err := txn.Delete(r.key(id)); err != nil {
			return fmt.Errorf("failed to delete entity: %w", err)
		}

		return nil
	})
}

func (r *Repository[T, P]) update(fn func(txn *badger.Txn) error) error {
	var err error
	for range maxTxnAttempts {
		err = r.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}

	return fmt.Errorf("%w: %w", ErrConflict, err)
}

func (r *Repository[T, P]) read(txn *badger.Txn, id int64) (*T, error) {
	item, err := txn.Get(r.key(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}

	entity := new(T)
	if valErr := item.Value(func(val []byte) error {
		return json.Unmarshal(val, entity)
	}); valErr != nil {
		return nil, fmt.Errorf("failed to unmarshal entity: %w", valErr)
	}

	return entity, nil
}

func (r *Repository[T, P]) write(txn *badger.Txn, entity *T) error {
	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	if setErr := txn.Set(r.key(P(entity).Base().ID), data); setErr != nil {
		return fmt.Errorf("failed to store entity: %w", setErr)
	}

	return nil
}

func (r *Repository[T, P]) nextID(txn *badger.Txn) (int64, error) {
	var last int64

	item, err := txn.Get(r.seqKey)
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
	case err != nil:
		return 0, fmt.Errorf("failed to read sequence: %w", err)
	default:
		if valErr := item.Value(func(val []byte) error {
			var parseErr error
			last, parseErr = strconv.ParseInt(string(val), 10, 64)
			return parseErr
		}); valErr != nil {
			return 0, fmt.Errorf("failed to parse sequence: %w", valErr)
		}
	}

	next := last + 1
	if setErr := txn.Set(r.seqKey, []byte(strconv.FormatInt(next, 10))); setErr != nil {
		return 0, fmt.Errorf("failed to advance sequence: %w", setErr)
	}

	return next, nil
}

// key zero-pads ids so that badger's byte order matches numeric order.
func (r *Repository[T, P]) key(id int64) []byte {
	return fmt.Appendf(append([]byte(nil), r.prefixByID...), "%020d", id)
}
