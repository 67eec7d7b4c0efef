package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Memory is an in-process cache on top of an in-memory badger instance.
type Memory struct {
	db  *badger.DB
	ttl time.Duration
}

func NewMemory(db *badger.DB, ttl time.Duration) *Memory {
	return &Memory{
		db:  db,
		ttl: ttl,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	var value []byte

	err := m.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err //nolint:wrapcheck //checked below
		}

		value, err = item.ValueCopy(nil)
		return err //nolint:wrapcheck //checked below
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache entry: %w", err)
	}

	return value, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	entry := badger.NewEntry([]byte(key), value)
	if m.ttl > 0 {
		entry = entry.WithTTL(m.ttl)
	}

	if err := m.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(entry)
	}); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}

	return nil
}

func (m *Memory) Invalidate(_ context.Context, prefix string) error {
	err := m.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefix)

		it := txn.NewIterator(opts)
		var keys [][]byte
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		it.Close()

		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err //nolint:wrapcheck //wrapped below
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate %q: %w", prefix, err)
	}

	return nil
}
