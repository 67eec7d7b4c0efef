package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const prefixMedia = "media:"

// Media keeps uploaded files. Files are addressed by a generated name that
// keeps the original extension.
type Media struct {
	db *badger.DB
}

func NewMedia(db *badger.DB) *Media {
	return &Media{db: db}
}

func (m *Media) Save(_ context.Context, filename, contentType string, data []byte) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))

	value, err := json.Marshal(media{ContentType: contentType, Data: data})
	if err != nil {
		return "", fmt.Errorf("failed to marshal media: %w", err)
	}

	if err := m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(prefixMedia+name), value)
	}); err != nil {
		return "", fmt.Errorf("failed to store media: %w", err)
	}

	return name, nil
}

func (m *Media) Open(_ context.Context, name string) (string, []byte, error) {
	var file media

	err := m.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefixMedia + name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		if err != nil {
			return fmt.Errorf("failed to get media: %w", err)
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &file)
		})
	})
	if err != nil {
		return "", nil, err
	}

	return file.ContentType, file.Data, nil
}

func (m *Media) Delete(_ context.Context, name string) error {
	if err := m.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(prefixMedia + name))
	}); err != nil {
		return fmt.Errorf("failed to delete media: %w", err)
	}

	return nil
}

// Names lists the stored files.
func (m *Media) Names(_ context.Context) ([]string, error) {
	names := []string{}

	err := m.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefixMedia)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			names = append(names, strings.TrimPrefix(string(it.Item().Key()), prefixMedia))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}

	return names, nil
}
