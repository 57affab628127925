// Package badgerstore keeps items in an embedded badger key-value store.
// Values are the JSON encoding of models.Item under the key "<table>#<id>".
package badgerstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"

	"items-api/internal/models"
	"items-api/internal/repositories"
)

// ItemRepository implements repositories.ItemRepository on badger
type ItemRepository struct {
	db    *badger.DB
	table string
}

var _ repositories.ItemRepository = (*ItemRepository)(nil)

// New opens the badger store at cfg.BadgerPath, or an in-memory store when the path is empty
func New(cfg *repositories.Config, logger *logrus.Logger) (repositories.ItemRepository, error) {
	opts := badger.DefaultOptions(cfg.BadgerPath)
	if cfg.BadgerPath == "" {
		opts = opts.WithInMemory(true)
	}
	if logger != nil {
		opts = opts.WithLogger(logger)
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, repositories.ConnectionError(cfg.TableName, err)
	}

	return &ItemRepository{db: db, table: cfg.TableName}, nil
}

func (r *ItemRepository) key(id string) []byte {
	return []byte(r.table + "#" + id)
}

// Put writes the item, replacing any stored value
func (r *ItemRepository) Put(ctx context.Context, item *models.Item) error {
	if item.ID == "" {
		return repositories.NewRepositoryError("put", r.table, "", repositories.ErrInvalidID)
	}

	value, err := json.Marshal(item)
	if err != nil {
		return repositories.NewRepositoryError("put", r.table, item.ID, err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(r.key(item.ID), value)
	})
	if err != nil {
		return repositories.NewRepositoryError("put", r.table, item.ID, err)
	}
	return nil
}

// Get reads the item at id
func (r *ItemRepository) Get(ctx context.Context, id string) (repositories.Record, error) {
	var item models.Item
	err := r.db.View(func(txn *badger.Txn) error {
		return r.read(txn, id, &item)
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, repositories.NotFoundError(r.table, id)
		}
		return nil, repositories.NewRepositoryError("get", r.table, id, err)
	}

	return item.Attributes(), nil
}

// UpdateName sets the name of the item at id inside one read-write transaction
func (r *ItemRepository) UpdateName(ctx context.Context, id, name string) (repositories.Record, error) {
	if id == "" {
		return nil, repositories.NewRepositoryError("update", r.table, "", repositories.ErrInvalidID)
	}

	err := r.db.Update(func(txn *badger.Txn) error {
		var item models.Item
		if err := r.read(txn, id, &item); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		item.ID = id
		item.Name = name

		value, err := json.Marshal(&item)
		if err != nil {
			return err
		}
		return txn.Set(r.key(id), value)
	})
	if err != nil {
		return nil, repositories.NewRepositoryError("update", r.table, id, err)
	}

	return repositories.Record{"name": name}, nil
}

// Delete removes the item at id; badger treats an absent key as success
func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(r.key(id))
	})
	if err != nil {
		return repositories.NewRepositoryError("delete", r.table, id, err)
	}
	return nil
}

// Ping reports whether the store is still open
func (r *ItemRepository) Ping(ctx context.Context) error {
	if r.db.IsClosed() {
		return repositories.ConnectionError(r.table, errors.New("badger store is closed"))
	}
	return nil
}

// Close closes the badger store
func (r *ItemRepository) Close() error {
	if r.db.IsClosed() {
		return nil
	}
	return r.db.Close()
}

func (r *ItemRepository) read(txn *badger.Txn, id string, item *models.Item) error {
	entry, err := txn.Get(r.key(id))
	if err != nil {
		return err
	}
	return entry.Value(func(val []byte) error {
		if err := json.Unmarshal(val, item); err != nil {
			return fmt.Errorf("failed to decode item: %w", err)
		}
		return nil
	})
}
