package repositories

import (
	"context"

	"items-api/internal/models"
)

// Record is the flat attribute map of a stored item as the store reports it
type Record = map[string]any

// ItemRepository is the keyed record store behind the item handlers.
// Every method issues exactly one store operation.
type ItemRepository interface {
	// Put writes the item, replacing any item already stored under its ID
	Put(ctx context.Context, item *models.Item) error

	// Get returns the stored record, or an error matching ErrNotFound when absent
	Get(ctx context.Context, id string) (Record, error)

	// UpdateName sets the name attribute of the item at id and returns the
	// attributes it changed, with their new values. A missing item is created.
	UpdateName(ctx context.Context, id, name string) (Record, error)

	// Delete removes the item at id. Deleting an absent item is not an error.
	Delete(ctx context.Context, id string) error

	// Ping checks that the store is reachable
	Ping(ctx context.Context) error

	// Close releases resources held by the store client
	Close() error
}

// StoreType names a backend implementation of ItemRepository
type StoreType string

const (
	StoreTypeDynamoDB StoreType = "dynamodb"
	StoreTypeSQLite   StoreType = "sqlite"
	StoreTypeBadger   StoreType = "badger"
	StoreTypeMemory   StoreType = "memory"
)
