package services

import (
	"context"
	"encoding/json"

	"items-api/internal/repositories"
)

// ItemService defines the item operations behind the four handlers.
// Each method performs at most one store operation.
type ItemService interface {
	// CreateItem parses id and name from body and upserts the item
	CreateItem(ctx context.Context, body json.RawMessage) error

	// GetItem returns the stored record; absence is reported as repositories.ErrNotFound
	GetItem(ctx context.Context, id string) (repositories.Record, error)

	// UpdateItem sets the name parsed from body on the item at id and
	// returns the updated attributes
	UpdateItem(ctx context.Context, id string, body json.RawMessage) (repositories.Record, error)

	// DeleteItem removes the item at id; deleting an absent item succeeds
	DeleteItem(ctx context.Context, id string) error

	// HealthCheck checks the backing store
	HealthCheck(ctx context.Context) error
}
