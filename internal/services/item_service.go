package services

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"items-api/internal/models"
	"items-api/internal/repositories"
)

// itemService implements the ItemService interface
type itemService struct {
	repo   repositories.ItemRepository
	logger *logrus.Logger
}

// NewItemService creates a new item service instance
func NewItemService(repo repositories.ItemRepository, logger *logrus.Logger) ItemService {
	if logger == nil {
		logger = logrus.New()
	}
	return &itemService{
		repo:   repo,
		logger: logger,
	}
}

// CreateItem creates or replaces an item
func (s *itemService) CreateItem(ctx context.Context, body json.RawMessage) error {
	payload, err := ParseItemPayload(body)
	if err != nil {
		return err
	}

	if !payload.HasIDAndName() {
		return NewValidationError(MsgMissingIDOrName, nil)
	}

	item := models.NewItem(payload.GetID(), payload.GetName())
	if err := item.Validate(); err != nil {
		return NewValidationError(MsgMissingIDOrName, err)
	}

	return s.repo.Put(ctx, item)
}

// GetItem retrieves an item by ID
func (s *itemService) GetItem(ctx context.Context, id string) (repositories.Record, error) {
	if id == "" {
		return nil, NewValidationError(MsgMissingPathID, nil)
	}

	return s.repo.Get(ctx, id)
}

// UpdateItem sets the name of the item at id
func (s *itemService) UpdateItem(ctx context.Context, id string, body json.RawMessage) (repositories.Record, error) {
	payload, err := ParseItemPayload(body)
	if err != nil {
		return nil, err
	}

	name := payload.GetName()
	if id == "" || name == "" {
		return nil, NewValidationError(MsgMissingIDOrNameOrPath, nil)
	}

	if payload.ID != nil && *payload.ID != id {
		s.logger.WithFields(logrus.Fields{
			"path_id": id,
			"body_id": *payload.ID,
		}).Debug("Ignoring id in update body; the path id addresses the item")
	}

	return s.repo.UpdateName(ctx, id, name)
}

// DeleteItem deletes an item by ID
func (s *itemService) DeleteItem(ctx context.Context, id string) error {
	if id == "" {
		return NewValidationError(MsgDeleteMissingPathID, nil)
	}

	return s.repo.Delete(ctx, id)
}

// HealthCheck pings the item store
func (s *itemService) HealthCheck(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
