package memory

import (
	"context"
	"sync"

	"items-api/internal/models"
	"items-api/internal/repositories"
)

// ItemRepository is an in-memory implementation of repositories.ItemRepository
// used by tests and the local development server
type ItemRepository struct {
	mu    sync.RWMutex
	table string
	items map[string]models.Item
	err   error
}

var _ repositories.ItemRepository = (*ItemRepository)(nil)

// NewItemRepository creates a new in-memory item repository
func NewItemRepository(table string) *ItemRepository {
	return &ItemRepository{
		table: table,
		items: make(map[string]models.Item),
	}
}

// SetError makes every following operation fail with err until cleared with nil
func (m *ItemRepository) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *ItemRepository) failure(op, id string) error {
	if m.err == nil {
		return nil
	}
	return repositories.NewRepositoryError(op, m.table, id, m.err)
}

// Put implements repositories.ItemRepository.Put
func (m *ItemRepository) Put(ctx context.Context, item *models.Item) error {
	if item == nil || item.ID == "" {
		return repositories.NewRepositoryError("put", m.table, "", repositories.ErrInvalidID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.failure("put", item.ID); err != nil {
		return err
	}

	m.items[item.ID] = *item
	return nil
}

// Get implements repositories.ItemRepository.Get
func (m *ItemRepository) Get(ctx context.Context, id string) (repositories.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.failure("get", id); err != nil {
		return nil, err
	}

	item, exists := m.items[id]
	if !exists {
		return nil, repositories.NotFoundError(m.table, id)
	}

	return item.Attributes(), nil
}

// UpdateName implements repositories.ItemRepository.UpdateName
func (m *ItemRepository) UpdateName(ctx context.Context, id, name string) (repositories.Record, error) {
	if id == "" {
		return nil, repositories.NewRepositoryError("update", m.table, id, repositories.ErrInvalidID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.failure("update", id); err != nil {
		return nil, err
	}

	item := m.items[id]
	item.ID = id
	item.Name = name
	m.items[id] = item

	return repositories.Record{"name": name}, nil
}

// Delete implements repositories.ItemRepository.Delete
func (m *ItemRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.failure("delete", id); err != nil {
		return err
	}

	delete(m.items, id)
	return nil
}

// Ping implements repositories.ItemRepository.Ping
func (m *ItemRepository) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.failure("ping", "")
}

// Close implements repositories.ItemRepository.Close
func (m *ItemRepository) Close() error {
	return nil
}

// Len returns the number of stored items
func (m *ItemRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
