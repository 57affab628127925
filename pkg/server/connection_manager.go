package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"items-api/internal/config"
)

// ConnectionManager keeps one container per process so warm Lambda
// invocations reuse the store client built on cold start.
type ConnectionManager struct {
	container *Container
	lastUsed  time.Time
	mu        sync.RWMutex
	config    *config.Config
	loadFn    func() (*config.Config, error)
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = NewConnectionManager(config.GetOptimizedConfig)
	})
	return globalConnectionManager
}

// NewConnectionManager creates a manager that loads its configuration with
// loadFn on first use
func NewConnectionManager(loadFn func() (*config.Config, error)) *ConnectionManager {
	return &ConnectionManager{loadFn: loadFn}
}

// Initialize builds the container from cfg unless one already exists
func (cm *ConnectionManager) Initialize(cfg *config.Config) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	return cm.initLocked(cfg)
}

func (cm *ConnectionManager) initLocked(cfg *config.Config) error {
	if cm.container != nil {
		return nil
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}

	cm.config = cfg
	cm.container = container
	cm.lastUsed = time.Now()
	return nil
}

// GetContainer returns the service container, initializing if necessary
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*Container, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container == nil {
		cfg := cm.config
		if cfg == nil {
			if cm.loadFn == nil {
				return nil, errors.New("connection manager has no configuration")
			}
			loaded, err := cm.loadFn()
			if err != nil {
				return nil, err
			}
			cfg = loaded
		}
		if err := cm.initLocked(cfg); err != nil {
			return nil, err
		}
	}

	cm.lastUsed = time.Now()
	return cm.container, nil
}

// IsHealthy reports whether a container exists and its store answers
func (cm *ConnectionManager) IsHealthy(ctx context.Context) bool {
	cm.mu.RLock()
	container := cm.container
	cm.mu.RUnlock()

	if container == nil {
		return false
	}
	return container.ItemService.HealthCheck(ctx) == nil
}

// LastUsed returns when the container was last handed out
func (cm *ConnectionManager) LastUsed() time.Time {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.lastUsed
}

// Cleanup closes the container. The next GetContainer builds a new one.
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		if err := cm.container.Close(); err != nil {
			return err
		}
		cm.container = nil
	}

	return nil
}
