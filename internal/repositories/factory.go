package repositories

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Constructor builds an ItemRepository for one store type
type Constructor func(cfg *Config, logger *logrus.Logger) (ItemRepository, error)

// Factory creates ItemRepository instances based on configuration
type Factory struct {
	constructors map[StoreType]Constructor
	logger       *logrus.Logger
}

// NewFactory creates a new repository factory
func NewFactory(logger *logrus.Logger) *Factory {
	if logger == nil {
		logger = logrus.New()
	}
	return &Factory{
		constructors: make(map[StoreType]Constructor),
		logger:       logger,
	}
}

// Register adds the constructor for a store type, replacing any earlier one
func (f *Factory) Register(storeType StoreType, constructor Constructor) {
	f.constructors[storeType] = constructor
}

// Create creates the ItemRepository selected by cfg.Type
func (f *Factory) Create(cfg *Config) (ItemRepository, error) {
	if cfg == nil {
		return nil, fmt.Errorf("store config is required")
	}

	cfg.Type = StoreType(strings.ToLower(string(cfg.Type)))
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s store config: %w", cfg.Type, err)
	}

	constructor, ok := f.constructors[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, cfg.Type)
	}

	repo, err := constructor(cfg, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s store: %w", cfg.Type, err)
	}

	f.logger.WithFields(logrus.Fields{
		"store_type": cfg.Type,
		"table":      cfg.TableName,
	}).Debug("Item store created")

	return repo, nil
}
