package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"items-api/internal/config"
	"items-api/internal/handlers"
	"items-api/internal/logging"
	"items-api/internal/repositories"
	"items-api/internal/repositories/badgerstore"
	"items-api/internal/repositories/ddb"
	"items-api/internal/repositories/memory"
	"items-api/internal/repositories/sqlite"
	"items-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *logrus.Logger
	Repository  repositories.ItemRepository
	ItemService services.ItemService
	ItemHandler *handlers.ItemHandler
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	logger := logging.New(cfg.Log)

	repo, err := newRepositoryFactory(logger).Create(storeConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create item store: %w", err)
	}

	return newContainer(cfg, logger, repo), nil
}

// NewContainerWithRepository builds a container around an existing store
func NewContainerWithRepository(cfg *config.Config, logger *logrus.Logger, repo repositories.ItemRepository) *Container {
	return newContainer(cfg, logger, repo)
}

func newContainer(cfg *config.Config, logger *logrus.Logger, repo repositories.ItemRepository) *Container {
	itemService := services.NewItemService(repo, logger)

	logger.WithFields(logrus.Fields{
		"store_type":      cfg.Store.Type,
		"table":           cfg.Store.TableName,
		"deployment_mode": config.GetDeploymentMode(),
	}).Info("Container initialized")

	return &Container{
		Config:      cfg,
		Logger:      logger,
		Repository:  repo,
		ItemService: itemService,
		ItemHandler: handlers.NewItemHandler(itemService, logger, cfg.StrictValidationStatus),
	}
}

func newRepositoryFactory(logger *logrus.Logger) *repositories.Factory {
	factory := repositories.NewFactory(logger)
	factory.Register(repositories.StoreTypeDynamoDB, ddb.New)
	factory.Register(repositories.StoreTypeSQLite, sqlite.New)
	factory.Register(repositories.StoreTypeBadger, badgerstore.New)
	factory.Register(repositories.StoreTypeMemory, func(cfg *repositories.Config, _ *logrus.Logger) (repositories.ItemRepository, error) {
		return memory.NewItemRepository(cfg.TableName), nil
	})
	return factory
}

func storeConfig(cfg *config.Config) *repositories.Config {
	return &repositories.Config{
		Type:      repositories.StoreType(cfg.Store.Type),
		TableName: cfg.Store.TableName,
		DynamoDB: repositories.DynamoDBConfig{
			Region:      cfg.Store.Region,
			Endpoint:    cfg.Store.Endpoint,
			MaxAttempts: cfg.Store.MaxAttempts,
		},
		SQLitePath: cfg.Store.SQLitePath,
		BadgerPath: cfg.Store.BadgerPath,
	}
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.Repository != nil {
		if err := c.Repository.Close(); err != nil {
			return fmt.Errorf("failed to close item store: %w", err)
		}
	}

	return nil
}
