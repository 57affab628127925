package repositories_test

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"

	"items-api/internal/repositories"
	"items-api/internal/repositories/memory"
)

func newTestFactory() *repositories.Factory {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	factory := repositories.NewFactory(logger)
	factory.Register(repositories.StoreTypeMemory, func(cfg *repositories.Config, logger *logrus.Logger) (repositories.ItemRepository, error) {
		return memory.NewItemRepository(cfg.TableName), nil
	})
	return factory
}

func TestFactory_Create(t *testing.T) {
	factory := newTestFactory()

	cfg := repositories.DefaultConfig()
	cfg.Type = "MEMORY"

	repo, err := factory.Create(cfg)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	defer repo.Close()

	if _, ok := repo.(*memory.ItemRepository); !ok {
		t.Errorf("Create() returned %T, want *memory.ItemRepository", repo)
	}
}

func TestFactory_CreateErrors(t *testing.T) {
	factory := newTestFactory()

	tests := []struct {
		name      string
		cfg       *repositories.Config
		wantIsErr error
	}{
		{
			name: "nil config",
			cfg:  nil,
		},
		{
			name:      "unknown type",
			cfg:       &repositories.Config{Type: "cassandra", TableName: "ItemsTable"},
			wantIsErr: repositories.ErrUnsupported,
		},
		{
			name:      "known type without constructor",
			cfg:       &repositories.Config{Type: repositories.StoreTypeBadger, TableName: "ItemsTable"},
			wantIsErr: repositories.ErrUnsupported,
		},
		{
			name: "missing table name",
			cfg:  &repositories.Config{Type: repositories.StoreTypeMemory},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := factory.Create(tt.cfg)
			if err == nil {
				t.Fatal("Create() should fail")
			}
			if tt.wantIsErr != nil && !errors.Is(err, tt.wantIsErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantIsErr)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := repositories.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	cfg.DynamoDB.Region = ""
	if err := cfg.Validate(); err == nil {
		t.Error("dynamodb config without region should be invalid")
	}

	cfg = repositories.DefaultConfig()
	cfg.Type = repositories.StoreTypeSQLite
	cfg.SQLitePath = ""
	if err := cfg.Validate(); err == nil {
		t.Error("sqlite config without path should be invalid")
	}
}

func TestRepositoryError(t *testing.T) {
	err := repositories.NotFoundError("ItemsTable", "1")
	if !repositories.IsNotFound(err) {
		t.Error("NotFoundError should satisfy IsNotFound")
	}
	if err.Error() != "item with ID 1 not found in ItemsTable" {
		t.Errorf("unexpected message: %s", err.Error())
	}

	cause := errors.New("boom")
	wrapped := repositories.NewRepositoryError("put", "ItemsTable", "1", cause)
	if !errors.Is(wrapped, cause) {
		t.Error("RepositoryError should unwrap to its cause")
	}
	if repositories.IsNotFound(wrapped) {
		t.Error("generic error should not be not-found")
	}

	conn := repositories.ConnectionError("ItemsTable", cause)
	if !repositories.IsConnection(conn) {
		t.Error("ConnectionError should satisfy IsConnection")
	}
}
