package server

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"items-api/internal/config"
	"items-api/internal/repositories/memory"
)

func testConfig(storeType string) *config.Config {
	return &config.Config{
		Environment: "test",
		Port:        "8080",
		Store: config.StoreConfig{
			Type:      storeType,
			TableName: "ItemsTable",
			Region:    "ap-south-1",
		},
		Log: config.LogConfig{Level: "error", Format: "text"},
	}
}

// TestNewContainer verifies that the container can be created successfully
func TestNewContainer(t *testing.T) {
	container, err := NewContainer(testConfig("memory"))
	require.NoError(t, err)
	require.NotNil(t, container)

	assert.NotNil(t, container.Logger)
	assert.IsType(t, &memory.ItemRepository{}, container.Repository)
	assert.NotNil(t, container.ItemService)
	assert.NotNil(t, container.ItemHandler)
	assert.NoError(t, container.ItemService.HealthCheck(context.Background()))

	assert.NoError(t, container.Close())
}

func TestNewContainer_FileStores(t *testing.T) {
	dir := t.TempDir()

	sqliteCfg := testConfig("sqlite")
	sqliteCfg.Store.SQLitePath = filepath.Join(dir, "items.db")

	badgerCfg := testConfig("badger")
	badgerCfg.Store.BadgerPath = filepath.Join(dir, "badger")

	for _, cfg := range []*config.Config{sqliteCfg, badgerCfg} {
		t.Run(cfg.Store.Type, func(t *testing.T) {
			container, err := NewContainer(cfg)
			require.NoError(t, err)
			defer container.Close()

			assert.NoError(t, container.ItemService.HealthCheck(context.Background()))
		})
	}
}

func TestNewContainer_UnknownStore(t *testing.T) {
	_, err := NewContainer(testConfig("cassandra"))
	assert.Error(t, err)
}

func TestConnectionManager_Lifecycle(t *testing.T) {
	loads := 0
	cm := NewConnectionManager(func() (*config.Config, error) {
		loads++
		return testConfig("memory"), nil
	})
	ctx := context.Background()

	assert.False(t, cm.IsHealthy(ctx))

	first, err := cm.GetContainer(ctx)
	require.NoError(t, err)
	second, err := cm.GetContainer(ctx)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, loads)
	assert.True(t, cm.IsHealthy(ctx))
	assert.False(t, cm.LastUsed().IsZero())

	require.NoError(t, cm.Cleanup())
	assert.False(t, cm.IsHealthy(ctx))

	third, err := cm.GetContainer(ctx)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Equal(t, 1, loads, "configuration is reused after cleanup")
}

func TestConnectionManager_Initialize(t *testing.T) {
	cm := NewConnectionManager(nil)
	ctx := context.Background()

	_, err := cm.GetContainer(ctx)
	assert.Error(t, err)

	require.NoError(t, cm.Initialize(testConfig("memory")))
	container, err := cm.GetContainer(ctx)
	require.NoError(t, err)
	assert.NotNil(t, container.ItemHandler)
}

func TestConnectionManager_LoadError(t *testing.T) {
	boom := errors.New("bad config")
	cm := NewConnectionManager(func() (*config.Config, error) { return nil, boom })

	_, err := cm.GetContainer(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestConnectionManager_CancelledContext(t *testing.T) {
	cm := NewConnectionManager(func() (*config.Config, error) { return testConfig("memory"), nil })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cm.GetContainer(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
