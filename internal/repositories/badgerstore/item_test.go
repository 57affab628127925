package badgerstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"items-api/internal/models"
	"items-api/internal/repositories"
	"items-api/internal/repositories/repotest"
)

func testConfig(path string) *repositories.Config {
	cfg := repositories.DefaultConfig()
	cfg.Type = repositories.StoreTypeBadger
	cfg.BadgerPath = path
	return cfg
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func TestItemRepository_Contract(t *testing.T) {
	repo, err := New(testConfig(""), testLogger())
	require.NoError(t, err)
	defer repo.Close()

	repotest.RunItemRepositoryContract(t, repo)
}

func TestItemRepository_PersistsOnDisk(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "badger"))
	ctx := context.Background()

	repo, err := New(cfg, testLogger())
	require.NoError(t, err)
	require.NoError(t, repo.Put(ctx, models.NewItem("1", "a")))
	require.NoError(t, repo.Close())

	reopened, err := New(cfg, testLogger())
	require.NoError(t, err)
	defer reopened.Close()

	record, err := reopened.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "a", record["name"])
}

func TestItemRepository_PingAfterClose(t *testing.T) {
	repo, err := New(testConfig(""), testLogger())
	require.NoError(t, err)

	require.NoError(t, repo.Ping(context.Background()))
	require.NoError(t, repo.Close())

	err = repo.Ping(context.Background())
	assert.True(t, repositories.IsConnection(err))
	assert.NoError(t, repo.Close(), "second Close is a no-op")
}
