// Package repotest holds the behavioural contract every ItemRepository
// backend must satisfy.
package repotest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"items-api/internal/models"
	"items-api/internal/repositories"
)

// RunItemRepositoryContract exercises put/get/update/delete semantics against repo.
// The repository must start empty.
func RunItemRepositoryContract(t *testing.T, repo repositories.ItemRepository) {
	t.Helper()
	ctx := context.Background()

	t.Run("GetMissing", func(t *testing.T) {
		_, err := repo.Get(ctx, "missing")
		require.Error(t, err)
		assert.True(t, repositories.IsNotFound(err), "expected not found, got %v", err)
	})

	t.Run("PutThenGet", func(t *testing.T) {
		require.NoError(t, repo.Put(ctx, models.NewItem("1", "a")))

		record, err := repo.Get(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "1", record["id"])
		assert.Equal(t, "a", record["name"])
	})

	t.Run("PutOverwrites", func(t *testing.T) {
		require.NoError(t, repo.Put(ctx, models.NewItem("2", "first")))
		require.NoError(t, repo.Put(ctx, models.NewItem("2", "second")))

		record, err := repo.Get(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, "second", record["name"])
	})

	t.Run("UpdateReturnsChangedAttributes", func(t *testing.T) {
		require.NoError(t, repo.Put(ctx, models.NewItem("3", "a")))

		updated, err := repo.UpdateName(ctx, "3", "b")
		require.NoError(t, err)
		assert.Equal(t, repositories.Record{"name": "b"}, updated)

		record, err := repo.Get(ctx, "3")
		require.NoError(t, err)
		assert.Equal(t, "3", record["id"])
		assert.Equal(t, "b", record["name"])
	})

	t.Run("UpdateCreatesMissing", func(t *testing.T) {
		updated, err := repo.UpdateName(ctx, "4", "new")
		require.NoError(t, err)
		assert.Equal(t, "new", updated["name"])

		record, err := repo.Get(ctx, "4")
		require.NoError(t, err)
		assert.Equal(t, "4", record["id"])
		assert.Equal(t, "new", record["name"])
	})

	t.Run("DeleteIsIdempotent", func(t *testing.T) {
		require.NoError(t, repo.Put(ctx, models.NewItem("5", "a")))
		require.NoError(t, repo.Delete(ctx, "5"))

		_, err := repo.Get(ctx, "5")
		assert.True(t, repositories.IsNotFound(err), "expected not found after delete, got %v", err)

		require.NoError(t, repo.Delete(ctx, "5"))
		require.NoError(t, repo.Delete(ctx, "never-created"))
	})

	t.Run("Ping", func(t *testing.T) {
		require.NoError(t, repo.Ping(ctx))
	})
}
