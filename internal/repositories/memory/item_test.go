package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"items-api/internal/models"
	"items-api/internal/repositories"
	"items-api/internal/repositories/repotest"
)

func TestItemRepository_Contract(t *testing.T) {
	repo := NewItemRepository("ItemsTable")
	defer repo.Close()

	repotest.RunItemRepositoryContract(t, repo)
}

func TestItemRepository_SetError(t *testing.T) {
	repo := NewItemRepository("ItemsTable")
	ctx := context.Background()
	boom := errors.New("store unreachable")

	repo.SetError(boom)

	err := repo.Put(ctx, models.NewItem("1", "a"))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	var repoErr *repositories.RepositoryError
	require.True(t, errors.As(err, &repoErr))
	assert.Equal(t, "put", repoErr.Op)
	assert.Equal(t, "1", repoErr.ID)

	_, err = repo.Get(ctx, "1")
	assert.ErrorIs(t, err, boom)
	assert.False(t, repositories.IsNotFound(err))

	repo.SetError(nil)
	require.NoError(t, repo.Put(ctx, models.NewItem("1", "a")))
	assert.Equal(t, 1, repo.Len())
}

func TestItemRepository_PutRequiresID(t *testing.T) {
	repo := NewItemRepository("ItemsTable")

	err := repo.Put(context.Background(), models.NewItem("", "a"))
	assert.ErrorIs(t, err, repositories.ErrInvalidID)
	assert.Equal(t, 0, repo.Len())
}
