package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightowlapp/nightowl/internal/common"
	"github.com/nightowlapp/nightowl/internal/models"
)

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	u := &models.User{ID: "u1", Email: "A@B.com", PasswordHash: "h"}
	_, err := repo.Create(ctx, u)
	require.NoError(t, err)

	got, err := repo.GetByEmail(ctx, "a@b.COM")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}

func TestMemoryRepository_DuplicateEmailCaseInsensitive(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{ID: "u1", Email: "a@b.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{ID: "u2", Email: "A@B.COM"})
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestMemoryRepository_GetMiss(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.GetByEmail(context.Background(), "ghost@b.com")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoryRepository_ReturnsCopy(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{ID: "u1", Email: "a@b.com", PasswordHash: "h"})
	require.NoError(t, err)

	got, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	got.PasswordHash = "tampered"

	again, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "h", again.PasswordHash)
}
