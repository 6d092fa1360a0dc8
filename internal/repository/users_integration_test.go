//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/openpdst/dst-service/internal/domain/model"
)

func TestUserRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("create and find by email", func(t *testing.T) {
		db := setupTestDB(t)
		defer cleanupTestDB(t, db)
		repo := NewUserRepository(db)

		user := &model.User{
			Email:    "tech@lab.example",
			Name:     "Lab Tech",
			Password: "hashed",
			Active:   true,
		}
		require.NoError(t, repo.Create(ctx, user))
		assert.False(t, user.ID.IsZero())
		assert.False(t, user.CreatedAt.IsZero())

		got, err := repo.FindByEmail(ctx, "tech@lab.example")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Lab Tech", got.Name)
		assert.True(t, got.Active)
	})

	t.Run("find by email returns nil when missing", func(t *testing.T) {
		db := setupTestDB(t)
		defer cleanupTestDB(t, db)
		repo := NewUserRepository(db)

		got, err := repo.FindByEmail(ctx, "nobody@lab.example")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate email violates the unique index", func(t *testing.T) {
		db := setupTestDB(t)
		defer cleanupTestDB(t, db)
		repo := NewUserRepository(db)

		require.NoError(t, repo.Create(ctx, &model.User{Email: "tech@lab.example", Name: "First"}))
		assert.Error(t, repo.Create(ctx, &model.User{Email: "tech@lab.example", Name: "Second"}))
	})

	t.Run("find by id", func(t *testing.T) {
		db := setupTestDB(t)
		defer cleanupTestDB(t, db)
		repo := NewUserRepository(db)

		user := &model.User{Email: "tech@lab.example", Name: "Lab Tech"}
		require.NoError(t, repo.Create(ctx, user))

		got, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.Email, got.Email)

		missing, err := repo.FindByID(ctx, primitive.NewObjectID())
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("deactivate clears the active flag", func(t *testing.T) {
		db := setupTestDB(t)
		defer cleanupTestDB(t, db)
		repo := NewUserRepository(db)

		user := &model.User{Email: "tech@lab.example", Name: "Lab Tech", Active: true}
		require.NoError(t, repo.Create(ctx, user))
		require.NoError(t, repo.Deactivate(ctx, user.ID))

		got, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.False(t, got.Active)
		assert.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))
	})
}
