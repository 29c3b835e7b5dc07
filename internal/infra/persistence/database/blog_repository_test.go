package database

import (
	"context"
	"testing"

	"blogapi/internal/domain/entity"
	domainerrors "blogapi/internal/domain/errors"
	"blogapi/internal/domain/repository"
	"blogapi/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, db, "alice@example.com")
	repo := NewBlogRepository(db)

	blog := &entity.Blog{Title: "Hello", Body: "World", UserID: owner.ID}
	require.NoError(t, repo.Create(ctx, blog))
	assert.NotEqual(t, uuid.Nil, blog.ID)

	found, err := repo.FindByID(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", found.Title)
	assert.Equal(t, "World", found.Body)
	require.NotNil(t, found.Creator)
	assert.Equal(t, owner.ID, found.Creator.ID)
	assert.Equal(t, "alice@example.com", found.Creator.Email)
	assert.Empty(t, found.Creator.PasswordHash)
}

func TestBlogRepository_CreateWithUnknownOwner(t *testing.T) {
	repo := NewBlogRepository(newTestDB(t))

	err := repo.Create(context.Background(), &entity.Blog{Title: "t", Body: "b", UserID: uuid.New()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBlogCreationFailed))
}

func TestBlogRepository_FindAll(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, db, "alice@example.com")
	repo := NewBlogRepository(db)

	blogs, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, blogs)

	require.NoError(t, repo.Create(ctx, &entity.Blog{Title: "a", Body: "1", UserID: owner.ID}))
	require.NoError(t, repo.Create(ctx, &entity.Blog{Title: "b", Body: "2", UserID: owner.ID}))

	blogs, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, "a", blogs[0].Title)
	assert.Equal(t, "b", blogs[1].Title)
	for _, blog := range blogs {
		require.NotNil(t, blog.Creator)
		assert.Equal(t, owner.ID, blog.Creator.ID)
	}
}

func TestBlogRepository_UpdateByID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, db, "alice@example.com")
	repo := NewBlogRepository(db)

	blog := &entity.Blog{Title: "old", Body: "old body", UserID: owner.ID}
	require.NoError(t, repo.Create(ctx, blog))

	require.NoError(t, repo.UpdateByID(ctx, blog.ID, repository.BlogUpdate{Title: "new", Body: "new body"}))

	found, err := repo.FindByID(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", found.Title)
	assert.Equal(t, "new body", found.Body)
	assert.Equal(t, owner.ID, found.UserID)
	assert.True(t, found.CreatedAt.Equal(blog.CreatedAt))
}

func TestBlogRepository_UpdateMissing(t *testing.T) {
	repo := NewBlogRepository(newTestDB(t))

	err := repo.UpdateByID(context.Background(), uuid.New(), repository.BlogUpdate{Title: "t", Body: "b"})
	assert.ErrorIs(t, err, repository.ErrBlogNotFound)
}

func TestBlogRepository_DeleteByID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := createTestUser(t, db, "alice@example.com")
	repo := NewBlogRepository(db)

	blog := &entity.Blog{Title: "bye", Body: "soon gone", UserID: owner.ID}
	require.NoError(t, repo.Create(ctx, blog))

	require.NoError(t, repo.DeleteByID(ctx, blog.ID))

	_, err := repo.FindByID(ctx, blog.ID)
	assert.ErrorIs(t, err, repository.ErrBlogNotFound)

	err = repo.DeleteByID(ctx, blog.ID)
	assert.ErrorIs(t, err, repository.ErrBlogNotFound)
}
