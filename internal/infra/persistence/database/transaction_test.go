package database

import (
	"context"
	"database/sql"
	"testing"

	"blogapi/internal/domain/entity"
	"blogapi/internal/domain/repository"
	"blogapi/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Commit(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		user := &entity.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "h"}
		if err := f.UserRepo().Create(ctx, user); err != nil {
			return err
		}

		return f.BlogRepo().Create(ctx, &entity.Blog{Title: "t", Body: "b", UserID: user.ID})
	})
	require.NoError(t, err)

	user, err := NewUserRepository(db).FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	found, err := NewUserRepository(db).FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, found.Blogs, 1)
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.UserRepo().Create(ctx, &entity.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "h"}); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = NewUserRepository(db).FindByEmail(ctx, "alice@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
			_ = f.UserRepo().Create(ctx, &entity.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "h"})
			panic("boom")
		})
	})

	_, err := NewUserRepository(db).FindByEmail(ctx, "alice@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTransactionManager_RollbackFailureKeepsBothErrors(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		// Finish the transaction early so the rollback has nothing left to undo.
		require.NoError(t, f.(*gormRepositoryFactory).tx.Commit().Error)

		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, sql.ErrTxDone)
	assert.Contains(t, err.Error(), "transaction rollback failed")
}
