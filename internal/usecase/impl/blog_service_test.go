package impl

import (
	"context"
	"testing"

	"blogapi/internal/domain/entity"
	domainerrors "blogapi/internal/domain/errors"
	"blogapi/internal/domain/repository"
	"blogapi/internal/errors"
	mockRepo "blogapi/internal/mocks/repository"
	"blogapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type blogServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	blogRepo  *mockRepo.MockBlogRepository
}

func newBlogServiceForTest(t *testing.T) (usecase.BlogUsecase, *blogServiceMocks) {
	m := &blogServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		blogRepo:  mockRepo.NewMockBlogRepository(t),
	}

	return NewBlogService(BlogServiceParams{
		TxManager: m.txManager,
		BlogRepo:  m.blogRepo,
		Logger:    discardLogger(),
	}), m
}

func TestBlogService_CreateBlog_OwnedByCaller(t *testing.T) {
	svc, m := newBlogServiceForTest(t)
	ctx := context.Background()
	owner := &entity.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}

	m.blogRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(b *entity.Blog) bool {
			return b.UserID == owner.ID && b.Title == "Hello" && b.Body == "World"
		})).
		Return(nil)

	blog, err := svc.CreateBlog(ctx, usecase.CreateBlogInput{Owner: owner, Title: "Hello", Body: "World"})

	require.NoError(t, err)
	assert.Equal(t, owner.ID, blog.UserID)
	assert.Same(t, owner, blog.Creator)
}

func TestBlogService_CreateBlog_WithoutOwner(t *testing.T) {
	svc, _ := newBlogServiceForTest(t)

	_, err := svc.CreateBlog(context.Background(), usecase.CreateBlogInput{Title: "t", Body: "b"})

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestBlogService_GetBlog_NotFound(t *testing.T) {
	svc, m := newBlogServiceForTest(t)
	ctx := context.Background()
	id := uuid.New()

	m.blogRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrBlogNotFound)

	_, err := svc.GetBlog(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrBlogNotFound))
}

func TestBlogService_ListBlogs(t *testing.T) {
	svc, m := newBlogServiceForTest(t)
	ctx := context.Background()
	blogs := []*entity.Blog{{Title: "a"}, {Title: "b"}}

	m.blogRepo.EXPECT().FindAll(ctx).Return(blogs, nil)

	got, err := svc.ListBlogs(ctx)

	require.NoError(t, err)
	assert.Equal(t, blogs, got)
}

func TestBlogService_UpdateBlog(t *testing.T) {
	svc, m := newBlogServiceForTest(t)
	ctx := context.Background()
	id := uuid.New()
	stored := &entity.Blog{ID: id, Title: "new", Body: "new body"}

	expectTransaction(m.txManager, m.factory)
	m.factory.EXPECT().BlogRepo().Return(m.blogRepo)
	m.blogRepo.EXPECT().UpdateByID(ctx, id, repository.BlogUpdate{Title: "new", Body: "new body"}).Return(nil)
	m.blogRepo.EXPECT().FindByID(ctx, id).Return(stored, nil)

	blog, err := svc.UpdateBlog(ctx, usecase.UpdateBlogInput{ID: id, Title: "new", Body: "new body"})

	require.NoError(t, err)
	assert.Same(t, stored, blog)
}

func TestBlogService_UpdateBlog_NotFound(t *testing.T) {
	svc, m := newBlogServiceForTest(t)
	ctx := context.Background()
	id := uuid.New()

	expectTransaction(m.txManager, m.factory)
	m.factory.EXPECT().BlogRepo().Return(m.blogRepo)
	m.blogRepo.EXPECT().UpdateByID(ctx, id, mock.Anything).Return(repository.ErrBlogNotFound)

	_, err := svc.UpdateBlog(ctx, usecase.UpdateBlogInput{ID: id, Title: "t", Body: "b"})

	assert.True(t, errors.Is(err, domainerrors.ErrBlogNotFound))
}

func TestBlogService_DeleteBlog(t *testing.T) {
	svc, m := newBlogServiceForTest(t)
	ctx := context.Background()
	id := uuid.New()

	m.blogRepo.EXPECT().DeleteByID(ctx, id).Return(nil)
	require.NoError(t, svc.DeleteBlog(ctx, id))

	missing := uuid.New()
	m.blogRepo.EXPECT().DeleteByID(ctx, missing).Return(repository.ErrBlogNotFound)
	assert.True(t, errors.Is(svc.DeleteBlog(ctx, missing), domainerrors.ErrBlogNotFound))
}

func TestBlogService_DeleteBlog_StorageFailure(t *testing.T) {
	svc, m := newBlogServiceForTest(t)
	ctx := context.Background()
	id := uuid.New()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "failed to delete blog")

	m.blogRepo.EXPECT().DeleteByID(ctx, id).Return(dbErr)

	err := svc.DeleteBlog(ctx, id)

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrBlogNotFound))
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}
