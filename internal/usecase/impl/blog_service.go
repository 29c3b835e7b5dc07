package impl

import (
	"context"
	"log/slog"

	deliverycontext "blogapi/internal/delivery/context"
	"blogapi/internal/domain/entity"
	domainerrors "blogapi/internal/domain/errors"
	"blogapi/internal/domain/repository"
	"blogapi/internal/errors"
	"blogapi/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type blogService struct {
	txManager repository.TransactionManager
	blogRepo  repository.BlogRepository
	logger    *slog.Logger
}

// BlogServiceParams holds dependencies for BlogService, injected by Fx.
type BlogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	BlogRepo  repository.BlogRepository
	Logger    *slog.Logger
}

// NewBlogService is the constructor for blogService.
func NewBlogService(params BlogServiceParams) usecase.BlogUsecase {
	return &blogService{
		txManager: params.TxManager,
		blogRepo:  params.BlogRepo,
		logger:    params.Logger,
	}
}

func (srv *blogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBlog stores a post owned by input.Owner.
func (srv *blogService) CreateBlog(ctx context.Context, input usecase.CreateBlogInput) (*entity.Blog, error) {
	if input.Owner == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	blog := &entity.Blog{
		Title:  input.Title,
		Body:   input.Body,
		UserID: input.Owner.ID,
	}
	if err := srv.blogRepo.Create(ctx, blog); err != nil {
		srv.log(ctx).Error("Failed to create blog", slog.Any("userID", input.Owner.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create blog")
	}
	blog.Creator = input.Owner

	srv.log(ctx).Debug("Blog created", slog.Any("blogID", blog.ID), slog.Any("userID", blog.UserID))

	return blog, nil
}

func (srv *blogService) GetBlog(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	blog, err := srv.blogRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapBlogRepoError(err, "failed to get blog")
	}

	return blog, nil
}

func (srv *blogService) ListBlogs(ctx context.Context) ([]*entity.Blog, error) {
	blogs, err := srv.blogRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blogs")
	}

	return blogs, nil
}

// UpdateBlog overwrites title and body and returns the stored result.
func (srv *blogService) UpdateBlog(ctx context.Context, input usecase.UpdateBlogInput) (*entity.Blog, error) {
	var updated *entity.Blog
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		blogRepo := repoFactory.BlogRepo()

		if err := blogRepo.UpdateByID(ctx, input.ID, repository.BlogUpdate{Title: input.Title, Body: input.Body}); err != nil {
			return err
		}

		blog, err := blogRepo.FindByID(ctx, input.ID)
		if err != nil {
			return err
		}
		updated = blog

		return nil
	})
	if err != nil {
		return nil, mapBlogRepoError(err, "failed to update blog")
	}

	srv.log(ctx).Debug("Blog updated", slog.Any("blogID", input.ID))

	return updated, nil
}

func (srv *blogService) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	if err := srv.blogRepo.DeleteByID(ctx, id); err != nil {
		return mapBlogRepoError(err, "failed to delete blog")
	}

	srv.log(ctx).Debug("Blog deleted", slog.Any("blogID", id))

	return nil
}

func mapBlogRepoError(err error, msg string) error {
	if errors.Is(err, repository.ErrBlogNotFound) {
		return domainerrors.ErrBlogNotFound
	}

	return errors.Wrap(err, msg)
}
