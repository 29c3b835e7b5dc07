package usecase

import (
	"context"

	"blogapi/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBlogInput carries a new post. Owner is the authenticated caller.
type CreateBlogInput struct {
	Owner *entity.User
	Title string
	Body  string
}

// UpdateBlogInput overwrites the title and body of an existing post.
type UpdateBlogInput struct {
	ID    uuid.UUID
	Title string
	Body  string
}

// BlogUsecase defines the blog-related business operations.
type BlogUsecase interface {
	CreateBlog(ctx context.Context, input CreateBlogInput) (*entity.Blog, error)
	GetBlog(ctx context.Context, id uuid.UUID) (*entity.Blog, error)
	ListBlogs(ctx context.Context) ([]*entity.Blog, error)
	UpdateBlog(ctx context.Context, input UpdateBlogInput) (*entity.Blog, error)
	DeleteBlog(ctx context.Context, id uuid.UUID) error
}
