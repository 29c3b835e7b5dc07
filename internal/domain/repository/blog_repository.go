package repository

import (
	"context"
	"errors"

	"blogapi/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBlogNotFound is returned when no blog matches the given ID.
var ErrBlogNotFound = errors.New("blog not found")

// BlogUpdate carries the mutable fields of a blog.
type BlogUpdate struct {
	Title string
	Body  string
}

// BlogRepository defines the standard operations for blog persistence.
type BlogRepository interface {
	// FindByID retrieves a single blog with its creator.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error)

	// FindAll retrieves every blog with its creator, oldest first.
	FindAll(ctx context.Context) ([]*entity.Blog, error)

	// Create persists a new blog and fills in the generated ID and timestamps.
	Create(ctx context.Context, blog *entity.Blog) error

	// UpdateByID overwrites title and body. Returns ErrBlogNotFound if nothing matched.
	UpdateByID(ctx context.Context, id uuid.UUID, update BlogUpdate) error

	// DeleteByID removes the blog. Returns ErrBlogNotFound if nothing matched.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
