package database

import (
	"context"

	"blogapi/internal/domain/entity"
	domainerrors "blogapi/internal/domain/errors"
	"blogapi/internal/domain/repository"
	"blogapi/internal/errors"
	"blogapi/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository returns a repository.BlogRepository backed by db.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

// FindByID retrieves a single blog together with its creator.
func (repo *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	var blogM model.BlogModel
	err := repo.db.WithContext(ctx).
		Preload("Creator").
		Where("id = ?", id).
		First(&blogM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog by id")
	}

	return toBlogDomain(&blogM), nil
}

func (repo *blogRepository) FindAll(ctx context.Context) ([]*entity.Blog, error) {
	var blogMs []*model.BlogModel
	err := repo.db.WithContext(ctx).
		Preload("Creator").
		Order("created_at ASC, id ASC").
		Find(&blogMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blogs")
	}

	blogs := make([]*entity.Blog, 0, len(blogMs))
	for _, blogM := range blogMs {
		blogs = append(blogs, toBlogDomain(blogM))
	}

	return blogs, nil
}

func (repo *blogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	blogM := fromBlogDomain(blog)

	if err := repo.db.WithContext(ctx).Omit("Creator").Create(blogM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBlogCreationFailed.WrapMessage("owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create blog")
	}

	blog.ID = blogM.ID
	blog.CreatedAt = blogM.CreatedAt
	blog.UpdatedAt = blogM.UpdatedAt

	return nil
}

// UpdateByID overwrites title and body. Owner and creation time never change.
func (repo *blogRepository) UpdateByID(ctx context.Context, id uuid.UUID, update repository.BlogUpdate) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BlogModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title": update.Title,
			"body":  update.Body,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update blog")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

func (repo *blogRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BlogModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete blog")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

func toBlogDomain(blogM *model.BlogModel) *entity.Blog {
	if blogM == nil {
		return nil
	}

	blog := &entity.Blog{
		ID:        blogM.ID,
		Title:     blogM.Title,
		Body:      blogM.Body,
		UserID:    blogM.UserID,
		CreatedAt: blogM.CreatedAt,
		UpdatedAt: blogM.UpdatedAt,
	}
	if blogM.Creator != nil {
		// The creator's own blog list is not loaded here.
		blog.Creator = &entity.User{
			ID:        blogM.Creator.ID,
			Name:      blogM.Creator.Name,
			Email:     blogM.Creator.Email,
			CreatedAt: blogM.Creator.CreatedAt,
			UpdatedAt: blogM.Creator.UpdatedAt,
		}
	}

	return blog
}

func fromBlogDomain(blog *entity.Blog) *model.BlogModel {
	return &model.BlogModel{
		ID:     blog.ID,
		Title:  blog.Title,
		Body:   blog.Body,
		UserID: blog.UserID,
	}
}
