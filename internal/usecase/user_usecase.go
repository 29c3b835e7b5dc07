// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"blogapi/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// UserUsecase defines the user-related business operations.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input RegisterUserInput) (*entity.User, error)
	// GetUser returns the user with the blogs they own.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
