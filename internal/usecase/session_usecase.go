package usecase

import (
	"context"
	"time"

	"blogapi/internal/domain/entity"
)

// TokenTypeBearer is the only token type issued by Login.
const TokenTypeBearer = "bearer"

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput is the issued access token.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	User        *entity.User
}

// SessionUsecase exchanges credentials for bearer tokens and resolves tokens back to users.
type SessionUsecase interface {
	// Login fails with ErrInvalidCredentials for an unknown email and for a wrong password alike.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Authenticate resolves a bearer token to its user.
	// Every token or lookup miss yields ErrUnauthenticated; storage failures are returned as they are.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
