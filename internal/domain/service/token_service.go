package service

import (
	"errors"
	"time"

	"blogapi/internal/domain/entity"
)

var (
	// ErrTokenInvalid covers bad signatures, unexpected algorithms and malformed payloads.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired is returned for a correctly signed token whose expiry has passed.
	ErrTokenExpired = errors.New("token has expired")
)

// IssuedToken is a freshly signed access token.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenService issues and validates signed, time-limited bearer tokens.
type TokenService interface {
	// Issue signs a token for subject that expires after the configured lifetime.
	Issue(subject string) (*IssuedToken, error)

	// Validate verifies signature and expiry and returns the claims exactly as issued.
	// Errors wrap ErrTokenInvalid or ErrTokenExpired.
	Validate(token string) (*entity.TokenClaims, error)
}
