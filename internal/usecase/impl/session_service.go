package impl

import (
	"context"
	"log/slog"

	deliverycontext "blogapi/internal/delivery/context"
	"blogapi/internal/domain/entity"
	domainerrors "blogapi/internal/domain/errors"
	"blogapi/internal/domain/repository"
	"blogapi/internal/domain/service"
	"blogapi/internal/errors"
	"blogapi/internal/usecase"

	"go.uber.org/fx"
)

type sessionService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the password and issues an access token whose subject is the user's email.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Login for unknown email")

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Debug("Login password mismatch", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	issued, err := srv.tokenService.Issue(user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: issued.Token,
		TokenType:   usecase.TokenTypeBearer,
		ExpiresAt:   issued.ExpiresAt,
		User:        user,
	}, nil
}

// Authenticate validates token and loads the user named by its subject.
func (srv *sessionService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		srv.log(ctx).Debug("Authentication failed", slog.String("reason", "missing token"))

		return nil, domainerrors.ErrUnauthenticated
	}

	claims, err := srv.tokenService.Validate(token)
	if err != nil {
		srv.log(ctx).Debug("Authentication failed", slog.String("reason", err.Error()))

		return nil, domainerrors.ErrUnauthenticated
	}

	user, err := srv.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Authentication failed", slog.String("reason", "subject has no account"))

			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, errors.Wrap(err, "failed to resolve token subject")
	}

	return user, nil
}
