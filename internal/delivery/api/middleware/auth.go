// Package middleware contains echo middleware specific to the JSON API.
package middleware

import (
	"log/slog"
	"strings"

	"blogapi/internal/delivery/api/response"
	deliverycontext "blogapi/internal/delivery/context"
	"blogapi/internal/domain/entity"
	domainerrors "blogapi/internal/domain/errors"
	"blogapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerScheme = "bearer"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// AuthMiddleware guards routes behind a valid bearer access token.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// Authenticate resolves the bearer token to a user and stores it for CurrentUser.
// Every rejection produces the same 401 response; the reason is only logged.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Authentication failed", slog.String("reason", "missing or malformed Authorization header"))

			return unauthenticated(c)
		}

		user, err := m.sessionUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

// CurrentUser returns the user resolved by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	return deliverycontext.GetUser(c)
}

// bearerToken extracts the credentials of an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	return token, true
}

func unauthenticated(c echo.Context) error {
	err := domainerrors.ErrUnauthenticated

	return response.Error(c, err.HTTPCode(), err.ErrorCode(), err.Message(), nil)
}
