package handler

import (
	"log/slog"

	deliverycontext "blogapi/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// requestLogger prefers the logger carrying the request ID over the handler's own.
func requestLogger(c echo.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), fallback)
}
