package handler

import (
	"log/slog"
	"net/http"

	"blogapi/internal/delivery/api/middleware"
	"blogapi/internal/delivery/api/response"
	domainerrors "blogapi/internal/domain/errors"
	"blogapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BlogHandlerParams holds dependencies for BlogHandler, injected by Fx.
type BlogHandlerParams struct {
	fx.In

	BlogUC usecase.BlogUsecase
	Logger *slog.Logger
}

// BlogHandler serves the blog routes. All of them sit behind the auth guard.
type BlogHandler struct {
	blogUC usecase.BlogUsecase
	logger *slog.Logger
}

func NewBlogHandler(params BlogHandlerParams) *BlogHandler {
	return &BlogHandler{
		blogUC: params.BlogUC,
		logger: params.Logger,
	}
}

// CreateBlog stores a post owned by the caller.
func (h *BlogHandler) CreateBlog(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req BlogRequest
	if err := c.Bind(&req); err != nil {
		requestLogger(c, h.logger).Debug("Failed to bind blog request", slog.Any("error", err))

		return response.BindingError(c, "INVALID_INPUT", "Invalid blog input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	blog, err := h.blogUC.CreateBlog(c.Request().Context(), usecase.CreateBlogInput{
		Owner: user,
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	requestLogger(c, h.logger).Info("Blog created",
		slog.String("blogID", blog.ID.String()),
		slog.String("userID", user.ID.String()),
	)

	return response.Success(c, http.StatusCreated, toBlogResponse(blog))
}

func (h *BlogHandler) ListBlogs(c echo.Context) error {
	blogs, err := h.blogUC.ListBlogs(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := make([]*BlogResponse, 0, len(blogs))
	for _, blog := range blogs {
		resp = append(resp, toBlogResponse(blog))
	}

	return response.Success(c, http.StatusOK, resp)
}

func (h *BlogHandler) GetBlog(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid blog ID")
	}

	blog, err := h.blogUC.GetBlog(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBlogResponse(blog))
}

// UpdateBlog replaces title and body and answers 202 with the stored post.
func (h *BlogHandler) UpdateBlog(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid blog ID")
	}

	var req BlogRequest
	if err := c.Bind(&req); err != nil {
		requestLogger(c, h.logger).Debug("Failed to bind blog request", slog.Any("error", err))

		return response.BindingError(c, "INVALID_INPUT", "Invalid blog input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	blog, err := h.blogUC.UpdateBlog(c.Request().Context(), usecase.UpdateBlogInput{
		ID:    id,
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	requestLogger(c, h.logger).Info("Blog updated", slog.String("blogID", id.String()))

	return response.Success(c, http.StatusAccepted, toBlogResponse(blog))
}

func (h *BlogHandler) DeleteBlog(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid blog ID")
	}

	if err := h.blogUC.DeleteBlog(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	requestLogger(c, h.logger).Info("Blog deleted", slog.String("blogID", id.String()))

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Blog deleted"})
}
