package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"

	deliverycontext "blogapi/internal/delivery/context"
	"blogapi/internal/domain/entity"
	domainerrors "blogapi/internal/domain/errors"
	"blogapi/internal/errors"
	mockUsecase "blogapi/internal/mocks/usecase"
	"blogapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBlogHandlerForTest(t *testing.T) (*BlogHandler, *mockUsecase.MockBlogUsecase) {
	blogUC := mockUsecase.NewMockBlogUsecase(t)

	return NewBlogHandler(BlogHandlerParams{BlogUC: blogUC, Logger: discardLogger()}), blogUC
}

func withID(c echo.Context, id string) {
	c.SetParamNames("id")
	c.SetParamValues(id)
}

func TestBlogHandler_CreateBlog(t *testing.T) {
	h, blogUC := newBlogHandlerForTest(t)
	e := newTestEcho()
	caller := &entity.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}
	blogID := uuid.New()

	blogUC.EXPECT().
		CreateBlog(mock.Anything, usecase.CreateBlogInput{Owner: caller, Title: "Hello", Body: "World"}).
		Return(&entity.Blog{ID: blogID, Title: "Hello", Body: "World", UserID: caller.ID, Creator: caller}, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/blog", `{"title":"Hello","body":"World"}`)
	deliverycontext.SetUser(c, caller)

	require.NoError(t, h.CreateBlog(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	got := decodeData[BlogResponse](t, rec)
	assert.Equal(t, blogID, got.ID)
	require.NotNil(t, got.Creator)
	assert.Equal(t, "alice@example.com", got.Creator.Email)
}

func TestBlogHandler_CreateBlog_NoCaller(t *testing.T) {
	h, _ := newBlogHandlerForTest(t)
	e := newTestEcho()

	c, rec := newJSONContext(e, http.MethodPost, "/blog", `{"title":"Hello","body":"World"}`)

	require.NoError(t, h.CreateBlog(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBlogHandler_CreateBlog_Validation(t *testing.T) {
	h, _ := newBlogHandlerForTest(t)
	e := newTestEcho()

	c, rec := newJSONContext(e, http.MethodPost, "/blog", `{"title":"Hello"}`)
	deliverycontext.SetUser(c, &entity.User{ID: uuid.New()})

	require.NoError(t, h.CreateBlog(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "body: is required")
}

func TestBlogHandler_ListBlogs(t *testing.T) {
	h, blogUC := newBlogHandlerForTest(t)
	e := newTestEcho()

	blogUC.EXPECT().ListBlogs(mock.Anything).Return([]*entity.Blog{}, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/blog", "")

	require.NoError(t, h.ListBlogs(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(mustRawData(t, rec)))
}

func TestBlogHandler_GetBlog_NotFound(t *testing.T) {
	h, blogUC := newBlogHandlerForTest(t)
	e := newTestEcho()
	id := uuid.New()

	blogUC.EXPECT().GetBlog(mock.Anything, id).Return(nil, domainerrors.ErrBlogNotFound)

	c, rec := newJSONContext(e, http.MethodGet, "/blog/"+id.String(), "")
	withID(c, id.String())

	require.NoError(t, h.GetBlog(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "BLOG_NOT_FOUND", decodeErrorCode(t, rec))
}

func TestBlogHandler_UpdateBlog(t *testing.T) {
	h, blogUC := newBlogHandlerForTest(t)
	e := newTestEcho()
	id := uuid.New()

	blogUC.EXPECT().
		UpdateBlog(mock.Anything, usecase.UpdateBlogInput{ID: id, Title: "New", Body: "Text"}).
		Return(&entity.Blog{ID: id, Title: "New", Body: "Text"}, nil)

	c, rec := newJSONContext(e, http.MethodPut, "/blog/"+id.String(), `{"title":"New","body":"Text"}`)
	withID(c, id.String())

	require.NoError(t, h.UpdateBlog(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "New", decodeData[BlogResponse](t, rec).Title)
}

func TestBlogHandler_DeleteBlog(t *testing.T) {
	h, blogUC := newBlogHandlerForTest(t)
	e := newTestEcho()
	id := uuid.New()

	blogUC.EXPECT().DeleteBlog(mock.Anything, id).Return(nil)

	c, rec := newJSONContext(e, http.MethodDelete, "/blog/"+id.String(), "")
	withID(c, id.String())

	require.NoError(t, h.DeleteBlog(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Blog deleted", decodeData[MessageResponse](t, rec).Message)
}

func TestBlogHandler_DeleteBlog_StorageFailureBubbles(t *testing.T) {
	h, blogUC := newBlogHandlerForTest(t)
	e := newTestEcho()
	id := uuid.New()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "failed to delete blog")

	blogUC.EXPECT().DeleteBlog(mock.Anything, id).Return(dbErr)

	c, rec := newJSONContext(e, http.MethodDelete, "/blog/"+id.String(), "")
	withID(c, id.String())

	err := h.DeleteBlog(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dbErr))
	assert.Equal(t, 0, rec.Body.Len())
}

func TestBlogHandler_DeleteBlog_LogsWithRequestLogger(t *testing.T) {
	var handlerBuf, requestBuf bytes.Buffer
	blogUC := mockUsecase.NewMockBlogUsecase(t)
	h := NewBlogHandler(BlogHandlerParams{BlogUC: blogUC, Logger: slog.New(slog.NewTextHandler(&handlerBuf, nil))})
	id := uuid.New()

	blogUC.EXPECT().DeleteBlog(mock.Anything, id).Return(nil)

	c, _ := newJSONContext(newTestEcho(), http.MethodDelete, "/blog/"+id.String(), "")
	withID(c, id.String())
	requestLogger := slog.New(slog.NewTextHandler(&requestBuf, nil)).With(slog.String("request_id", "req-1"))
	c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(c.Request().Context(), requestLogger)))

	require.NoError(t, h.DeleteBlog(c))
	assert.Empty(t, handlerBuf.String())
	assert.Contains(t, requestBuf.String(), "Blog deleted")
	assert.Contains(t, requestBuf.String(), "request_id=req-1")
	assert.Contains(t, requestBuf.String(), "blogID="+id.String())
}

func TestBlogHandler_CreateBlog_BindFailureLogged(t *testing.T) {
	var buf bytes.Buffer
	h := NewBlogHandler(BlogHandlerParams{
		BlogUC: mockUsecase.NewMockBlogUsecase(t),
		Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})

	c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/blog", `{"title":`)
	deliverycontext.SetUser(c, &entity.User{ID: uuid.New()})

	require.NoError(t, h.CreateBlog(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, buf.String(), "Failed to bind blog request")
}
