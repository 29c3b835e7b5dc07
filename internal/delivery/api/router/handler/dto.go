package handler

import (
	"time"

	"blogapi/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginRequest is the OAuth2 password form; username carries the email.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required,email,max=255"`
	Password string `json:"password" form:"password" validate:"required,maxbytes=72"`
}

// TokenResponse is the bare OAuth2 token object returned by login.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

// BlogRequest is used for both create and full update.
type BlogRequest struct {
	Title string `json:"title" validate:"required,max=255"`
	Body  string `json:"body" validate:"required"`
}

// UserResponse never includes the password hash.
type UserResponse struct {
	ID        uuid.UUID              `json:"id"`
	Name      string                 `json:"name"`
	Email     string                 `json:"email"`
	Blogs     []*BlogSummaryResponse `json:"blogs"`
	CreatedAt time.Time              `json:"created_at"`
}

type BlogSummaryResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BlogResponse struct {
	ID        uuid.UUID        `json:"id"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	Creator   *CreatorResponse `json:"creator"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type CreatorResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func toUserResponse(user *entity.User) *UserResponse {
	blogs := make([]*BlogSummaryResponse, 0, len(user.Blogs))
	for _, blog := range user.Blogs {
		blogs = append(blogs, &BlogSummaryResponse{
			ID:        blog.ID,
			Title:     blog.Title,
			Body:      blog.Body,
			CreatedAt: blog.CreatedAt,
			UpdatedAt: blog.UpdatedAt,
		})
	}

	return &UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Blogs:     blogs,
		CreatedAt: user.CreatedAt,
	}
}

func toBlogResponse(blog *entity.Blog) *BlogResponse {
	resp := &BlogResponse{
		ID:        blog.ID,
		Title:     blog.Title,
		Body:      blog.Body,
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}
	if blog.Creator != nil {
		resp.Creator = &CreatorResponse{
			ID:    blog.Creator.ID,
			Name:  blog.Creator.Name,
			Email: blog.Creator.Email,
		}
	}

	return resp
}
