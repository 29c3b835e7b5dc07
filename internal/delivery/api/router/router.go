// Package router contains the route table of the JSON API.
package router

import (
	"blogapi/internal/delivery/api/middleware"
	"blogapi/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	BlogHandler    *handler.BlogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	blogHandler    *handler.BlogHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		blogHandler:    params.BlogHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Trailing slashes are stripped before routing, so "/blog/" reaches "/blog".
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.POST("/login", r.authHandler.Login)

	userGroup := e.Group("/user")
	{
		userGroup.POST("", r.userHandler.CreateUser)
		userGroup.GET("", r.userHandler.ListUsers, r.authMiddleware.Authenticate)
		userGroup.GET("/:id", r.userHandler.GetUser, r.authMiddleware.Authenticate)
	}

	blogGroup := e.Group("/blog")
	blogGroup.Use(r.authMiddleware.Authenticate)
	{
		blogGroup.GET("", r.blogHandler.ListBlogs)
		blogGroup.POST("", r.blogHandler.CreateBlog)
		blogGroup.GET("/:id", r.blogHandler.GetBlog)
		blogGroup.PUT("/:id", r.blogHandler.UpdateBlog)
		blogGroup.DELETE("/:id", r.blogHandler.DeleteBlog)
	}
}
