// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"accounts/internal/delivery/http/middleware"
	"accounts/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public routes
	api.POST("/users/register", r.userHandler.Register)
	api.POST("/users/login", r.userHandler.Login)

	// Routes that require a valid, unexpired token
	users := api.Group("/users")
	users.Use(r.authMiddleware.Authenticate)
	{
		users.GET("", r.userHandler.ListUsers)
		users.GET("/me", r.userHandler.GetMe)
		users.PUT("/:id", r.userHandler.UpdateUser)
		users.DELETE("/:id", r.userHandler.DeleteUser)
	}
}
