// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"pantry/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	FoodHandler    *handler.FoodHandler
	AccountHandler *handler.AccountHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	foodHandler    *handler.FoodHandler
	accountHandler *handler.AccountHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		foodHandler:    params.FoodHandler,
		accountHandler: params.AccountHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes
	authGroup := e.Group("/auth/accounts")
	{
		authGroup.POST("/register/", r.accountHandler.Register)
		authGroup.GET("/users/all/", r.accountHandler.List)
		authGroup.GET("/users/:id", r.accountHandler.Get)
		authGroup.PUT("/users/:id", r.accountHandler.Update)
		authGroup.DELETE("/users/:id", r.accountHandler.Delete)
	}

	// Food routes
	foodGroup := e.Group("/foods")
	{
		foodGroup.POST("/", r.foodHandler.Create)
		foodGroup.GET("/", r.foodHandler.List)
		foodGroup.GET("/:id", r.foodHandler.Get)
		foodGroup.PUT("/:id", r.foodHandler.Update)
		foodGroup.DELETE("/:id", r.foodHandler.Delete)
	}
}
