// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/ir-khan/inventory-management-system/internal/delivery/http/middleware"
	"github.com/ir-khan/inventory-management-system/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler   *handler.ProfileHandler
	InventoryHandler *handler.InventoryHandler
	EmployeeHandler  *handler.EmployeeHandler
	FeedHandler      *handler.FeedHandler
	AuthMiddleware   *middleware.AuthMiddleware
	LoggerMiddleware *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler   *handler.ProfileHandler
	inventoryHandler *handler.InventoryHandler
	employeeHandler  *handler.EmployeeHandler
	feedHandler      *handler.FeedHandler
	authMiddleware   *middleware.AuthMiddleware
	loggerMiddleware *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler:   params.ProfileHandler,
		inventoryHandler: params.InventoryHandler,
		employeeHandler:  params.EmployeeHandler,
		feedHandler:      params.FeedHandler,
		authMiddleware:   params.AuthMiddleware,
		loggerMiddleware: params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	e.Use(r.loggerMiddleware.Handle)

	// Everything below needs a verified session.
	api := e.Group("/api/v1")
	api.Use(r.authMiddleware.Authenticate)

	profileGroup := api.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PATCH("", r.profileHandler.UpdateProfile)
		profileGroup.POST("/sync", r.profileHandler.SyncProfile)
	}

	inventoryGroup := api.Group("/inventory")
	{
		inventoryGroup.POST("/buy", r.inventoryHandler.Buy)
		inventoryGroup.POST("/sell", r.inventoryHandler.Sell)
		inventoryGroup.GET("/transactions", r.inventoryHandler.History)
		inventoryGroup.GET("/sales/total", r.inventoryHandler.TotalSales)
	}

	employeeGroup := api.Group("/employees")
	{
		employeeGroup.POST("", r.employeeHandler.Add)
		employeeGroup.GET("", r.employeeHandler.List)
		employeeGroup.DELETE("/:id", r.employeeHandler.Remove)
	}

	feedGroup := api.Group("/feed")
	{
		feedGroup.GET("/products", r.feedHandler.StreamProducts)
		feedGroup.GET("/transactions", r.feedHandler.StreamTransactions)
	}
}
