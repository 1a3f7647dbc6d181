// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"souk/internal/delivery/http/middleware"
	"souk/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ShipmentSearchHandler   *handler.ShipmentSearchHandler
	StoreOrderSearchHandler *handler.StoreOrderSearchHandler
	OrderSearchHandler      *handler.OrderSearchHandler
	AuthMiddleware          *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	shipmentSearchHandler   *handler.ShipmentSearchHandler
	storeOrderSearchHandler *handler.StoreOrderSearchHandler
	orderSearchHandler      *handler.OrderSearchHandler
	authMiddleware          *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		shipmentSearchHandler:   params.ShipmentSearchHandler,
		storeOrderSearchHandler: params.StoreOrderSearchHandler,
		orderSearchHandler:      params.OrderSearchHandler,
		authMiddleware:          params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Search routes require authentication; per-graph authorization is
	// resolved from the declared role inside each handler.
	searchGroup := e.Group("/search")
	searchGroup.Use(r.authMiddleware.Authenticate)
	{
		searchGroup.POST("/shipments", r.shipmentSearchHandler.Search)
		searchGroup.POST("/store-orders", r.storeOrderSearchHandler.Search)
		searchGroup.POST("/orders", r.orderSearchHandler.Search)
	}
}
