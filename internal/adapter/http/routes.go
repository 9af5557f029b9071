package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all storefront API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with middleware applied to the API group only.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *Handler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)
	api.GET("/verticals", h.Verticals)
	api.POST("/:vertical/search", h.Search)
}
