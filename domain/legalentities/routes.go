package legalentities

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers legal entity routes
func RegisterRoutes(e *echo.Echo, h *Handler) {
	g := e.Group("/api/legal-entities")

	g.GET("", h.List)
	g.GET("/:le_id", h.Get)
	g.POST("", h.Create)
	g.PATCH("/:le_id", h.Update)
}
