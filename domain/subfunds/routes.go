package subfunds

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers sub-fund routes
func RegisterRoutes(e *echo.Echo, h *Handler) {
	g := e.Group("/api/subfunds")

	g.GET("", h.List)
	g.GET("/:subfund_id", h.Get)
	g.GET("/:subfund_id/hierarchy/parents", h.HierarchyParents)
	g.POST("", h.Create)
	g.PATCH("/:subfund_id", h.Update)
}
