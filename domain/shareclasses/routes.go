package shareclasses

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers share class routes
func RegisterRoutes(e *echo.Echo, h *Handler) {
	g := e.Group("/api/share-classes")

	g.GET("", h.List)
	g.GET("/:sc_id", h.Get)
	g.POST("", h.Create)
	g.PATCH("/:sc_id", h.Update)
}
