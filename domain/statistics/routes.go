package statistics

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers statistics routes
func RegisterRoutes(e *echo.Echo, h *Handler) {
	g := e.Group("/api/statistics")

	g.GET("/funds", h.Funds)
	g.GET("/management", h.Management)
	g.GET("/dashboard", h.Dashboard)
}
