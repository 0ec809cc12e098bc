package management

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers management entity routes
func RegisterRoutes(e *echo.Echo, h *Handler) {
	g := e.Group("/api/management")

	g.GET("", h.List)
	g.GET("/:mgmt_id", h.Get)
	g.GET("/:mgmt_id/funds", h.ListFunds)
	g.POST("", h.Create)
	g.PATCH("/:mgmt_id", h.Update)
}
