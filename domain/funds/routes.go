package funds

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers fund routes.
// Literal routes (/search, /code/:fund_code) are registered before the
// :fund_id parameter routes so they always win the match.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	g := e.Group("/api/funds")

	g.GET("", h.List)
	g.GET("/search", h.Search)
	g.GET("/code/:fund_code", h.GetByCode)

	g.GET("/:fund_id", h.Get)
	g.GET("/:fund_id/hierarchy/children", h.HierarchyChildren)
	g.GET("/:fund_id/hierarchy/parents", h.HierarchyParents)

	g.POST("", h.Create)
	g.PATCH("/:fund_id", h.Update)
}
