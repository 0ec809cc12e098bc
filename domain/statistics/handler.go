package statistics

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler handles HTTP requests for dashboard statistics
type Handler struct {
	svc *Service
}

// NewHandler creates a new statistics handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Funds returns the fund catalog aggregates
// GET /api/statistics/funds
func (h *Handler) Funds(c echo.Context) error {
	stats, err := h.svc.FundStatistics(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

// Management returns the management entity aggregates
// GET /api/statistics/management
func (h *Handler) Management(c echo.Context) error {
	stats, err := h.svc.ManagementStatistics(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

// Dashboard returns both aggregate sets in a single call
// GET /api/statistics/dashboard
func (h *Handler) Dashboard(c echo.Context) error {
	stats, err := h.svc.DashboardStatistics(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}
