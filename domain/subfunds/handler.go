package subfunds

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openrefdata/fundref/pkg/apperror"
	"github.com/openrefdata/fundref/pkg/pagination"
)

// Handler handles HTTP requests for sub-funds
type Handler struct {
	svc *Service
}

// NewHandler creates a new sub-fund handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List returns a paginated, filterable list of sub-funds
// GET /api/subfunds
func (h *Handler) List(c echo.Context) error {
	page, pageSize := pagination.ParsePageQuery(c.QueryParam("page"), c.QueryParam("page_size"))

	filters := ListFilters{
		Currency:     c.QueryParam("currency"),
		Status:       c.QueryParam("status"),
		ISIN:         c.QueryParam("isin"),
		ParentFundID: c.QueryParam("parent_fund_id"),
	}

	resp, err := h.svc.List(c.Request().Context(), filters, page, pageSize)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

// Get returns a sub-fund with related entities inlined
// GET /api/subfunds/:subfund_id
func (h *Handler) Get(c echo.Context) error {
	sf, err := h.svc.GetByID(c.Request().Context(), c.Param("subfund_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sf)
}

// HierarchyParents returns the upward parent chain of a sub-fund
// GET /api/subfunds/:subfund_id/hierarchy/parents
func (h *Handler) HierarchyParents(c echo.Context) error {
	depth := pagination.ParseInt(c.QueryParam("depth"), 0)

	resp, err := h.svc.HierarchyParents(c.Request().Context(), c.Param("subfund_id"), depth)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

// Create creates a new sub-fund
// POST /api/subfunds
func (h *Handler) Create(c echo.Context) error {
	var req CreateSubFundRequest
	if err := c.Bind(&req); err != nil {
		return apperror.ErrBadRequest.WithMessage("invalid request body")
	}

	sf, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, sf)
}

// Update partially updates a sub-fund
// PATCH /api/subfunds/:subfund_id
func (h *Handler) Update(c echo.Context) error {
	var req UpdateSubFundRequest
	if err := c.Bind(&req); err != nil {
		return apperror.ErrBadRequest.WithMessage("invalid request body")
	}

	sf, err := h.svc.Update(c.Request().Context(), c.Param("subfund_id"), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sf)
}
