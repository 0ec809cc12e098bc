package funds

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openrefdata/fundref/pkg/apperror"
	"github.com/openrefdata/fundref/pkg/pagination"
)

// Handler handles HTTP requests for funds
type Handler struct {
	svc *Service
}

// NewHandler creates a new fund handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List returns a paginated list of all funds
// GET /api/funds
func (h *Handler) List(c echo.Context) error {
	page, pageSize := pageParams(c)

	resp, err := h.svc.List(c.Request().Context(), page, pageSize)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

// Search returns funds matching the query filters
// GET /api/funds/search
func (h *Handler) Search(c echo.Context) error {
	page, pageSize := pageParams(c)

	filters := SearchFilters{
		FundType: c.QueryParam("fund_type"),
		Status:   c.QueryParam("status"),
		MgmtID:   c.QueryParam("mgmt_id"),
		FundCode: c.QueryParam("fund_code"),
		ISIN:     c.QueryParam("isin"),
	}

	resp, err := h.svc.Search(c.Request().Context(), filters, page, pageSize)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

// Get returns a fund by ID with related entities inlined
// GET /api/funds/:fund_id
func (h *Handler) Get(c echo.Context) error {
	fund, err := h.svc.GetByID(c.Request().Context(), c.Param("fund_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fund)
}

// GetByCode returns a fund by its fund_code
// GET /api/funds/code/:fund_code
func (h *Handler) GetByCode(c echo.Context) error {
	fund, err := h.svc.GetByCode(c.Request().Context(), c.Param("fund_code"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fund)
}

// HierarchyChildren returns descendant sub-funds within depth hops
// GET /api/funds/:fund_id/hierarchy/children
func (h *Handler) HierarchyChildren(c echo.Context) error {
	resp, err := h.svc.HierarchyChildren(c.Request().Context(), c.Param("fund_id"), depthParam(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

// HierarchyParents returns the upward parent chain
// GET /api/funds/:fund_id/hierarchy/parents
func (h *Handler) HierarchyParents(c echo.Context) error {
	resp, err := h.svc.HierarchyParents(c.Request().Context(), c.Param("fund_id"), depthParam(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

// Create creates a new fund
// POST /api/funds
func (h *Handler) Create(c echo.Context) error {
	var req CreateFundRequest
	if err := c.Bind(&req); err != nil {
		return apperror.ErrBadRequest.WithMessage("invalid request body")
	}

	fund, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, fund)
}

// Update partially updates a fund
// PATCH /api/funds/:fund_id
func (h *Handler) Update(c echo.Context) error {
	var req UpdateFundRequest
	if err := c.Bind(&req); err != nil {
		return apperror.ErrBadRequest.WithMessage("invalid request body")
	}

	fund, err := h.svc.Update(c.Request().Context(), c.Param("fund_id"), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fund)
}

func pageParams(c echo.Context) (page, pageSize int) {
	return pagination.ParsePageQuery(c.QueryParam("page"), c.QueryParam("page_size"))
}

func depthParam(c echo.Context) int {
	return pagination.ParseInt(c.QueryParam("depth"), 0)
}
