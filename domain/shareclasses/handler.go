package shareclasses

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openrefdata/fundref/pkg/apperror"
	"github.com/openrefdata/fundref/pkg/pagination"
)

// Handler handles HTTP requests for share classes
type Handler struct {
	svc *Service
}

// NewHandler creates a new share class handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List returns a paginated, filterable list of share classes
// GET /api/share-classes
func (h *Handler) List(c echo.Context) error {
	page, pageSize := pagination.ParsePageQuery(c.QueryParam("page"), c.QueryParam("page_size"))

	filters := ListFilters{
		Currency:     c.QueryParam("currency"),
		Distribution: c.QueryParam("distribution"),
		Status:       c.QueryParam("status"),
		FundID:       c.QueryParam("fund_id"),
		SubFundID:    c.QueryParam("subfund_id"),
		ISIN:         c.QueryParam("isin"),
	}

	resp, err := h.svc.List(c.Request().Context(), filters, page, pageSize)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

// Get returns a share class with its owner inlined
// GET /api/share-classes/:sc_id
func (h *Handler) Get(c echo.Context) error {
	sc, err := h.svc.GetByID(c.Request().Context(), c.Param("sc_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sc)
}

// Create creates a new share class
// POST /api/share-classes
func (h *Handler) Create(c echo.Context) error {
	var req CreateShareClassRequest
	if err := c.Bind(&req); err != nil {
		return apperror.ErrBadRequest.WithMessage("invalid request body")
	}

	sc, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, sc)
}

// Update partially updates a share class
// PATCH /api/share-classes/:sc_id
func (h *Handler) Update(c echo.Context) error {
	var req UpdateShareClassRequest
	if err := c.Bind(&req); err != nil {
		return apperror.ErrBadRequest.WithMessage("invalid request body")
	}

	sc, err := h.svc.Update(c.Request().Context(), c.Param("sc_id"), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sc)
}
