package management

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openrefdata/fundref/pkg/apperror"
	"github.com/openrefdata/fundref/pkg/pagination"
)

// Handler handles HTTP requests for management entities
type Handler struct {
	svc *Service
}

// NewHandler creates a new management entity handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List returns a paginated, filterable list of management entities
// GET /api/management
func (h *Handler) List(c echo.Context) error {
	page, pageSize := pagination.ParsePageQuery(c.QueryParam("page"), c.QueryParam("page_size"))

	filters := ListFilters{
		Status:         c.QueryParam("status"),
		Domicile:       c.QueryParam("domicile"),
		EntityType:     c.QueryParam("entity_type"),
		RegistrationNo: c.QueryParam("registration_no"),
	}

	resp, err := h.svc.List(c.Request().Context(), filters, page, pageSize)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

// Get returns a management entity with its legal entity inlined
// GET /api/management/:mgmt_id
func (h *Handler) Get(c echo.Context) error {
	entity, err := h.svc.GetByID(c.Request().Context(), c.Param("mgmt_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, entity)
}

// ListFunds returns the funds managed by an entity
// GET /api/management/:mgmt_id/funds
func (h *Handler) ListFunds(c echo.Context) error {
	page, pageSize := pagination.ParsePageQuery(c.QueryParam("page"), c.QueryParam("page_size"))

	resp, err := h.svc.ListFunds(c.Request().Context(), c.Param("mgmt_id"), page, pageSize)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

// Create creates a new management entity
// POST /api/management
func (h *Handler) Create(c echo.Context) error {
	var req CreateManagementEntityRequest
	if err := c.Bind(&req); err != nil {
		return apperror.ErrBadRequest.WithMessage("invalid request body")
	}

	entity, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, entity)
}

// Update partially updates a management entity
// PATCH /api/management/:mgmt_id
func (h *Handler) Update(c echo.Context) error {
	var req UpdateManagementEntityRequest
	if err := c.Bind(&req); err != nil {
		return apperror.ErrBadRequest.WithMessage("invalid request body")
	}

	entity, err := h.svc.Update(c.Request().Context(), c.Param("mgmt_id"), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, entity)
}
