package legalentities

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openrefdata/fundref/pkg/apperror"
	"github.com/openrefdata/fundref/pkg/pagination"
)

// Handler handles HTTP requests for legal entities
type Handler struct {
	svc *Service
}

// NewHandler creates a new legal entity handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List returns a paginated, filterable list of legal entities
// GET /api/legal-entities
func (h *Handler) List(c echo.Context) error {
	page, pageSize := pagination.ParsePageQuery(c.QueryParam("page"), c.QueryParam("page_size"))

	filters := ListFilters{
		Jurisdiction: c.QueryParam("jurisdiction"),
		EntityType:   c.QueryParam("entity_type"),
		LegalName:    c.QueryParam("legal_name"),
		LEI:          c.QueryParam("lei"),
	}

	resp, err := h.svc.List(c.Request().Context(), filters, page, pageSize)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

// Get returns a legal entity by key
// GET /api/legal-entities/:le_id
func (h *Handler) Get(c echo.Context) error {
	entity, err := h.svc.GetByID(c.Request().Context(), c.Param("le_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, entity)
}

// Create creates a new legal entity
// POST /api/legal-entities
func (h *Handler) Create(c echo.Context) error {
	var req CreateLegalEntityRequest
	if err := c.Bind(&req); err != nil {
		return apperror.ErrBadRequest.WithMessage("invalid request body")
	}

	entity, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, entity)
}

// Update partially updates a legal entity
// PATCH /api/legal-entities/:le_id
func (h *Handler) Update(c echo.Context) error {
	var req UpdateLegalEntityRequest
	if err := c.Bind(&req); err != nil {
		return apperror.ErrBadRequest.WithMessage("invalid request body")
	}

	entity, err := h.svc.Update(c.Request().Context(), c.Param("le_id"), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, entity)
}
