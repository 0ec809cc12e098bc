package legalentities

import (
	"github.com/openrefdata/fundref/domain/refdata"
)

// CreateLegalEntityRequest is the payload for creating a legal entity.
// LEID may be supplied explicitly; when absent the database assigns the
// next LE-prefixed key.
type CreateLegalEntityRequest struct {
	LEID         string `json:"le_id,omitempty"`
	LEI          string `json:"lei"`
	LegalName    string `json:"legal_name"`
	Jurisdiction string `json:"jurisdiction,omitempty"`
	EntityType   string `json:"entity_type,omitempty"`
}

// UpdateLegalEntityRequest is the payload for partially updating a
// legal entity. Only non-nil fields are applied; the LEI is immutable.
type UpdateLegalEntityRequest struct {
	LegalName    *string `json:"legal_name,omitempty"`
	Jurisdiction *string `json:"jurisdiction,omitempty"`
	EntityType   *string `json:"entity_type,omitempty"`
}

// ListFilters are the query filters for listing legal entities.
// Jurisdiction and EntityType match exactly; LegalName and LEI match as
// case-insensitive substrings.
type ListFilters struct {
	Jurisdiction string
	EntityType   string
	LegalName    string
	LEI          string
}

// ListResponse is the paginated envelope for legal entity listings
type ListResponse struct {
	LegalEntities []refdata.LegalEntity `json:"legal_entities"`
	Total         int                   `json:"total"`
	Page          int                   `json:"page"`
	PageSize      int                   `json:"page_size"`
	TotalPages    int                   `json:"total_pages"`
}
