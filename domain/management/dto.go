package management

import "github.com/openrefdata/fundref/domain/refdata"

// CreateManagementEntityRequest is the request body for creating a
// management entity. mgmt_id may be supplied explicitly for ingest-style
// loads; when omitted the store assigns one.
type CreateManagementEntityRequest struct {
	MgmtID         string `json:"mgmt_id"`
	LEID           string `json:"le_id"`
	RegistrationNo string `json:"registration_no"`
	Domicile       string `json:"domicile"`
	EntityType     string `json:"entity_type"`
	Status         string `json:"status"`
}

// UpdateManagementEntityRequest is the request body for partially
// updating a management entity. The key and le_id edge are not updatable.
type UpdateManagementEntityRequest struct {
	RegistrationNo *string `json:"registration_no,omitempty"`
	Domicile       *string `json:"domicile,omitempty"`
	EntityType     *string `json:"entity_type,omitempty"`
	Status         *string `json:"status,omitempty"`
}

// ListFilters are the supported management entity list criteria
type ListFilters struct {
	Status         string
	Domicile       string
	EntityType     string
	RegistrationNo string
}

// ListResponse is the paginated management entity list envelope
type ListResponse struct {
	ManagementEntities []refdata.ManagementEntity `json:"management_entities"`
	Total              int                        `json:"total"`
	Page               int                        `json:"page"`
	PageSize           int                        `json:"page_size"`
	TotalPages         int                        `json:"total_pages"`
}

// FundsResponse is the paginated envelope for a management entity's funds
type FundsResponse struct {
	Funds      []refdata.Fund `json:"funds"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}
