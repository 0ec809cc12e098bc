package subfunds

import "github.com/openrefdata/fundref/domain/refdata"

// CreateSubFundRequest is the request body for creating a sub-fund.
// Exactly one of parent_fund_id / parent_subfund_id must be set.
type CreateSubFundRequest struct {
	ParentFundID    *string `json:"parent_fund_id,omitempty"`
	ParentSubFundID *string `json:"parent_subfund_id,omitempty"`
	MgmtID          string  `json:"mgmt_id"`
	LEID            string  `json:"le_id"`
	ISINSub         string  `json:"isin_sub"`
	Currency        string  `json:"currency"`
	Status          string  `json:"status"`
}

// UpdateSubFundRequest is the request body for partially updating a
// sub-fund. The key and parent edges are not updatable.
type UpdateSubFundRequest struct {
	ISINSub  *string `json:"isin_sub,omitempty"`
	Currency *string `json:"currency,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// ListFilters are the supported sub-fund list criteria
type ListFilters struct {
	Currency     string
	Status       string
	ISIN         string
	ParentFundID string
}

// ListResponse is the paginated sub-fund list envelope
type ListResponse struct {
	SubFunds   []refdata.SubFund `json:"subfunds"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}
