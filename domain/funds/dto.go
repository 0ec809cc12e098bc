package funds

import "github.com/openrefdata/fundref/domain/refdata"

// CreateFundRequest is the request body for creating a fund.
// fund_id is never accepted from the caller, the store assigns it.
type CreateFundRequest struct {
	FundCode     string `json:"fund_code"`
	FundName     string `json:"fund_name"`
	FundType     string `json:"fund_type"`
	BaseCurrency string `json:"base_currency"`
	Domicile     string `json:"domicile"`
	ISINMaster   string `json:"isin_master"`
	Status       string `json:"status"`
	MgmtID       string `json:"mgmt_id"`
	LEID         string `json:"le_id"`
}

// UpdateFundRequest is the request body for partially updating a fund.
// Keys and edges (fund_id, mgmt_id, le_id) are not updatable.
type UpdateFundRequest struct {
	FundCode     *string `json:"fund_code,omitempty"`
	FundName     *string `json:"fund_name,omitempty"`
	FundType     *string `json:"fund_type,omitempty"`
	BaseCurrency *string `json:"base_currency,omitempty"`
	Domicile     *string `json:"domicile,omitempty"`
	ISINMaster   *string `json:"isin_master,omitempty"`
	Status       *string `json:"status,omitempty"`
}

// SearchFilters are the supported fund search criteria.
// fund_type, status and mgmt_id match exactly; fund_code and isin
// match as case-insensitive substrings. Empty values mean "not filtered".
type SearchFilters struct {
	FundType string
	Status   string
	MgmtID   string
	FundCode string
	ISIN     string
}

// ListResponse is the paginated fund list envelope
type ListResponse struct {
	Funds      []refdata.Fund `json:"funds"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}
