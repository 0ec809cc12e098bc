package shareclasses

import "github.com/openrefdata/fundref/domain/refdata"

// CreateShareClassRequest is the request body for creating a share class.
// Exactly one of fund_id / subfund_id must be set.
type CreateShareClassRequest struct {
	FundID       *string `json:"fund_id,omitempty"`
	SubFundID    *string `json:"subfund_id,omitempty"`
	ISINSC       string  `json:"isin_sc"`
	Currency     string  `json:"currency"`
	Distribution string  `json:"distribution"`
	FeeMgmt      float64 `json:"fee_mgmt"`
	PerfFee      float64 `json:"perf_fee"`
	ExpenseRatio float64 `json:"expense_ratio"`
	NAV          float64 `json:"nav"`
	AUM          float64 `json:"aum"`
	Status       string  `json:"status"`
}

// UpdateShareClassRequest is the request body for partially updating a
// share class. The key and owner edge are not updatable.
type UpdateShareClassRequest struct {
	ISINSC       *string  `json:"isin_sc,omitempty"`
	Currency     *string  `json:"currency,omitempty"`
	Distribution *string  `json:"distribution,omitempty"`
	FeeMgmt      *float64 `json:"fee_mgmt,omitempty"`
	PerfFee      *float64 `json:"perf_fee,omitempty"`
	ExpenseRatio *float64 `json:"expense_ratio,omitempty"`
	NAV          *float64 `json:"nav,omitempty"`
	AUM          *float64 `json:"aum,omitempty"`
	Status       *string  `json:"status,omitempty"`
}

// ListFilters are the supported share class list criteria
type ListFilters struct {
	Currency     string
	Distribution string
	Status       string
	FundID       string
	SubFundID    string
	ISIN         string
}

// ListResponse is the paginated share class list envelope
type ListResponse struct {
	ShareClasses []refdata.ShareClass `json:"share_classes"`
	Total        int                  `json:"total"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"page_size"`
	TotalPages   int                  `json:"total_pages"`
}
