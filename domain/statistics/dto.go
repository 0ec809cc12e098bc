package statistics

// TypeCount is one slice of the fund type distribution, shaped for
// chart components (name/value pairs)
type TypeCount struct {
	Name  string `bun:"name" json:"name"`
	Value int    `bun:"value" json:"value"`
}

// StatusCount is a status bucket row scanned from a GROUP BY
type StatusCount struct {
	Status string `bun:"status"`
	Count  int    `bun:"count"`
}

// FundStatistics aggregates the fund catalog for dashboard display
type FundStatistics struct {
	TotalFunds      int            `json:"total_funds"`
	ActiveFunds     int            `json:"active_funds"`
	InactiveFunds   int            `json:"inactive_funds"`
	StatusBreakdown map[string]int `json:"status_breakdown"`
	FundsByType     []TypeCount    `json:"funds_by_type"`
}

// ManagementStatistics aggregates the management entity catalog
type ManagementStatistics struct {
	TotalManagementEntities int            `json:"total_management_entities"`
	StatusBreakdown         map[string]int `json:"status_breakdown"`
}

// DashboardStatistics is the union of fund and management aggregates,
// fetched in one call. The management breakdown keeps its own key so
// neither breakdown shadows the other.
type DashboardStatistics struct {
	TotalFunds                int            `json:"total_funds"`
	ActiveFunds               int            `json:"active_funds"`
	InactiveFunds             int            `json:"inactive_funds"`
	StatusBreakdown           map[string]int `json:"status_breakdown"`
	FundsByType               []TypeCount    `json:"funds_by_type"`
	TotalManagementEntities   int            `json:"total_management_entities"`
	ManagementStatusBreakdown map[string]int `json:"management_status_breakdown"`
}
