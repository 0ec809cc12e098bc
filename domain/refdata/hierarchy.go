package refdata

// Hierarchy node type labels
const (
	NodeTypeFund    = "Fund"
	NodeTypeSubFund = "SubFund"
)

// Hierarchy traversal depth bounds. Depth counts hops from the root.
const (
	DefaultDepth = 1
	MaxDepth     = 10
)

// ClampDepth normalizes a requested traversal depth into [1, MaxDepth].
// Zero or negative values fall back to the default.
func ClampDepth(depth int) int {
	if depth < 1 {
		return DefaultDepth
	}
	if depth > MaxDepth {
		return MaxDepth
	}
	return depth
}

// HierarchyNode is one node in a hierarchy traversal response
type HierarchyNode struct {
	NodeID     string         `json:"node_id"`
	NodeType   string         `json:"node_type"`
	Depth      int            `json:"depth,omitempty"`
	Properties map[string]any `json:"properties"`
}

// HierarchyResponse wraps a traversal from a root node
type HierarchyResponse struct {
	Root     HierarchyNode   `json:"root"`
	Children []HierarchyNode `json:"children"`
	Parents  []HierarchyNode `json:"parents"`
	Depth    int             `json:"depth"`
}

// FundProperties flattens a fund into hierarchy node properties
func FundProperties(f *Fund) map[string]any {
	return map[string]any{
		"fund_id":       f.FundID,
		"fund_code":     f.FundCode,
		"fund_name":     f.FundName,
		"fund_type":     f.FundType,
		"base_currency": f.BaseCurrency,
		"domicile":      f.Domicile,
		"isin_master":   f.ISINMaster,
		"status":        f.Status,
		"mgmt_id":       f.MgmtID,
		"le_id":         f.LEID,
	}
}

// SubFundProperties flattens a sub-fund into hierarchy node properties
func SubFundProperties(sf *SubFund) map[string]any {
	props := map[string]any{
		"subfund_id": sf.SubFundID,
		"isin_sub":   sf.ISINSub,
		"currency":   sf.Currency,
		"status":     sf.Status,
		"mgmt_id":    sf.MgmtID,
		"le_id":      sf.LEID,
	}
	if sf.ParentFundID != nil {
		props["parent_fund_id"] = *sf.ParentFundID
	}
	if sf.ParentSubFundID != nil {
		props["parent_subfund_id"] = *sf.ParentSubFundID
	}
	return props
}

// FundNode builds a hierarchy node for a fund at the given depth
func FundNode(f *Fund, depth int) HierarchyNode {
	return HierarchyNode{
		NodeID:     f.FundID,
		NodeType:   NodeTypeFund,
		Depth:      depth,
		Properties: FundProperties(f),
	}
}

// SubFundNode builds a hierarchy node for a sub-fund at the given depth
func SubFundNode(sf *SubFund, depth int) HierarchyNode {
	return HierarchyNode{
		NodeID:     sf.SubFundID,
		NodeType:   NodeTypeSubFund,
		Depth:      depth,
		Properties: SubFundProperties(sf),
	}
}
