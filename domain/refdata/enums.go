package refdata

// Fund types
const (
	FundTypeUCITS      = "UCITS"
	FundTypeAIF        = "AIF"
	FundTypeETF        = "ETF"
	FundTypeMutualFund = "MUTUAL_FUND"
	FundTypeHedgeFund  = "HEDGE_FUND"
)

// Lifecycle statuses
const (
	StatusActive    = "ACTIVE"
	StatusClosed    = "CLOSED"
	StatusSuspended = "SUSPENDED"
)

// Distribution policies
const (
	DistributionAccumulating = "ACCUMULATING"
	DistributionIncome       = "INCOME"
	DistributionDRIP         = "DRIP"
)

// Entity types
const (
	EntityTypeManager = "MANAGER"
	EntityTypeFund    = "FUND"
	EntityTypeSubFund = "SUBFUND"
)

// FundTypes lists the accepted fund_type values in declaration order
func FundTypes() []string {
	return []string{FundTypeUCITS, FundTypeAIF, FundTypeETF, FundTypeMutualFund, FundTypeHedgeFund}
}

// Statuses lists the accepted status values
func Statuses() []string {
	return []string{StatusActive, StatusClosed, StatusSuspended}
}

// Distributions lists the accepted distribution values
func Distributions() []string {
	return []string{DistributionAccumulating, DistributionIncome, DistributionDRIP}
}

// EntityTypes lists the accepted entity_type values
func EntityTypes() []string {
	return []string{EntityTypeManager, EntityTypeFund, EntityTypeSubFund}
}

// IsValidFundType reports whether s is an accepted fund_type
func IsValidFundType(s string) bool {
	return contains(FundTypes(), s)
}

// IsValidStatus reports whether s is an accepted status
func IsValidStatus(s string) bool {
	return contains(Statuses(), s)
}

// IsValidDistribution reports whether s is an accepted distribution
func IsValidDistribution(s string) bool {
	return contains(Distributions(), s)
}

// IsValidEntityType reports whether s is an accepted entity_type
func IsValidEntityType(s string) bool {
	return contains(EntityTypes(), s)
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
