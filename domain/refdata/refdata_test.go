package refdata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumValidation(t *testing.T) {
	tests := []struct {
		name  string
		check func(string) bool
		value string
		want  bool
	}{
		{"valid fund type", IsValidFundType, "UCITS", true},
		{"valid fund type hedge", IsValidFundType, "HEDGE_FUND", true},
		{"invalid fund type lowercase", IsValidFundType, "ucits", false},
		{"invalid fund type", IsValidFundType, "PENSION", false},
		{"empty fund type", IsValidFundType, "", false},
		{"valid status", IsValidStatus, "ACTIVE", true},
		{"valid status closed", IsValidStatus, "CLOSED", true},
		{"invalid status", IsValidStatus, "LIQUIDATED", false},
		{"valid distribution", IsValidDistribution, "ACCUMULATING", true},
		{"valid distribution drip", IsValidDistribution, "DRIP", true},
		{"invalid distribution", IsValidDistribution, "REINVEST", false},
		{"valid entity type", IsValidEntityType, "MANAGER", true},
		{"invalid entity type", IsValidEntityType, "BROKER", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.value))
		})
	}
}

func TestClampDepth(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		want  int
	}{
		{"zero falls back to default", 0, DefaultDepth},
		{"negative falls back to default", -2, DefaultDepth},
		{"one", 1, 1},
		{"in range", 5, 5},
		{"at cap", 10, 10},
		{"above cap clamped", 50, MaxDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampDepth(tt.depth))
		})
	}
}

func TestSubFundProperties_ParentKeys(t *testing.T) {
	parentFund := "F000001"
	parentSub := "SF000002"

	t.Run("fund parent", func(t *testing.T) {
		props := SubFundProperties(&SubFund{SubFundID: "SF000001", ParentFundID: &parentFund})
		assert.Equal(t, "F000001", props["parent_fund_id"])
		assert.NotContains(t, props, "parent_subfund_id")
	})

	t.Run("subfund parent", func(t *testing.T) {
		props := SubFundProperties(&SubFund{SubFundID: "SF000003", ParentSubFundID: &parentSub})
		assert.Equal(t, "SF000002", props["parent_subfund_id"])
		assert.NotContains(t, props, "parent_fund_id")
	})
}

func TestFundNode(t *testing.T) {
	f := &Fund{
		FundID:   "F000001",
		FundCode: "FUND001",
		FundName: "Global Equity Fund",
		FundType: "UCITS",
		Status:   "ACTIVE",
		MgmtID:   "MG000001",
	}

	node := FundNode(f, 0)

	assert.Equal(t, "F000001", node.NodeID)
	assert.Equal(t, NodeTypeFund, node.NodeType)
	assert.Equal(t, 0, node.Depth)
	assert.Equal(t, "FUND001", node.Properties["fund_code"])
	assert.Equal(t, "UCITS", node.Properties["fund_type"])
}

func TestContainsErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			code: "23505",
			want: false,
		},
		{
			name: "error contains code directly",
			err:  errors.New("ERROR: duplicate key value violates unique constraint (23505)"),
			code: "23505",
			want: true,
		},
		{
			name: "error contains SQLSTATE prefix",
			err:  errors.New("ERROR: SQLSTATE 23505 duplicate key value"),
			code: "23505",
			want: true,
		},
		{
			name: "error does not contain code",
			err:  errors.New("some other error"),
			code: "23505",
			want: false,
		},
		{
			name: "empty error message",
			err:  errors.New(""),
			code: "23505",
			want: false,
		},
		{
			name: "foreign key violation code",
			err:  errors.New("ERROR: insert or update violates foreign key constraint SQLSTATE 23503"),
			code: "23503",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, containsErrorCode(tt.err, tt.code))
		})
	}
}

func TestPostgresErrorCodes(t *testing.T) {
	assert.True(t, IsUniqueViolation(errors.New("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)")))
	assert.False(t, IsUniqueViolation(errors.New("ERROR: violates foreign key constraint (SQLSTATE 23503)")))
	assert.True(t, IsForeignKeyViolation(errors.New("ERROR: violates foreign key constraint (SQLSTATE 23503)")))
	assert.False(t, IsForeignKeyViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
}
