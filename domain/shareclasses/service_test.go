package shareclasses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrefdata/fundref/domain/refdata"
)

func strPtr(s string) *string { return &s }

func TestValidateCreate_OwnerXOR(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateShareClassRequest
		wantErr bool
	}{
		{"fund owner only", CreateShareClassRequest{FundID: strPtr("F000001")}, false},
		{"subfund owner only", CreateShareClassRequest{SubFundID: strPtr("SF000001")}, false},
		{"no owner", CreateShareClassRequest{}, true},
		{"both owners", CreateShareClassRequest{FundID: strPtr("F000001"), SubFundID: strPtr("SF000001")}, true},
		{"blank owner counts as absent", CreateShareClassRequest{FundID: strPtr("")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCreate(&tt.req)
			if tt.wantErr {
				require.NotNil(t, err)
				assert.Equal(t, "validation_error", err.Code)
				assert.Contains(t, err.Details, "owner")
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestValidateCreate_Fields(t *testing.T) {
	t.Run("status defaults to ACTIVE", func(t *testing.T) {
		req := CreateShareClassRequest{FundID: strPtr("F000001")}
		require.Nil(t, validateCreate(&req))
		assert.Equal(t, refdata.StatusActive, req.Status)
	})

	t.Run("invalid distribution rejected", func(t *testing.T) {
		req := CreateShareClassRequest{FundID: strPtr("F000001"), Distribution: "REINVEST"}
		err := validateCreate(&req)
		require.NotNil(t, err)
		assert.Contains(t, err.Details, "distribution")
	})

	t.Run("valid distribution accepted", func(t *testing.T) {
		req := CreateShareClassRequest{FundID: strPtr("F000001"), Distribution: "INCOME"}
		assert.Nil(t, validateCreate(&req))
	})

	t.Run("negative fees rejected", func(t *testing.T) {
		req := CreateShareClassRequest{FundID: strPtr("F000001"), FeeMgmt: -0.5}
		err := validateCreate(&req)
		require.NotNil(t, err)
		assert.Contains(t, err.Details, "fees")
	})
}
