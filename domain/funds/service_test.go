package funds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrefdata/fundref/domain/refdata"
)

func TestValidateCreate(t *testing.T) {
	valid := CreateFundRequest{
		FundCode:     "FUND001",
		FundName:     "Global Equity Fund",
		FundType:     "UCITS",
		BaseCurrency: "EUR",
		Domicile:     "LU",
		ISINMaster:   "LU0000000001",
		MgmtID:       "MG000001",
		LEID:         "LE000001",
	}

	t.Run("valid request passes, status defaults to ACTIVE", func(t *testing.T) {
		req := valid
		err := validateCreate(&req)
		require.Nil(t, err)
		assert.Equal(t, refdata.StatusActive, req.Status)
	})

	t.Run("explicit status kept", func(t *testing.T) {
		req := valid
		req.Status = "SUSPENDED"
		require.Nil(t, validateCreate(&req))
		assert.Equal(t, "SUSPENDED", req.Status)
	})

	t.Run("fund_code and fund_name are trimmed", func(t *testing.T) {
		req := valid
		req.FundCode = "  FUND999  "
		req.FundName = " Emerging Markets "
		require.Nil(t, validateCreate(&req))
		assert.Equal(t, "FUND999", req.FundCode)
		assert.Equal(t, "Emerging Markets", req.FundName)
	})

	tests := []struct {
		name        string
		mutate      func(*CreateFundRequest)
		detailField string
	}{
		{"blank fund_code", func(r *CreateFundRequest) { r.FundCode = "  " }, "fund_code"},
		{"blank fund_name", func(r *CreateFundRequest) { r.FundName = "" }, "fund_name"},
		{"missing mgmt_id", func(r *CreateFundRequest) { r.MgmtID = "" }, "mgmt_id"},
		{"missing le_id", func(r *CreateFundRequest) { r.LEID = "" }, "le_id"},
		{"invalid fund_type", func(r *CreateFundRequest) { r.FundType = "PENSION" }, "fund_type"},
		{"empty fund_type", func(r *CreateFundRequest) { r.FundType = "" }, "fund_type"},
		{"invalid status", func(r *CreateFundRequest) { r.Status = "LIQUIDATED" }, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := validateCreate(&req)
			require.NotNil(t, err)
			assert.Equal(t, 400, err.HTTPStatus)
			assert.Equal(t, "validation_error", err.Code)
			assert.Contains(t, err.Details, tt.detailField)
		})
	}
}
