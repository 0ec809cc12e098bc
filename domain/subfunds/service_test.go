package subfunds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrefdata/fundref/domain/refdata"
)

func strPtr(s string) *string { return &s }

func TestValidateCreate_ParentXOR(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateSubFundRequest
		wantErr bool
	}{
		{
			name:    "fund parent only is valid",
			req:     CreateSubFundRequest{ParentFundID: strPtr("F000001")},
			wantErr: false,
		},
		{
			name:    "subfund parent only is valid",
			req:     CreateSubFundRequest{ParentSubFundID: strPtr("SF000001")},
			wantErr: false,
		},
		{
			name:    "no parent is rejected",
			req:     CreateSubFundRequest{},
			wantErr: true,
		},
		{
			name: "both parents is rejected",
			req: CreateSubFundRequest{
				ParentFundID:    strPtr("F000001"),
				ParentSubFundID: strPtr("SF000001"),
			},
			wantErr: true,
		},
		{
			name:    "blank fund parent counts as absent",
			req:     CreateSubFundRequest{ParentFundID: strPtr("  ")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCreate(&tt.req)
			if tt.wantErr {
				require.NotNil(t, err)
				assert.Equal(t, "validation_error", err.Code)
				assert.Contains(t, err.Details, "parent")
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestValidateCreate_Status(t *testing.T) {
	t.Run("defaults to ACTIVE", func(t *testing.T) {
		req := CreateSubFundRequest{ParentFundID: strPtr("F000001")}
		require.Nil(t, validateCreate(&req))
		assert.Equal(t, refdata.StatusActive, req.Status)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		req := CreateSubFundRequest{ParentFundID: strPtr("F000001"), Status: "DORMANT"}
		err := validateCreate(&req)
		require.NotNil(t, err)
		assert.Contains(t, err.Details, "status")
	})
}

func TestValidateCreate_BlankParentNormalizedToNil(t *testing.T) {
	req := CreateSubFundRequest{
		ParentFundID:    strPtr("F000001"),
		ParentSubFundID: strPtr(""),
	}
	require.Nil(t, validateCreate(&req))
	assert.Nil(t, req.ParentSubFundID)
	require.NotNil(t, req.ParentFundID)
	assert.Equal(t, "F000001", *req.ParentFundID)
}
