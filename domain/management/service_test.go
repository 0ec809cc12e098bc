package management

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrefdata/fundref/domain/refdata"
)

func TestValidateCreate(t *testing.T) {
	t.Run("minimal valid request", func(t *testing.T) {
		req := CreateManagementEntityRequest{LEID: "LE000001"}
		require.Nil(t, validateCreate(&req))
		assert.Equal(t, refdata.StatusActive, req.Status)
	})

	t.Run("explicit mgmt_id is kept", func(t *testing.T) {
		req := CreateManagementEntityRequest{MgmtID: " MG000031 ", LEID: "LE000001"}
		require.Nil(t, validateCreate(&req))
		assert.Equal(t, "MG000031", req.MgmtID)
	})

	t.Run("missing le_id rejected", func(t *testing.T) {
		req := CreateManagementEntityRequest{}
		err := validateCreate(&req)
		require.NotNil(t, err)
		assert.Equal(t, "validation_error", err.Code)
		assert.Contains(t, err.Details, "le_id")
	})

	t.Run("invalid entity_type rejected", func(t *testing.T) {
		req := CreateManagementEntityRequest{LEID: "LE000001", EntityType: "BROKER"}
		err := validateCreate(&req)
		require.NotNil(t, err)
		assert.Contains(t, err.Details, "entity_type")
	})

	t.Run("valid entity_type accepted", func(t *testing.T) {
		req := CreateManagementEntityRequest{LEID: "LE000001", EntityType: "MANAGER"}
		assert.Nil(t, validateCreate(&req))
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		req := CreateManagementEntityRequest{LEID: "LE000001", Status: "DISSOLVED"}
		err := validateCreate(&req)
		require.NotNil(t, err)
		assert.Contains(t, err.Details, "status")
	})
}
