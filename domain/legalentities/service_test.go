package legalentities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := CreateLegalEntityRequest{
			LEI:       "529900T8BM49AURSDO55",
			LegalName: "Nordic Asset Management AB",
		}
		assert.Nil(t, validateCreate(&req))
	})

	t.Run("fields are trimmed", func(t *testing.T) {
		req := CreateLegalEntityRequest{
			LEID:      " LE000007 ",
			LEI:       " 529900T8BM49AURSDO55 ",
			LegalName: " Nordic Asset Management AB ",
		}
		require.Nil(t, validateCreate(&req))
		assert.Equal(t, "LE000007", req.LEID)
		assert.Equal(t, "529900T8BM49AURSDO55", req.LEI)
		assert.Equal(t, "Nordic Asset Management AB", req.LegalName)
	})

	t.Run("missing lei rejected", func(t *testing.T) {
		req := CreateLegalEntityRequest{LegalName: "Nordic Asset Management AB"}
		err := validateCreate(&req)
		require.NotNil(t, err)
		assert.Equal(t, "validation_error", err.Code)
		assert.Contains(t, err.Details, "lei")
	})

	t.Run("missing legal_name rejected", func(t *testing.T) {
		req := CreateLegalEntityRequest{LEI: "529900T8BM49AURSDO55"}
		err := validateCreate(&req)
		require.NotNil(t, err)
		assert.Contains(t, err.Details, "legal_name")
	})

	t.Run("invalid entity_type rejected", func(t *testing.T) {
		req := CreateLegalEntityRequest{
			LEI:        "529900T8BM49AURSDO55",
			LegalName:  "Nordic Asset Management AB",
			EntityType: "BOGUS_TYPE",
		}
		err := validateCreate(&req)
		require.NotNil(t, err)
		assert.Equal(t, "validation_error", err.Code)
		assert.Contains(t, err.Details, "entity_type")
	})

	t.Run("valid entity_type accepted", func(t *testing.T) {
		req := CreateLegalEntityRequest{
			LEI:        "529900T8BM49AURSDO55",
			LegalName:  "Nordic Asset Management AB",
			EntityType: "MANAGER",
		}
		assert.Nil(t, validateCreate(&req))
	})

	t.Run("blank entity_type accepted", func(t *testing.T) {
		req := CreateLegalEntityRequest{
			LEI:       "529900T8BM49AURSDO55",
			LegalName: "Nordic Asset Management AB",
		}
		assert.Nil(t, validateCreate(&req))
	})

	t.Run("blank everything reports both fields", func(t *testing.T) {
		req := CreateLegalEntityRequest{LEI: "   ", LegalName: "   "}
		err := validateCreate(&req)
		require.NotNil(t, err)
		assert.Len(t, err.Details, 2)
	})
}
