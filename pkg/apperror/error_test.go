package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	e := New(http.StatusNotFound, "not_found", "Fund not found")
	assert.Equal(t, "not_found: Fund not found", e.Error())

	wrapped := e.WithInternal(errors.New("no rows"))
	assert.Equal(t, "not_found: Fund not found (no rows)", wrapped.Error())
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("SQLSTATE 23505")
	e := ErrConflict.WithInternal(inner)
	assert.ErrorIs(t, e, inner)
}

func TestError_WithCopiesDoNotMutate(t *testing.T) {
	base := New(http.StatusBadRequest, "validation_error", "Validation failed")

	withMsg := base.WithMessage("fund_type must be one of UCITS, AIF, ETF, MUTUAL_FUND, HEDGE_FUND")
	withDet := base.WithDetails(map[string]any{"fund_type": "unknown value"})

	assert.Equal(t, "Validation failed", base.Message)
	assert.Nil(t, base.Details)
	assert.Equal(t, base.Code, withMsg.Code)
	assert.NotEqual(t, base.Message, withMsg.Message)
	assert.Equal(t, "unknown value", withDet.Details["fund_type"])
}

func TestTaxonomyStatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		status int
		code   string
	}{
		{"not found", ErrNotFound, http.StatusNotFound, "not_found"},
		{"conflict", ErrConflict, http.StatusConflict, "conflict"},
		{"validation", ErrValidation, http.StatusBadRequest, "validation_error"},
		{"dependency not found", ErrDependencyNotFound, http.StatusBadRequest, "dependency_not_found"},
		{"bad request", ErrBadRequest, http.StatusBadRequest, "bad_request"},
		{"database", ErrDatabase, http.StatusInternalServerError, "database_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestConstructors(t *testing.T) {
	nf := NewNotFound("Fund", "F000042")
	assert.Equal(t, http.StatusNotFound, nf.HTTPStatus)
	assert.Equal(t, "Fund 'F000042' not found", nf.Message)

	dep := NewDependencyNotFound("ManagementEntity", "MG999999")
	assert.Equal(t, http.StatusBadRequest, dep.HTTPStatus)
	assert.Equal(t, "dependency_not_found", dep.Code)

	val := NewValidation("Validation failed", map[string]any{"status": "must be one of ACTIVE, CLOSED, SUSPENDED"})
	assert.Equal(t, "validation_error", val.Code)
	assert.Len(t, val.Details, 1)

	conf := NewConflict("Fund with code 'FUND999' already exists")
	assert.Equal(t, http.StatusConflict, conf.HTTPStatus)
}
