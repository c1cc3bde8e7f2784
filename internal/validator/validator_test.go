package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	ierr "github.com/hourbill/hourbill/internal/errors"
)

func TestValidateRequestUninitialized(t *testing.T) {
	validate = nil

	type req struct {
		Name string `validate:"required"`
	}
	err := ValidateRequest(&req{Name: "x"})
	assert.Error(t, err)
	assert.False(t, ierr.IsValidation(err))
}

func TestValidateRequest(t *testing.T) {
	NewValidator()

	type req struct {
		Name string `validate:"required"`
	}

	err := ValidateRequest(&req{})
	assert.Error(t, err)
	assert.True(t, ierr.IsValidation(err))

	assert.NoError(t, ValidateRequest(&req{Name: "x"}))
	assert.NotNil(t, GetValidator())
}
