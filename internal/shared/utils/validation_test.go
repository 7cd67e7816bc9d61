package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"obleafusion/internal/shared/errors"
)

type sampleForm struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Notes string `json:"notes" validate:"max=5"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(sampleForm{Name: "Ana", Email: "ana@x.com"}))
	})

	t.Run("missing fields use json names", func(t *testing.T) {
		err := ValidateStruct(sampleForm{Notes: "toolong"})
		require.Error(t, err)

		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
		assert.Contains(t, appErr.Details, "name is required")
		assert.Contains(t, appErr.Details, "email is required")
		assert.Contains(t, appErr.Details, "notes must be at most 5 characters long")
	})
}
