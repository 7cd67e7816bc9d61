package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("missing fields", "name is required"), ErrorTypeValidation, http.StatusBadRequest},
		{"bad request", NewBadRequestError("malformed body"), ErrorTypeBadRequest, http.StatusBadRequest},
		{"too many requests", NewTooManyRequestsError("slow down"), ErrorTypeTooManyRequests, http.StatusTooManyRequests},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestAppErrorMessage(t *testing.T) {
	assert.Equal(t, "validation_error: missing fields (name is required)",
		NewValidationError("missing fields", "name is required").Error())
	assert.Equal(t, "internal_error: boom", NewInternalError("boom").Error())
}

func TestGetAppErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("booking: %w", NewValidationError("missing fields"))

	assert.True(t, IsAppError(wrapped))
	assert.True(t, IsValidationError(wrapped))
	assert.Equal(t, ErrorTypeValidation, GetAppError(wrapped).Type)

	plain := fmt.Errorf("template failed")
	assert.False(t, IsAppError(plain))
	assert.False(t, IsValidationError(plain))
	assert.Nil(t, GetAppError(plain))
}
