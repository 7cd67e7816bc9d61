package utils

import (
	"github.com/gin-gonic/gin"
)

// FormResponse is the body returned by the form submission endpoints.
type FormResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Warning string `json:"warning,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SuccessResponse sends an accepted-form response.
func SuccessResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, FormResponse{
		Success: true,
		Message: message,
	})
}

// WarningResponse sends an accepted-form response annotated with a warning.
func WarningResponse(c *gin.Context, statusCode int, message, warning string) {
	c.JSON(statusCode, FormResponse{
		Success: true,
		Message: message,
		Warning: warning,
	})
}

// ErrorResponse sends a rejected-form response. detail is omitted when empty.
func ErrorResponse(c *gin.Context, statusCode int, message string, detail ...string) {
	response := FormResponse{
		Success: false,
		Message: message,
	}
	if len(detail) > 0 {
		response.Error = detail[0]
	}
	c.JSON(statusCode, response)
}
