package routes

import (
	"github.com/gin-gonic/gin"

	"obleafusion/internal/interfaces/http/handlers"
	"obleafusion/internal/interfaces/http/middleware"
)

type FormRouteConfig struct {
	FormHandler *handlers.FormHandler
	// RateLimiter is nil when rate limiting is disabled.
	RateLimiter *middleware.RateLimiter
}

// SetupFormRoutes registers the form submission endpoints under router.
func SetupFormRoutes(router gin.IRouter, config *FormRouteConfig) {
	forms := router.Group("/email")
	if config.RateLimiter != nil {
		forms.Use(config.RateLimiter.Limit())
	}
	{
		forms.POST("/booking", config.FormHandler.SubmitBooking)
		forms.POST("/contact", config.FormHandler.SubmitContact)
	}
}
