package routes

import (
	"github.com/gin-gonic/gin"

	"obleafusion/internal/infrastructure/metrics"
	"obleafusion/internal/interfaces/http/handlers"
)

type SystemRouteConfig struct {
	SystemHandler *handlers.SystemHandler
	// Metrics is nil when the exposition endpoint is disabled.
	Metrics     *metrics.Metrics
	MetricsPath string
}

func SetupSystemRoutes(engine *gin.Engine, config *SystemRouteConfig) {
	engine.GET("/healthz", config.SystemHandler.HealthCheck)
	engine.GET("/version", config.SystemHandler.Version)

	if config.Metrics != nil && config.MetricsPath != "" {
		engine.GET(config.MetricsPath, gin.WrapH(config.Metrics.Handler()))
	}
}
