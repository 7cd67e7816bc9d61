package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"obleafusion/internal/infrastructure/config"
	"obleafusion/internal/interfaces/http/middleware"
	"obleafusion/internal/interfaces/http/routes"
	"obleafusion/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(cfg *config.Config, log logger.Interface, opts ...Option) *Router {
	return &Router{Container: NewContainer(cfg, log, opts...)}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.Metrics(r.metrics))

	routes.SetupSystemRoutes(r.engine, &routes.SystemRouteConfig{
		SystemHandler: r.systemHandler,
		Metrics:       r.metrics,
		MetricsPath:   r.cfg.Metrics.Path,
	})

	formRoutes := &routes.FormRouteConfig{
		FormHandler: r.formHandler,
		RateLimiter: r.rateLimiter,
	}
	routes.SetupFormRoutes(r.engine, formRoutes)

	// Form clients have been deployed against both the bare and the
	// prefixed paths.
	if prefix := strings.TrimRight(r.cfg.Server.APIPrefix, "/"); prefix != "" {
		routes.SetupFormRoutes(r.engine.Group(prefix), formRoutes)
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
