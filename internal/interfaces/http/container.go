package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"obleafusion/internal/application/notification"
	"obleafusion/internal/infrastructure/config"
	"obleafusion/internal/infrastructure/email"
	"obleafusion/internal/infrastructure/metrics"
	"obleafusion/internal/infrastructure/ratelimit"
	"obleafusion/internal/interfaces/http/handlers"
	"obleafusion/internal/interfaces/http/middleware"
	"obleafusion/internal/shared/logger"
	"obleafusion/internal/shared/services/markdown"
)

const redisPingTimeout = 5 * time.Second

// Container holds the infrastructure components, services and handlers of
// the HTTP server and wires them together.
type Container struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface

	// Infrastructure
	redis      *redis.Client
	ownsRedis  bool
	metrics    *metrics.Metrics
	transport  email.Transport
	markdown   markdown.MarkdownService
	limiterSvc ratelimit.RateLimiter

	// Application
	notificationService *notification.Service

	// Handlers and middlewares
	formHandler   *handlers.FormHandler
	systemHandler *handlers.SystemHandler
	rateLimiter   *middleware.RateLimiter
}

// Option overrides a container dependency before wiring.
type Option func(*Container)

// WithTransport replaces the SMTP transport built from configuration.
func WithTransport(transport email.Transport) Option {
	return func(c *Container) {
		c.transport = transport
	}
}

// WithRedisClient supplies the rate-limit Redis client. The caller keeps
// ownership and closes it.
func WithRedisClient(client *redis.Client) Option {
	return func(c *Container) {
		c.redis = client
	}
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(cfg *config.Config, log logger.Interface, opts ...Option) *Container {
	c := &Container{
		engine: gin.New(),
		cfg:    cfg,
		log:    log,
	}
	for _, opt := range opts {
		opt(c)
	}

	// Section 1: Infrastructure - metrics, rate limit backend, transport
	c.initInfrastructure()

	// Section 2: Notification - composer, gateway, service
	c.initNotification()

	// Section 3: Handlers and middlewares
	c.initHandlers()

	return c
}

func (c *Container) initInfrastructure() {
	cfg := c.cfg

	if cfg.Metrics.Enabled {
		c.metrics = metrics.New()
	}

	if cfg.RateLimit.Enabled {
		c.limiterSvc = c.newRateLimitBackend()
	}

	if c.transport == nil {
		c.transport = email.NewTransport(email.SMTPConfigFrom(cfg.Email), c.log)
	}

	c.markdown = markdown.NewMarkdownService()
}

// newRateLimitBackend prefers Redis when configured and reachable and falls
// back to in-process buckets otherwise.
func (c *Container) newRateLimitBackend() ratelimit.RateLimiter {
	rlCfg := ratelimit.RateLimitConfig{
		RequestsPerMinute: c.cfg.RateLimit.RequestsPerMinute,
		BurstSize:         c.cfg.RateLimit.Burst,
	}

	if c.cfg.RateLimit.Redis.Enabled {
		if c.redis == nil {
			c.redis = initRedis(c.cfg, c.log)
			c.ownsRedis = c.redis != nil
		}
		if c.redis != nil {
			c.log.Infow("rate limiting enabled", "backend", "redis", "requests_per_minute", rlCfg.RequestsPerMinute)
			return ratelimit.NewRedisRateLimiter(c.redis, rlCfg)
		}
	}

	c.log.Infow("rate limiting enabled", "backend", "local", "requests_per_minute", rlCfg.RequestsPerMinute)
	return ratelimit.NewLocalRateLimiter(rlCfg)
}

// initRedis creates and tests the Redis client connection. It returns nil
// when Redis cannot be reached.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	redisCfg := cfg.RateLimit.Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisCfg.GetAddr(),
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warnw("failed to connect to Redis, using in-process rate limiting",
			"addr", redisCfg.GetAddr(),
			"error", err,
		)
		_ = redisClient.Close()
		return nil
	}
	log.Infow("Redis connection established successfully", "addr", redisCfg.GetAddr())

	return redisClient
}

func (c *Container) initNotification() {
	cfg := c.cfg

	composer := notification.NewComposer(cfg.Email, cfg.Brand, c.markdown, c.log)
	gateway := notification.NewGateway(c.transport, c.metrics, c.log)
	c.notificationService = notification.NewService(composer, gateway, c.log)
}

func (c *Container) initHandlers() {
	c.formHandler = handlers.NewFormHandler(c.notificationService, c.log)
	c.systemHandler = handlers.NewSystemHandler()

	if c.limiterSvc != nil {
		c.rateLimiter = middleware.NewRateLimiter(c.limiterSvc, c.metrics, c.log)
	}
}

// Shutdown releases resources the container opened itself.
func (c *Container) Shutdown() {
	if c.redis != nil && c.ownsRedis {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close Redis client", "error", err)
		}
	}
}
