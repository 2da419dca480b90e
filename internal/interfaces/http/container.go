package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hilla/internal/infrastructure/config"
	"hilla/internal/shared/logger"
)

// Container wires repositories, use cases, and handlers together and
// owns the shared clients that need graceful shutdown.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *useCases
	hdlrs *handlers
}

// NewContainer builds the full dependency graph for the HTTP surface.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		db:  db,
		cfg: cfg,
		log: log,
	}

	if cfg.Redis.Enabled {
		c.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	c.repos = newRepositories(db)
	c.ucs = newUseCases(c)
	c.hdlrs = newHandlers(c.ucs)
	c.engine = newEngine(cfg, log, c.hdlrs)

	return c
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases shared clients. The HTTP server itself is closed
// by the caller.
func (c *Container) Shutdown(ctx context.Context) error {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
	return nil
}
