package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/neal92/ServiceBooking-sub000/internal/models"
)

const (
	servicesKey = "catalog:services"
	catalogTTL  = 5 * time.Minute
)

// Catalog is a read-through cache for the public service list. Every
// operation is fail-open: a redis error is logged and the caller falls
// back to the database. A nil client disables the cache entirely.
type Catalog struct {
	rdb *redis.Client
	log zerolog.Logger
}

func NewCatalog(rdb *redis.Client, log zerolog.Logger) *Catalog {
	return &Catalog{rdb: rdb, log: log}
}

func (c *Catalog) GetServices(ctx context.Context) ([]models.Service, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, servicesKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Msg("catalog cache read failed")
		}
		return nil, false
	}

	var services []models.Service
	if err := json.Unmarshal(raw, &services); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache entry corrupt, dropping")
		c.Invalidate(ctx)
		return nil, false
	}

	return services, true
}

func (c *Catalog) SetServices(ctx context.Context, services []models.Service) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(services)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, servicesKey, raw, catalogTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache write failed")
	}
}

// Invalidate drops the cached list. Called after every service or
// category mutation.
func (c *Catalog) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, servicesKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
