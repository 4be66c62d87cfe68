// Package cache provides a small read-through JSON cache on top of Redis.
// A nil *Cache, or one built without a reachable server, simply calls the
// loader every time.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"event-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisCache connects to cfg.Addr. It returns nil when caching is
// disabled or the server cannot be reached at startup.
func NewRedisCache(cfg utils.RedisConfig, log *zap.Logger) *Cache {
	if cfg.Addr == "" {
		log.Info("Redis cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, caching disabled", zap.String("addr", cfg.Addr), zap.Error(err))
		_ = client.Close()
		return nil
	}

	return New(client, cfg.TTL, log)
}

func New(client *redis.Client, ttl time.Duration, log *zap.Logger) *Cache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Cache{
		client: client,
		ttl:    ttl,
		log:    log.With(zap.String("component", "cache")),
	}
}

func (c *Cache) enabled() bool {
	return c != nil && c.client != nil
}

func (c *Cache) Close() error {
	if !c.enabled() {
		return nil
	}
	return c.client.Close()
}

// Remember returns the cached value under key or stores the result of load.
// Entries are only dropped by their TTL, so cache nothing the API writes.
// Cache failures never fail the call.
func Remember[T any](ctx context.Context, c *Cache, key string, load func(context.Context) (T, error)) (T, error) {
	if !c.enabled() {
		return load(ctx)
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		c.log.Warn("Cache entry corrupt, reloading", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.log.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if payload, err := json.Marshal(value); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.log.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return value, nil
}
