// Package cache is a read-through cache for catalog listings.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
)

const (
	PrefixBarbers  = "barbers:"
	PrefixServices = "services:"
	PrefixGallery  = "gallery:"

	keyspace = "barbershop:"
)

type Cache interface {
	// Get reports false on a miss.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	InvalidatePrefix(ctx context.Context, prefix string) error
}

type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedis(ctx context.Context, url string, ttl time.Duration) (*RedisCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisCache{rdb: rdb, ttl: ttl}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.rdb.Get(ctx, keyspace+key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyspace+key, raw, c.ttl).Err()
}

// InvalidatePrefix walks the keyspace with SCAN so large catalogs never
// block the server with KEYS.
func (c *RedisCache) InvalidatePrefix(ctx context.Context, prefix string) error {
	iter := c.rdb.Scan(ctx, 0, keyspace+prefix+"*", 100).Iterator()

	var batch []string
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == 100 {
			if err := c.rdb.Del(ctx, batch...).Err(); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		return c.rdb.Del(ctx, batch...).Err()
	}
	return nil
}

func (c *RedisCache) Close() error {
	return c.rdb.Close()
}

// Nop is used when no Redis is configured.
type Nop struct{}

func (Nop) Get(context.Context, string, any) (bool, error) { return false, nil }
func (Nop) Set(context.Context, string, any) error         { return nil }
func (Nop) InvalidatePrefix(context.Context, string) error { return nil }

// Remember serves key from c, loading and storing it on a miss. Cache
// failures are logged and never fail the read.
func Remember[T any](ctx context.Context, c Cache, key string, load func() (T, error)) (T, error) {
	var cached T
	hit, err := c.Get(ctx, key, &cached)
	if err != nil {
		slog.WarnContext(ctx, "cache read failed", slog.String("key", key), slog.Any("err", err))
	}
	if hit {
		return cached, nil
	}

	fresh, err := load()
	if err != nil {
		return fresh, err
	}

	if err := c.Set(ctx, key, fresh); err != nil {
		slog.WarnContext(ctx, "cache write failed", slog.String("key", key), slog.Any("err", err))
	}
	return fresh, nil
}

// Invalidate drops every prefix, logging failures.
func Invalidate(ctx context.Context, c Cache, prefixes ...string) {
	for _, p := range prefixes {
		if err := c.InvalidatePrefix(ctx, p); err != nil {
			slog.WarnContext(ctx, "cache invalidation failed", slog.String("prefix", p), slog.Any("err", err))
		}
	}
}
