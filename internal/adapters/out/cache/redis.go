// Package cache stores dashboard read models in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient connects to Redis and pings it, retrying a few times while
// the server starts.
func NewRedisClient(ctx context.Context, opts Options, log *zap.Logger) (*redis.Client, error) {
	log = log.With(zap.String("addr", opts.Addr), zap.Int("db", opts.DB))

	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	var err error
	for i := range 5 {
		if err = rdb.Ping(ctx).Err(); err == nil {
			log.Info("connected to redis")
			return rdb, nil
		}
		log.Warn("redis not ready, retrying", zap.Int("retry", i+1), zap.Error(err))

		select {
		case <-ctx.Done():
			_ = rdb.Close()
			return nil, ctx.Err()
		case <-time.After(time.Second):
		}
	}

	_ = rdb.Close()
	return nil, fmt.Errorf("redis %s: %w", opts.Addr, err)
}

// RedisStatsCache keeps values as JSON under their key with a TTL.
type RedisStatsCache struct {
	rdb *redis.Client
}

func NewRedisStatsCache(rdb *redis.Client) *RedisStatsCache {
	return &RedisStatsCache{rdb: rdb}
}

// Get decodes the value stored under key into dest. A missing key is a miss,
// not an error.
func (c *RedisStatsCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err = json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisStatsCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return c.rdb.Set(ctx, key, raw, ttl).Err()
}

func (c *RedisStatsCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// Ping reports whether Redis answers; used by the readiness probe.
func (c *RedisStatsCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}
