// AngelaMos | 2026
// redis.go

package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/mentorax-api/internal/config"
)

const redisPingTimeout = 3 * time.Second

var ErrRedisDisabled = errors.New("redis not configured")

// Redis backs the distributed rate limiter. It is optional: every method is
// safe on a nil receiver, and a nil *Redis makes the limiter fall back to
// per-instance buckets.
type Redis struct {
	client *redis.Client
}

func NewRedis(ctx context.Context, cfg config.RedisConfig) (*Redis, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	opts.MinIdleConns = cfg.MinIdleConns
	opts.ConnMaxIdleTime = 5 * time.Minute

	r := &Redis{client: redis.NewClient(opts)}
	if err := r.Ping(ctx); err != nil {
		return nil, errors.Join(err, r.Close())
	}
	return r, nil
}

func (r *Redis) Client() *redis.Client {
	if r == nil {
		return nil
	}
	return r.client
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.Client() == nil {
		return ErrRedisDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (r *Redis) PoolStats() *redis.PoolStats {
	if r.Client() == nil {
		return nil
	}
	return r.client.PoolStats()
}

func (r *Redis) Close() error {
	if r.Client() == nil {
		return nil
	}
	return r.client.Close()
}
