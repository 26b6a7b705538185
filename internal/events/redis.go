package events

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis and verifies the connection.
// Returned errors never contain the password from redisURL.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, redactError("failed to parse Redis URL", err, redisURL)
	}

	opt.PoolSize = 10
	opt.MinIdleConns = 1
	opt.PoolTimeout = 4 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, redactError("failed to ping Redis at", err, redisURL)
	}

	return client, nil
}

// RedisPinger adapts a Redis client to the readiness check interface.
type RedisPinger struct {
	client *redis.Client
}

// NewRedisPinger wraps client.
func NewRedisPinger(client *redis.Client) *RedisPinger {
	return &RedisPinger{client: client}
}

// Ping checks Redis connectivity.
func (p *RedisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
