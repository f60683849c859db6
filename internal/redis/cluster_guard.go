package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ClusterGuard hands out short-lived claims with SET NX.
type ClusterGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewClusterGuard(client *redis.Client, ttl time.Duration) *ClusterGuard {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &ClusterGuard{client: client, ttl: ttl}
}

// Acquire returns true for the first caller of key until the TTL expires.
func (g *ClusterGuard) Acquire(ctx context.Context, key string) (bool, error) {
	return g.client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), g.ttl).Result()
}
