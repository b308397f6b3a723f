package sessionstate

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisPrefix = "googleauth:session"

// Redis is a Store backed by Redis. Per-key TTLs bound each value to
// roughly one login attempt; Redis expiry replaces the janitor the
// in-memory store needs.
type Redis struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// RedisOption configures the Redis store.
type RedisOption func(*Redis)

// WithRedisPrefix sets the key prefix. Default: "googleauth:session".
func WithRedisPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		if prefix != "" {
			r.prefix = prefix
		}
	}
}

// WithRedisTTL sets the per-value TTL. Default: 30 minutes.
func WithRedisTTL(d time.Duration) RedisOption {
	return func(r *Redis) {
		if d > 0 {
			r.ttl = d
		}
	}
}

// NewRedis creates a Redis-backed session state store.
// The client should be obtained from pkg/redis.Open.
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	r := &Redis{
		client: client,
		prefix: defaultRedisPrefix,
		ttl:    defaultTTL,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Set stores a value with the configured TTL.
func (r *Redis) Set(ctx context.Context, sessionID, key, value string) error {
	return r.client.Set(ctx, r.redisKey(sessionID, key), value, r.ttl).Err()
}

// Get retrieves a value. Returns ErrNotFound for absent or expired keys.
func (r *Redis) Get(ctx context.Context, sessionID, key string) (string, error) {
	value, err := r.client.Get(ctx, r.redisKey(sessionID, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

// Remove deletes the given keys. Deleting absent keys is a no-op.
func (r *Redis) Remove(ctx context.Context, sessionID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	redisKeys := make([]string, len(keys))
	for i, key := range keys {
		redisKeys[i] = r.redisKey(sessionID, key)
	}
	return r.client.Del(ctx, redisKeys...).Err()
}

func (r *Redis) redisKey(sessionID, key string) string {
	return r.prefix + ":" + sessionID + ":" + key
}

var _ Store = (*Redis)(nil)
