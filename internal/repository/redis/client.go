package redis

import (
	"context"
	"time"

	"github.com/iamasit07/connect4-engine/internal/config"
	"github.com/iamasit07/connect4-engine/internal/logger"
	"github.com/redis/go-redis/v9"
)

// InitRedis connects to Redis when REDIS_URL is set. A missing or unreachable
// server is not fatal: the engine simply searches every position itself.
func InitRedis(cfg *config.Config) (*redis.Client, bool) {
	log := logger.Component("redis")
	if cfg.RedisURL == "" {
		log.Info().Msg("REDIS_URL not set, move cache disabled")
		return nil, false
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("could not connect to Redis, falling back to uncached search")
		client.Close()
		return nil, false
	}

	log.Info().Str("addr", cfg.RedisURL).Msg("connected")
	return client, true
}

// CacheRepository is the subset of Redis the move cache needs.
type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

// RedisCache acts as a wrapper around redis.Client to implement CacheRepository interface
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new RedisCache instance
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Set stores a key-value pair with expiration
func (r *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value by key
func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

// Del deletes keys
func (r *RedisCache) Del(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}
