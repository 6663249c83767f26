package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iamasit07/connect4-engine/internal/service/bot"
	"github.com/redis/go-redis/v9"
)

// MoveCache stores root search results as JSON under the engine's key.
type MoveCache struct {
	repo CacheRepository
	ttl  time.Duration
}

var _ bot.MoveCache = (*MoveCache)(nil)

func NewMoveCache(repo CacheRepository, ttl time.Duration) *MoveCache {
	return &MoveCache{repo: repo, ttl: ttl}
}

func (c *MoveCache) Get(ctx context.Context, key string) (bot.SearchResult, bool, error) {
	raw, err := c.repo.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return bot.SearchResult{}, false, nil
	}
	if err != nil {
		return bot.SearchResult{}, false, fmt.Errorf("failed to read cached move: %w", err)
	}

	var result bot.SearchResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		// a corrupt entry is dropped so the next search can replace it
		_ = c.repo.Del(ctx, key)
		return bot.SearchResult{}, false, fmt.Errorf("failed to decode cached move: %w", err)
	}
	return result, true, nil
}

func (c *MoveCache) Set(ctx context.Context, key string, result bot.SearchResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode move: %w", err)
	}
	if err := c.repo.Set(ctx, key, data, c.ttl); err != nil {
		return fmt.Errorf("failed to store move: %w", err)
	}
	return nil
}
