package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
	"github.com/njprem/Holiday_planner_BackEnd/internal/repository/ports"
)

func NewClient(addr, password string, db int) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// SuggestionCache stores suggestion lists as JSON under the planner's cache keys.
type SuggestionCache struct {
	client goredis.Cmdable
}

var _ ports.SuggestionCache = (*SuggestionCache)(nil)

func NewSuggestionCache(client goredis.Cmdable) *SuggestionCache {
	return &SuggestionCache{client: client}
}

func (c *SuggestionCache) Get(ctx context.Context, key string) (*domain.SuggestionList, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var list domain.SuggestionList
	if err := json.Unmarshal(raw, &list); err != nil {
		// A stale or foreign payload is treated as a miss and overwritten later.
		return nil, false, nil
	}
	return &list, true, nil
}

func (c *SuggestionCache) Set(ctx context.Context, key string, list *domain.SuggestionList, ttl time.Duration) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, ttl).Err()
}
