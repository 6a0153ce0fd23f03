package ports

import (
	"context"
	"time"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
)

// SuggestionCache reports a miss as (nil, false, nil).
type SuggestionCache interface {
	Get(ctx context.Context, key string) (*domain.SuggestionList, bool, error)
	Set(ctx context.Context, key string, list *domain.SuggestionList, ttl time.Duration) error
}
