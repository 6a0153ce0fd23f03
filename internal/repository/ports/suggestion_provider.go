package ports

import (
	"context"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
)

type SuggestionProvider interface {
	Suggest(ctx context.Context, location string, category domain.Category) (*domain.SuggestionList, error)
}
