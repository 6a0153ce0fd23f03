package ports

import (
	"context"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
)

type HotelRepository interface {
	List(ctx context.Context, filter domain.HotelFilter) ([]domain.Hotel, error)
	FindByID(ctx context.Context, id string) (*domain.Hotel, error)
}
