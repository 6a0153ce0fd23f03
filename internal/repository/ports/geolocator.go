package ports

import (
	"context"

	"github.com/njprem/Holiday_planner_BackEnd/internal/domain"
)

type Geolocator interface {
	Locate(ctx context.Context, ip string) (*domain.IPLocation, error)
}
