package catalog

import (
	"context"

	"autoloco/internal/domain"
	"autoloco/internal/repository"
)

type VehicleRepository interface {
	List(ctx context.Context, f repository.ListFilter) ([]domain.Vehicle, error)
	Count(ctx context.Context, f repository.ListFilter) (int64, error)
}
