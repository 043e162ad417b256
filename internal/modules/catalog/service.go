package catalog

import (
	"context"
	"fmt"

	"autoloco/internal/domain"
	"autoloco/internal/pkg/pagination"
	"autoloco/internal/repository"

	"golang.org/x/sync/errgroup"
)

type Service struct {
	vehicles VehicleRepository
}

func NewService(vehicles VehicleRepository) *Service {
	return &Service{vehicles: vehicles}
}

// SearchVehicles lists vehicles, optionally in one city (case-insensitive).
func (s *Service) SearchVehicles(ctx context.Context, city string, p pagination.Params) ([]VehicleView, int64, error) {
	f := repository.ListFilter{City: city}

	var (
		rows  []domain.Vehicle
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		page := f
		page.Limit, page.Offset = p.Limit, p.Offset()
		rows, err = s.vehicles.List(gctx, page)
		return err
	})
	g.Go(func() (err error) {
		total, err = s.vehicles.Count(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, fmt.Errorf("search vehicles: %w", err)
	}

	out := make([]VehicleView, 0, len(rows))
	for i := range rows {
		out = append(out, toVehicleView(&rows[i]))
	}
	return out, total, nil
}
