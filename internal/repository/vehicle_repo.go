package repository

import (
	"context"
	"fmt"
	"strings"

	"autoloco/internal/domain"

	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) scoped(ctx context.Context, f ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.Vehicle{})
	if f.OwnerID != 0 {
		q = q.Where("owner_id = ?", f.OwnerID)
	}
	if city := strings.TrimSpace(f.City); city != "" {
		q = q.Where("LOWER(city) = ?", strings.ToLower(city))
	}
	return q
}

func (r *VehicleRepository) List(ctx context.Context, f ListFilter) ([]domain.Vehicle, error) {
	var out []domain.Vehicle
	q := paginate(r.scoped(ctx, f), f).Order("created_at DESC").Order("id DESC")
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return out, nil
}

func (r *VehicleRepository) Count(ctx context.Context, f ListFilter) (int64, error) {
	var n int64
	if err := r.scoped(ctx, f).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count vehicles: %w", err)
	}
	return n, nil
}
