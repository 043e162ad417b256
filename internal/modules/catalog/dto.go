package catalog

import (
	"time"

	"autoloco/internal/domain"
	"autoloco/internal/status"
)

type VehicleView struct {
	ID          int64                `json:"id"`
	OwnerID     int64                `json:"ownerId"`
	Name        string               `json:"name"`
	Brand       string               `json:"brand"`
	Model       string               `json:"model"`
	City        string               `json:"city"`
	PricePerDay float64              `json:"pricePerDay"`
	Status      status.VehicleStatus `json:"status"`
	CreatedAt   time.Time            `json:"createdAt"`
}

func toVehicleView(v *domain.Vehicle) VehicleView {
	return VehicleView{
		ID:          v.ID,
		OwnerID:     v.OwnerID,
		Name:        v.DisplayName(),
		Brand:       v.Brand,
		Model:       v.Model,
		City:        v.City,
		PricePerDay: v.PricePerDay,
		Status:      status.ClassifyVehicleStatus(status.Deref(v.Status)),
		CreatedAt:   v.CreatedAt,
	}
}
