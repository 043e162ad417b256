package domain

import (
	"strings"
	"time"
)

type Vehicle struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	OwnerID     int64     `json:"owner_id" gorm:"index"`
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	City        string    `json:"city" gorm:"index"`
	PricePerDay float64   `json:"price_per_day"`
	Status      *string   `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// DisplayName is "Brand Model", trimmed.
func (v *Vehicle) DisplayName() string {
	return strings.TrimSpace(strings.TrimSpace(v.Brand) + " " + strings.TrimSpace(v.Model))
}
