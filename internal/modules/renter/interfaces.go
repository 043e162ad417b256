package renter

import (
	"context"

	"autoloco/internal/domain"
	"autoloco/internal/repository"
)

type BookingRepository interface {
	List(ctx context.Context, f repository.ListFilter) ([]domain.Booking, error)
}
