package owner

import (
	"context"
	"time"

	"autoloco/internal/domain"
	"autoloco/internal/repository"
)

type BookingRepository interface {
	List(ctx context.Context, f repository.ListFilter) ([]domain.Booking, error)
	EarliestStart(ctx context.Context, f repository.ListFilter) (*time.Time, error)
}

type TransactionRepository interface {
	List(ctx context.Context, f repository.ListFilter) ([]domain.Transaction, error)
}

type VehicleRepository interface {
	Count(ctx context.Context, f repository.ListFilter) (int64, error)
}
