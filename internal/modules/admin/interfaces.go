package admin

import (
	"context"
	"time"

	"autoloco/internal/domain"
	"autoloco/internal/repository"
)

type BookingRepository interface {
	List(ctx context.Context, f repository.ListFilter) ([]domain.Booking, error)
	Count(ctx context.Context, f repository.ListFilter) (int64, error)
	EarliestStart(ctx context.Context, f repository.ListFilter) (*time.Time, error)
}

type TransactionRepository interface {
	List(ctx context.Context, f repository.ListFilter) ([]domain.Transaction, error)
	Count(ctx context.Context, f repository.ListFilter) (int64, error)
}

type VehicleRepository interface {
	Count(ctx context.Context, f repository.ListFilter) (int64, error)
}

type UserRepository interface {
	List(ctx context.Context, f repository.ListFilter) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}

type TicketRepository interface {
	List(ctx context.Context, f repository.ListFilter) ([]domain.SupportTicket, error)
	Count(ctx context.Context) (int64, error)
}
