package renter

import (
	"context"
	"fmt"
	"time"

	"autoloco/internal/repository"
	"autoloco/internal/reporting"
	"autoloco/internal/status"
)

// maxBookings bounds the renter history returned in one response.
const maxBookings = 500

type Service struct {
	bookings BookingRepository
	now      func() time.Time
}

func NewService(bookings BookingRepository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{bookings: bookings, now: now}
}

// ListBookings returns the renter's bookings classified for the renter view
// (active / upcoming / completed) with summary stats.
func (s *Service) ListBookings(ctx context.Context, renterID int64) (*BookingsResponse, error) {
	if renterID <= 0 {
		return nil, ErrInvalidRenter
	}

	rows, err := s.bookings.List(ctx, repository.ListFilter{RenterID: renterID, Limit: maxBookings})
	if err != nil {
		return nil, fmt.Errorf("renter bookings: %w", err)
	}

	bookings := reporting.ClassifyBookings(status.RenterProfile, rows, s.now())
	return &BookingsResponse{
		Bookings: bookings,
		Stats:    reporting.ComputeRenterStats(bookings),
	}, nil
}
