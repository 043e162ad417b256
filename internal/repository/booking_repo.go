package repository

import (
	"context"
	"fmt"
	"time"

	"autoloco/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) scoped(ctx context.Context, f ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.Booking{})
	if f.OwnerID != 0 {
		q = q.Where("bookings.owner_id = ?", f.OwnerID)
	}
	if f.RenterID != 0 {
		q = q.Where("bookings.renter_id = ?", f.RenterID)
	}
	if f.Since != nil {
		q = q.Where("bookings.created_at >= ?", *f.Since)
	}
	return q
}

// List returns bookings newest first with vehicle, renter and transactions
// preloaded.
func (r *BookingRepository) List(ctx context.Context, f ListFilter) ([]domain.Booking, error) {
	var out []domain.Booking
	q := paginate(r.scoped(ctx, f), f).
		Preload("Vehicle").
		Preload("Renter").
		Preload("Transactions").
		Order("bookings.created_at DESC").
		Order("bookings.id DESC")
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return out, nil
}

func (r *BookingRepository) Count(ctx context.Context, f ListFilter) (int64, error) {
	var n int64
	if err := r.scoped(ctx, f).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return n, nil
}

// EarliestStart is the first start date in scope, nil when there are no
// bookings.
func (r *BookingRepository) EarliestStart(ctx context.Context, f ListFilter) (*time.Time, error) {
	var b domain.Booking
	tx := r.scoped(ctx, f).Select("start_date").Order("start_date ASC").Limit(1).Find(&b)
	if tx.Error != nil {
		return nil, fmt.Errorf("earliest booking: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return &b.StartDate, nil
}

// StatusBreakdown groups bookings by their raw status text.
func (r *BookingRepository) StatusBreakdown(ctx context.Context) ([]RawStatusCount, error) {
	return r.breakdown(ctx, "status")
}

// PaymentStatusBreakdown groups bookings by their raw payment status text.
func (r *BookingRepository) PaymentStatusBreakdown(ctx context.Context) ([]RawStatusCount, error) {
	return r.breakdown(ctx, "payment_status")
}

func (r *BookingRepository) breakdown(ctx context.Context, column string) ([]RawStatusCount, error) {
	var rows []RawStatusCount
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Select(column + " AS raw, COUNT(*) AS count").
		Group(column).
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("booking %s breakdown: %w", column, err)
	}
	return rows, nil
}
