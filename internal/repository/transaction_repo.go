package repository

import (
	"context"
	"fmt"

	"autoloco/internal/domain"

	"gorm.io/gorm"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) scoped(ctx context.Context, f ListFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&domain.Transaction{})
	if f.OwnerID != 0 || f.RenterID != 0 {
		q = q.Joins("JOIN bookings ON bookings.id = transactions.booking_id")
	}
	if f.OwnerID != 0 {
		q = q.Where("bookings.owner_id = ?", f.OwnerID)
	}
	if f.RenterID != 0 {
		q = q.Where("bookings.renter_id = ?", f.RenterID)
	}
	if f.Since != nil {
		q = q.Where("transactions.created_at >= ?", *f.Since)
	}
	return q
}

func (r *TransactionRepository) List(ctx context.Context, f ListFilter) ([]domain.Transaction, error) {
	var out []domain.Transaction
	q := paginate(r.scoped(ctx, f), f).
		Order("transactions.created_at DESC").
		Order("transactions.id DESC")
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return out, nil
}

func (r *TransactionRepository) Count(ctx context.Context, f ListFilter) (int64, error) {
	var n int64
	if err := r.scoped(ctx, f).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}

func (r *TransactionRepository) StatusBreakdown(ctx context.Context) ([]RawStatusCount, error) {
	var rows []RawStatusCount
	err := r.db.WithContext(ctx).
		Model(&domain.Transaction{}).
		Select("status AS raw, COUNT(*) AS count").
		Group("status").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("transaction status breakdown: %w", err)
	}
	return rows, nil
}
