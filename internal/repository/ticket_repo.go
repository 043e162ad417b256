package repository

import (
	"context"
	"fmt"

	"autoloco/internal/domain"

	"gorm.io/gorm"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) List(ctx context.Context, f ListFilter) ([]domain.SupportTicket, error) {
	var out []domain.SupportTicket
	q := paginate(r.db.WithContext(ctx).Model(&domain.SupportTicket{}), f).
		Preload("User").
		Order("created_at DESC").
		Order("id DESC")
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return out, nil
}

func (r *TicketRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.SupportTicket{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count tickets: %w", err)
	}
	return n, nil
}
