package repository

import (
	"time"

	"gorm.io/gorm"
)

// ListFilter narrows list queries. Zero fields are ignored.
type ListFilter struct {
	OwnerID  int64
	RenterID int64
	City     string
	Since    *time.Time
	Limit    int
	Offset   int
}

// RawStatusCount is one row of a GROUP BY over a free-text status column.
type RawStatusCount struct {
	Raw   *string `gorm:"column:raw"`
	Count int64   `gorm:"column:count"`
}

func paginate(q *gorm.DB, f ListFilter) *gorm.DB {
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	return q
}
