package domain

import "time"

// Booking is a rental as stored by the marketplace backend. Status and
// PaymentStatus are free text written by several producers (API, imports,
// manual edits) and are classified on read.
type Booking struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	VehicleID     int64     `json:"vehicle_id" gorm:"index"`
	RenterID      int64     `json:"renter_id" gorm:"index"`
	OwnerID       int64     `json:"owner_id" gorm:"index"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Status        *string   `json:"status"`
	PaymentStatus *string   `json:"payment_status"`
	TotalAmount   float64   `json:"total_amount"`
	CreatedAt     time.Time `json:"created_at"`

	// preloaded associations
	Vehicle      *Vehicle      `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	Renter       *User         `json:"renter,omitempty" gorm:"foreignKey:RenterID"`
	Transactions []Transaction `json:"transactions,omitempty" gorm:"foreignKey:BookingID"`
}

func (Booking) TableName() string {
	return "bookings"
}

// LatestTransaction returns the most recent transaction attached to the
// booking, nil when none were loaded.
func (b *Booking) LatestTransaction() *Transaction {
	var latest *Transaction
	for i := range b.Transactions {
		t := &b.Transactions[i]
		if latest == nil || t.CreatedAt.After(latest.CreatedAt) {
			latest = t
		}
	}
	return latest
}
