package domain

import "time"

// Transaction is a payment movement attached to a booking. NetAmount and
// CommissionFee are only filled by the newer payment pipeline.
type Transaction struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	BookingID     int64     `json:"booking_id" gorm:"index"`
	Amount        float64   `json:"amount"`
	Status        *string   `json:"status"`
	NetAmount     *float64  `json:"net_amount,omitempty"`
	CommissionFee *float64  `json:"commission_fee,omitempty"`
	CreatedAt     time.Time `json:"created_at"`

	Booking *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
}

func (Transaction) TableName() string {
	return "transactions"
}
