package reporting

import (
	"strings"
	"time"

	"autoloco/internal/domain"
	"autoloco/internal/status"
)

// Booking is a booking after classification for one view profile.
type Booking struct {
	ID            int64                `json:"id"`
	VehicleID     int64                `json:"vehicleId"`
	RenterID      int64                `json:"renterId"`
	OwnerID       int64                `json:"ownerId"`
	VehicleName   string               `json:"vehicleName,omitempty"`
	City          string               `json:"city,omitempty"`
	StartDate     time.Time            `json:"startDate"`
	EndDate       time.Time            `json:"endDate"`
	Status        status.BookingStatus `json:"status"`
	PaymentStatus status.PaymentStatus `json:"paymentStatus"`
	Amount        float64              `json:"totalAmount"`
	Progress      int                  `json:"progress"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// Transaction is a transaction with its classified payment status.
type Transaction struct {
	ID            int64                `json:"id"`
	BookingID     int64                `json:"bookingId"`
	Amount        float64              `json:"amount"`
	NetAmount     *float64             `json:"netAmount,omitempty"`
	CommissionFee *float64             `json:"commissionFee,omitempty"`
	Status        status.PaymentStatus `json:"status"`
	RawStatus     string               `json:"rawStatus,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
}

// ClassifyBooking maps a stored booking onto the profile. The payment
// status falls back to the latest loaded transaction when the booking's own
// field is empty.
func ClassifyBooking(p status.ViewProfile, b *domain.Booking, now time.Time) Booking {
	var txStatus string
	if tx := b.LatestTransaction(); tx != nil {
		txStatus = status.Deref(tx.Status)
	}

	out := Booking{
		ID:            b.ID,
		VehicleID:     b.VehicleID,
		RenterID:      b.RenterID,
		OwnerID:       b.OwnerID,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		Status:        status.ClassifyBooking(p, status.Deref(b.Status), status.DateRange{Start: b.StartDate, End: b.EndDate}, now),
		PaymentStatus: status.ClassifyPayment(status.Deref(b.PaymentStatus), txStatus),
		Amount:        b.TotalAmount,
		Progress:      status.Progress(b.StartDate, b.EndDate, now),
		CreatedAt:     b.CreatedAt,
	}
	if b.Vehicle != nil {
		out.VehicleName = b.Vehicle.DisplayName()
		out.City = strings.TrimSpace(b.Vehicle.City)
	}
	return out
}

func ClassifyBookings(p status.ViewProfile, rows []domain.Booking, now time.Time) []Booking {
	out := make([]Booking, 0, len(rows))
	for i := range rows {
		out = append(out, ClassifyBooking(p, &rows[i], now))
	}
	return out
}

func ClassifyTransaction(t *domain.Transaction) Transaction {
	raw := status.Deref(t.Status)
	return Transaction{
		ID:            t.ID,
		BookingID:     t.BookingID,
		Amount:        t.Amount,
		NetAmount:     t.NetAmount,
		CommissionFee: t.CommissionFee,
		Status:        status.ClassifyPayment(raw),
		RawStatus:     raw,
		CreatedAt:     t.CreatedAt,
	}
}

func ClassifyTransactions(rows []domain.Transaction) []Transaction {
	out := make([]Transaction, 0, len(rows))
	for i := range rows {
		out = append(out, ClassifyTransaction(&rows[i]))
	}
	return out
}

// Revenue is the amount a paid transaction contributes: net when present,
// gross otherwise.
func (t Transaction) Revenue() float64 {
	if t.NetAmount != nil {
		return *t.NetAmount
	}
	return t.Amount
}
