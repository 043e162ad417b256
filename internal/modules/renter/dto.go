package renter

import "autoloco/internal/reporting"

type BookingsResponse struct {
	Bookings []reporting.Booking  `json:"bookings"`
	Stats    reporting.RenterStats `json:"stats"`
}
