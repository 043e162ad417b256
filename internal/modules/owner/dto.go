package owner

import (
	"time"

	"autoloco/internal/reporting"
	"autoloco/internal/status"
)

type DashboardResponse struct {
	Period           reporting.Period             `json:"period"`
	From             time.Time                    `json:"from"`
	To               time.Time                    `json:"to"`
	TotalBookings    int                          `json:"totalBookings"`
	BookingsByStatus map[status.BookingStatus]int `json:"bookingsByStatus"`
	Revenue          reporting.Totals             `json:"revenue"`
	MonthlyRevenue   []reporting.MonthRevenue     `json:"monthlyRevenue"`
	TopVehicles      []reporting.Ranked           `json:"topVehicles"`
	VehicleCount     int64                        `json:"vehicleCount"`
	OccupancyRate    int                          `json:"occupancyRate"`
	CancellationRate float64                      `json:"cancellationRate"`
	Ongoing          []reporting.Booking          `json:"ongoing"`
	GeneratedAt      time.Time                    `json:"generatedAt"`
}
