package admin

import (
	"strings"
	"time"

	"autoloco/internal/domain"
	"autoloco/internal/reporting"
	"autoloco/internal/status"
)

type DashboardResponse struct {
	TotalUsers       int64                        `json:"totalUsers"`
	TotalVehicles    int64                        `json:"totalVehicles"`
	TotalBookings    int64                        `json:"totalBookings"`
	BookingsByStatus map[status.BookingStatus]int `json:"bookingsByStatus"`
	Revenue          reporting.Totals             `json:"revenue"`
	MonthlyRevenue   []reporting.MonthRevenue     `json:"monthlyRevenue"`
	CancellationRate float64                      `json:"cancellationRate"`
	OccupancyRate    int                          `json:"occupancyRate"`
	OpenTickets      int                          `json:"openTickets"`
	RecentBookings   []reporting.Booking          `json:"recentBookings"`
	GeneratedAt      time.Time                    `json:"generatedAt"`
}

type ReportStats struct {
	Period           reporting.Period             `json:"period"`
	From             time.Time                    `json:"from"`
	To               time.Time                    `json:"to"`
	TotalBookings    int                          `json:"totalBookings"`
	BookingsByStatus map[status.BookingStatus]int `json:"bookingsByStatus"`
	TotalRevenue     float64                      `json:"totalRevenue"`
	Revenue          reporting.Totals             `json:"revenue"`
	CancellationRate float64                      `json:"cancellationRate"`
	OccupancyRate    int                          `json:"occupancyRate"`
	VehicleCount     int64                        `json:"vehicleCount"`
}

type ReportsResponse struct {
	Stats       ReportStats            `json:"stats"`
	MonthlyData []reporting.MonthPoint `json:"monthlyData"`
	TopVehicles []reporting.Ranked     `json:"topVehicles"`
	TopCities   []reporting.Ranked     `json:"topCities"`
}

type TransactionsResponse struct {
	Items  []reporting.Transaction `json:"items"`
	Totals reporting.Totals        `json:"totals"`
}

type UserView struct {
	ID        int64             `json:"id"`
	FullName  string            `json:"fullName"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone,omitempty"`
	City      string            `json:"city,omitempty"`
	Type      status.UserType   `json:"type"`
	Status    status.UserStatus `json:"status"`
	RawType   string            `json:"rawType,omitempty"`
	RawStatus string            `json:"rawStatus,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

func toUserView(u *domain.User) UserView {
	rawType, rawStatus := status.Deref(u.UserType), status.Deref(u.Status)
	return UserView{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Phone:     u.Phone,
		City:      u.City,
		Type:      status.ClassifyUserType(rawType),
		Status:    status.ClassifyUserStatus(rawStatus),
		RawType:   rawType,
		RawStatus: rawStatus,
		CreatedAt: u.CreatedAt,
	}
}

type TicketView struct {
	ID        int64                 `json:"id"`
	UserID    int64                 `json:"userId"`
	UserName  string                `json:"userName,omitempty"`
	Subject   string                `json:"subject"`
	Status    status.TicketStatus   `json:"status"`
	Priority  status.TicketPriority `json:"priority"`
	Category  status.TicketCategory `json:"category"`
	CreatedAt time.Time             `json:"createdAt"`
}

// toTicketView classifies the ticket; an empty category is inferred from
// the subject.
func toTicketView(t *domain.SupportTicket) TicketView {
	category := status.Deref(t.Category)
	if strings.TrimSpace(category) == "" {
		category = t.Subject
	}
	v := TicketView{
		ID:        t.ID,
		UserID:    t.UserID,
		Subject:   t.Subject,
		Status:    status.ClassifyTicketStatus(status.Deref(t.Status)),
		Priority:  status.ClassifyTicketPriority(status.Deref(t.Priority)),
		Category:  status.ClassifyTicketCategory(category),
		CreatedAt: t.CreatedAt,
	}
	if t.User != nil {
		v.UserName = t.User.FullName
	}
	return v
}
