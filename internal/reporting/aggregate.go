package reporting

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"autoloco/internal/status"
)

// maxSeriesMonths bounds MonthlySeries for open-ended periods.
const maxSeriesMonths = 60

type MonthRevenue struct {
	Month   string  `json:"month"`
	Year    int     `json:"year"`
	MonthNo int     `json:"monthNo"`
	Revenue float64 `json:"revenue"`
}

type MonthPoint struct {
	Month        string  `json:"month"`
	Revenue      float64 `json:"revenue"`
	Bookings     int     `json:"bookings"`
	Transactions int     `json:"transactions"`
}

type Ranked struct {
	Key      string  `json:"key"`
	Label    string  `json:"label"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

type RenterStats struct {
	Total      int     `json:"total"`
	Active     int     `json:"active"`
	Upcoming   int     `json:"upcoming"`
	Completed  int     `json:"completed"`
	TotalSpent float64 `json:"totalSpent"`
}

type Totals struct {
	Gross         float64 `json:"gross"`
	Net           float64 `json:"net"`
	Commission    float64 `json:"commission"`
	Refunded      float64 `json:"refunded"`
	PaidCount     int     `json:"paidCount"`
	PendingCount  int     `json:"pendingCount"`
	RefundedCount int     `json:"refundedCount"`
}

// Dimension extracts a grouping key and a display label from a booking. An
// empty key drops the booking from the ranking.
type Dimension func(b Booking) (key, label string)

func ByVehicle(b Booking) (string, string) {
	key := strconv.FormatInt(b.VehicleID, 10)
	label := b.VehicleName
	if label == "" {
		label = "#" + key
	}
	return key, label
}

func ByCity(b Booking) (string, string) {
	city := strings.TrimSpace(b.City)
	return strings.ToLower(city), city
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func monthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// RevenueByMonth sums paid transaction revenue per calendar month of the
// transaction date in loc, oldest month first.
func RevenueByMonth(txs []Transaction, loc *time.Location) []MonthRevenue {
	if loc == nil {
		loc = time.UTC
	}
	sums := make(map[time.Time]float64)
	for _, t := range txs {
		if t.Status != status.PaymentPaid {
			continue
		}
		v := t.Revenue()
		if !finite(v) {
			continue
		}
		sums[monthStart(t.CreatedAt, loc)] += v
	}

	months := make([]time.Time, 0, len(sums))
	for m := range sums {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	out := make([]MonthRevenue, 0, len(months))
	for _, m := range months {
		out = append(out, MonthRevenue{
			Month:   monthKey(m),
			Year:    m.Year(),
			MonthNo: int(m.Month()),
			Revenue: sums[m],
		})
	}
	return out
}

// MonthlySeries returns one bucket per month from `from` to `to`, including
// empty months. Bookings are bucketed by creation date, transactions by
// their date; only paid transactions add revenue.
func MonthlySeries(from, to time.Time, bookings []Booking, txs []Transaction, loc *time.Location) []MonthPoint {
	if loc == nil {
		loc = time.UTC
	}
	first, last := monthStart(from, loc), monthStart(to, loc)
	if last.Before(first) {
		first, last = last, first
	}
	if limit := last.AddDate(0, -(maxSeriesMonths - 1), 0); first.Before(limit) {
		first = limit
	}

	var points []MonthPoint
	index := make(map[time.Time]int)
	for m := first; !m.After(last); m = m.AddDate(0, 1, 0) {
		index[m] = len(points)
		points = append(points, MonthPoint{Month: monthKey(m)})
	}

	for _, b := range bookings {
		if i, ok := index[monthStart(b.CreatedAt, loc)]; ok {
			points[i].Bookings++
		}
	}
	for _, t := range txs {
		i, ok := index[monthStart(t.CreatedAt, loc)]
		if !ok {
			continue
		}
		points[i].Transactions++
		if t.Status != status.PaymentPaid {
			continue
		}
		if v := t.Revenue(); finite(v) {
			points[i].Revenue += v
		}
	}
	return points
}

// TopByRevenue ranks non-cancelled bookings grouped by dim: revenue desc,
// then booking count desc, then key asc. n <= 0 returns every group.
func TopByRevenue(bookings []Booking, dim Dimension, n int) []Ranked {
	groups := make(map[string]*Ranked)
	for _, b := range bookings {
		if b.Status == status.BookingCancelled {
			continue
		}
		key, label := dim(b)
		if key == "" {
			continue
		}
		g, ok := groups[key]
		if !ok {
			g = &Ranked{Key: key, Label: label}
			groups[key] = g
		}
		g.Bookings++
		if finite(b.Amount) {
			g.Revenue += b.Amount
		}
	}

	out := make([]Ranked, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		if out[i].Bookings != out[j].Bookings {
			return out[i].Bookings > out[j].Bookings
		}
		return out[i].Key < out[j].Key
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// overlapDays is the length in days of the intersection of the booking
// range with the window, 0 when they are disjoint or the range is inverted.
func overlapDays(b Booking, w Window) float64 {
	start, end := b.StartDate, b.EndDate
	if start.Before(w.From) {
		start = w.From
	}
	if end.After(w.To) {
		end = w.To
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start).Hours() / 24
}

// OccupancyRate is booked vehicle-days over available vehicle-days in the
// window, as a rounded percentage. Both factors of the denominator are
// floored at 1.
func OccupancyRate(bookings []Booking, vehicleCount int, w Window) int {
	var booked float64
	for _, b := range bookings {
		if b.Status == status.BookingCancelled {
			continue
		}
		booked += overlapDays(b, w)
	}
	available := float64(max(1, vehicleCount)) * w.Days()
	rate := booked / available * 100
	if !finite(rate) {
		return 0
	}
	return int(math.Round(rate))
}

// CancellationRate is the share of cancelled bookings, in percent with one
// decimal. Empty input gives 0.
func CancellationRate(bookings []Booking) float64 {
	if len(bookings) == 0 {
		return 0
	}
	cancelled := 0
	for _, b := range bookings {
		if b.Status == status.BookingCancelled {
			cancelled++
		}
	}
	return round1(float64(cancelled) / float64(len(bookings)) * 100)
}

// CountByStatus counts bookings per status. Every status of the profile is
// present, zero when unused.
func CountByStatus(bookings []Booking, p status.ViewProfile) map[status.BookingStatus]int {
	counts := make(map[status.BookingStatus]int, len(p.States))
	for _, st := range p.States {
		counts[st] = 0
	}
	for _, b := range bookings {
		counts[b.Status]++
	}
	return counts
}

// ComputeRenterStats expects bookings classified with status.RenterProfile.
// TotalSpent sums paid bookings only.
func ComputeRenterStats(bookings []Booking) RenterStats {
	var s RenterStats
	for _, b := range bookings {
		s.Total++
		switch b.Status {
		case status.BookingActive:
			s.Active++
		case status.BookingUpcoming:
			s.Upcoming++
		case status.BookingCompleted:
			s.Completed++
		}
		if b.PaymentStatus == status.PaymentPaid && finite(b.Amount) {
			s.TotalSpent += b.Amount
		}
	}
	return s
}

// RevenueTotals sums transactions by payment state. Gross, Net and
// Commission only include paid transactions.
func RevenueTotals(txs []Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		switch tx.Status {
		case status.PaymentPaid:
			t.PaidCount++
			if finite(tx.Amount) {
				t.Gross += tx.Amount
			}
			if v := tx.Revenue(); finite(v) {
				t.Net += v
			}
			if tx.CommissionFee != nil && finite(*tx.CommissionFee) {
				t.Commission += *tx.CommissionFee
			}
		case status.PaymentRefunded:
			t.RefundedCount++
			if finite(tx.Amount) {
				t.Refunded += tx.Amount
			}
		default:
			t.PendingCount++
		}
	}
	return t
}

// SumPaid is the total revenue of paid transactions.
func SumPaid(txs []Transaction) float64 {
	return RevenueTotals(txs).Net
}
