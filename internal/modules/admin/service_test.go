package admin

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"autoloco/internal/domain"
	"autoloco/internal/metricscache"
	"autoloco/internal/pkg/pagination"
	"autoloco/internal/repository"
	"autoloco/internal/reporting"
	"autoloco/internal/status"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// -------------------- mocks --------------------

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) List(ctx context.Context, f repository.ListFilter) ([]domain.Booking, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Count(ctx context.Context, f repository.ListFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) EarliestStart(ctx context.Context, f repository.ListFilter) (*time.Time, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

type MockTransactionRepository struct{ mock.Mock }

func (m *MockTransactionRepository) List(ctx context.Context, f repository.ListFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Count(ctx context.Context, f repository.ListFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Count(ctx context.Context, f repository.ListFilter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) List(ctx context.Context, f repository.ListFilter) ([]domain.User, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockTicketRepository struct{ mock.Mock }

func (m *MockTicketRepository) List(ctx context.Context, f repository.ListFilter) ([]domain.SupportTicket, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupportTicket), args.Error(1)
}

func (m *MockTicketRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mocks struct {
	bookings     *MockBookingRepository
	transactions *MockTransactionRepository
	vehicles     *MockVehicleRepository
	users        *MockUserRepository
	tickets      *MockTicketRepository
}

func newMocks() mocks {
	return mocks{
		bookings:     new(MockBookingRepository),
		transactions: new(MockTransactionRepository),
		vehicles:     new(MockVehicleRepository),
		users:        new(MockUserRepository),
		tickets:      new(MockTicketRepository),
	}
}

func (m mocks) repos() Repositories {
	return Repositories{
		Bookings:     m.bookings,
		Transactions: m.transactions,
		Vehicles:     m.vehicles,
		Users:        m.users,
		Tickets:      m.tickets,
	}
}

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func str(s string) *string { return &s }

// -------------------- tests --------------------

func stubDashboard(m mocks) {
	m.users.On("Count", mock.Anything).Return(int64(3), nil)
	m.vehicles.On("Count", mock.Anything, mock.Anything).Return(int64(2), nil)
	m.bookings.On("Count", mock.Anything, mock.Anything).Return(int64(4), nil)
	m.bookings.On("List", mock.Anything, mock.Anything).Return([]domain.Booking{
		{ID: 1, Status: str("Litige en cours"), StartDate: now.AddDate(0, 0, -10), EndDate: now.AddDate(0, 0, -8)},
		{ID: 2, StartDate: now.AddDate(0, 0, -1), EndDate: now.AddDate(0, 0, 1)},
		{ID: 3, Status: str("cancelled"), StartDate: now, EndDate: now},
		{ID: 4, Status: str("pending"), StartDate: now.AddDate(0, 0, 3), EndDate: now.AddDate(0, 0, 4)},
	}, nil)
	m.transactions.On("List", mock.Anything, mock.Anything).Return([]domain.Transaction{
		{ID: 1, Amount: 100, Status: str("paid"), CreatedAt: now},
	}, nil)
	m.tickets.On("List", mock.Anything, mock.Anything).Return([]domain.SupportTicket{
		{ID: 1, Status: str("ouvert")},
		{ID: 2, Status: str("en cours")},
		{ID: 3, Status: str("fermé")},
	}, nil)
}

func TestDashboard(t *testing.T) {
	m := newMocks()
	stubDashboard(m)

	svc := NewService(m.repos(), Options{Now: func() time.Time { return now }})
	out, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), out.TotalUsers)
	assert.Equal(t, int64(4), out.TotalBookings)
	assert.Equal(t, 1, out.BookingsByStatus[status.BookingDispute])
	assert.Equal(t, 1, out.BookingsByStatus[status.BookingInProgress])
	assert.Equal(t, 1, out.BookingsByStatus[status.BookingCancelled])
	assert.Equal(t, 1, out.BookingsByStatus[status.BookingPending])
	assert.Equal(t, 25.0, out.CancellationRate)
	assert.Equal(t, 100.0, out.Revenue.Net)
	assert.Equal(t, 2, out.OpenTickets)
	assert.Len(t, out.RecentBookings, 4)
}

func TestDashboard_CachedForTwoMinutes(t *testing.T) {
	m := newMocks()
	stubDashboard(m)

	clock := now
	tick := func() time.Time { return clock }
	svc := NewService(m.repos(), Options{
		Cache:    metricscache.New[*DashboardResponse]("admin_dashboard", tick),
		CacheTTL: 120 * time.Second,
		Now:      tick,
	})

	first, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	clock = clock.Add(time.Second)
	second, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)
	m.users.AssertNumberOfCalls(t, "Count", 1)

	clock = clock.Add(120 * time.Second)
	third, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	m.users.AssertNumberOfCalls(t, "Count", 2)
}

func TestDashboard_ErrorNotCached(t *testing.T) {
	m := newMocks()
	boom := errors.New("db down")
	m.users.On("Count", mock.Anything).Return(int64(0), boom).Once()
	stubDashboard(m)

	svc := NewService(m.repos(), Options{
		Cache:    metricscache.New[*DashboardResponse]("admin_dashboard", nil),
		CacheTTL: time.Minute,
	})

	_, err := svc.Dashboard(context.Background())
	assert.ErrorIs(t, err, boom)

	out, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.TotalUsers)
}

func TestReports(t *testing.T) {
	m := newMocks()
	since := now.AddDate(-1, 0, 0)
	scope := repository.ListFilter{Since: &since, Limit: maxReportRows}

	douala := &domain.Vehicle{ID: 1, Brand: "Toyota", Model: "Prado", City: "Douala"}
	yaounde := &domain.Vehicle{ID: 2, Brand: "Honda", Model: "Civic", City: "Yaoundé"}
	m.bookings.On("List", mock.Anything, scope).Return([]domain.Booking{
		{ID: 1, VehicleID: 1, Vehicle: douala, TotalAmount: 300, StartDate: now.AddDate(0, -2, 0), EndDate: now.AddDate(0, -2, 2), CreatedAt: now.AddDate(0, -2, 0)},
		{ID: 2, VehicleID: 2, Vehicle: yaounde, TotalAmount: 500, StartDate: now.AddDate(0, -1, 0), EndDate: now.AddDate(0, -1, 1), CreatedAt: now.AddDate(0, -1, 0)},
		{ID: 3, VehicleID: 2, Vehicle: yaounde, Status: str("annulé"), TotalAmount: 900, StartDate: now, EndDate: now, CreatedAt: now},
	}, nil)
	m.transactions.On("List", mock.Anything, scope).Return([]domain.Transaction{
		{ID: 1, Amount: 300, Status: str("paid"), CreatedAt: now.AddDate(0, -2, 0)},
		{ID: 2, Amount: 500, NetAmount: func() *float64 { v := 450.0; return &v }(), Status: str("Payé"), CreatedAt: now.AddDate(0, -1, 0)},
	}, nil)
	m.vehicles.On("Count", mock.Anything, repository.ListFilter{}).Return(int64(2), nil)

	svc := NewService(m.repos(), Options{Now: func() time.Time { return now }})
	out, err := svc.Reports(context.Background(), reporting.PeriodYear)
	require.NoError(t, err)

	assert.Equal(t, reporting.PeriodYear, out.Stats.Period)
	assert.Equal(t, 3, out.Stats.TotalBookings)
	assert.Equal(t, 750.0, out.Stats.TotalRevenue)
	assert.Equal(t, 33.3, out.Stats.CancellationRate)
	assert.Len(t, out.MonthlyData, 13)
	assert.Equal(t, "2025-10", out.MonthlyData[0].Month)
	assert.Equal(t, "2026-10", out.MonthlyData[12].Month)

	require.Len(t, out.TopVehicles, 2)
	assert.Equal(t, "Honda Civic", out.TopVehicles[0].Label)
	require.Len(t, out.TopCities, 2)
	assert.Equal(t, "yaoundé", out.TopCities[0].Key)
	m.bookings.AssertNotCalled(t, "EarliestStart", mock.Anything, mock.Anything)
}

func TestListBookings_StatusFilter(t *testing.T) {
	m := newMocks()
	m.bookings.On("List", mock.Anything, repository.ListFilter{Limit: maxAuditRows}).Return([]domain.Booking{
		{ID: 1, Status: str("Litige")},
		{ID: 2, Status: str("confirmée")},
		{ID: 3, Status: str("dispute ouverte")},
		{ID: 4, Status: str("DISPUTED")},
	}, nil)

	svc := NewService(m.repos(), Options{Now: func() time.Time { return now }})

	items, total, truncated, err := svc.ListBookings(context.Background(), " Dispute ", pagination.Params{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.False(t, truncated)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(3), items[1].ID)

	items, _, _, err = svc.ListBookings(context.Background(), "dispute", pagination.Params{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(4), items[0].ID)

	items, _, _, err = svc.ListBookings(context.Background(), "dispute", pagination.Params{Page: 9, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, items)

	// offsets past the end of the matches never panic
	items, _, _, err = svc.ListBookings(context.Background(), "dispute", pagination.Params{Page: math.MaxInt, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListBookings_StatusFilterTruncated(t *testing.T) {
	m := newMocks()
	rows := make([]domain.Booking, maxAuditRows)
	for i := range rows {
		rows[i] = domain.Booking{ID: int64(i + 1), Status: str("Annulée")}
	}
	m.bookings.On("List", mock.Anything, repository.ListFilter{Limit: maxAuditRows}).Return(rows, nil)

	svc := NewService(m.repos(), Options{Now: func() time.Time { return now }})
	items, total, truncated, err := svc.ListBookings(context.Background(), "cancelled", pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, items, 10)
	assert.Equal(t, int64(maxAuditRows), total)
	assert.True(t, truncated)
}

func TestPageOf(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{3, 4}, pageOf(items, pagination.Params{Page: 2, Limit: 2}))
	assert.Empty(t, pageOf(items, pagination.Params{Page: math.MaxInt, Limit: 2}))
	assert.Empty(t, pageOf(items, pagination.Params{Page: 1, Limit: 0}))
	assert.Equal(t, []int{1}, pageOf(items, pagination.Params{Page: -3, Limit: 1}))
}

func TestListBookings_InvalidFilter(t *testing.T) {
	svc := NewService(newMocks().repos(), Options{})
	// renter-only states are not part of the admin view
	_, _, _, err := svc.ListBookings(context.Background(), "upcoming", pagination.Params{Page: 1, Limit: 10})
	assert.ErrorIs(t, err, ErrInvalidStatusFilter)
}

func TestListUsersAndTickets(t *testing.T) {
	m := newMocks()
	m.users.On("List", mock.Anything, repository.ListFilter{Limit: 10}).Return([]domain.User{
		{ID: 1, FullName: "Admin", UserType: str("ADMIN")},
		{ID: 2, FullName: "Loueur", UserType: str("Propriétaire"), Status: str("bloqué")},
	}, nil)
	m.users.On("Count", mock.Anything).Return(int64(2), nil)
	m.tickets.On("List", mock.Anything, repository.ListFilter{Limit: 10, Offset: 10}).Return([]domain.SupportTicket{
		{ID: 1, Subject: "Problème de remboursement", Status: str("Résolu"), Priority: str("urgent")},
	}, nil)
	m.tickets.On("Count", mock.Anything).Return(int64(11), nil)

	svc := NewService(m.repos(), Options{})

	users, total, err := svc.ListUsers(context.Background(), pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, status.UserAdmin, users[0].Type)
	assert.Equal(t, status.UserOwner, users[1].Type)
	assert.Equal(t, status.UserSuspended, users[1].Status)
	assert.Equal(t, "bloqué", users[1].RawStatus)

	tickets, total, err := svc.ListTickets(context.Background(), pagination.Params{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(11), total)
	require.Len(t, tickets, 1)
	assert.Equal(t, status.TicketResolved, tickets[0].Status)
	assert.Equal(t, status.PriorityUrgent, tickets[0].Priority)
	assert.Equal(t, status.CategoryPayment, tickets[0].Category)
}
