package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"autoloco/internal/domain"
	"autoloco/internal/metrics"
	"autoloco/internal/metricscache"
	"autoloco/internal/pkg/pagination"
	"autoloco/internal/repository"
	"autoloco/internal/reporting"
	"autoloco/internal/status"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	topN = 5
	// recentBookings is the size of the dashboard's latest bookings list.
	recentBookings = 5
	// maxAuditRows bounds audit lists and in-memory status filtering.
	maxAuditRows = 1000
	// maxReportRows bounds the rows a report aggregates.
	maxReportRows = 20000
)

type Service struct {
	bookings     BookingRepository
	transactions TransactionRepository
	vehicles     VehicleRepository
	users        UserRepository
	tickets      TicketRepository

	cache *metricscache.Cache[*DashboardResponse]
	ttl   time.Duration
	loc   *time.Location
	now   func() time.Time
	log   *zap.Logger
}

type Repositories struct {
	Bookings     BookingRepository
	Transactions TransactionRepository
	Vehicles     VehicleRepository
	Users        UserRepository
	Tickets      TicketRepository
}

type Options struct {
	// Cache memoizes Dashboard for CacheTTL. Nil disables caching.
	Cache    *metricscache.Cache[*DashboardResponse]
	CacheTTL time.Duration
	Location *time.Location
	Now      func() time.Time
	Logger   *zap.Logger
}

func NewService(repos Repositories, opts Options) *Service {
	s := &Service{
		bookings:     repos.Bookings,
		transactions: repos.Transactions,
		vehicles:     repos.Vehicles,
		users:        repos.Users,
		tickets:      repos.Tickets,
		cache:        opts.Cache,
		ttl:          opts.CacheTTL,
		loc:          opts.Location,
		now:          opts.Now,
		log:          opts.Logger,
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// -------------------- Dashboard --------------------

func (s *Service) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	if s.cache == nil {
		return s.buildDashboard(ctx)
	}
	return s.cache.GetOrCompute(s.ttl, func() (*DashboardResponse, error) {
		return s.buildDashboard(ctx)
	})
}

func (s *Service) buildDashboard(ctx context.Context) (*DashboardResponse, error) {
	start := time.Now()
	defer func() {
		metrics.ReportBuildDuration.WithLabelValues("admin_dashboard").Observe(time.Since(start).Seconds())
	}()

	now := s.now()
	var (
		userCount, vehicleCount, bookingCount int64
		bookingRows                           []domain.Booking
		txRows                                []domain.Transaction
		ticketRows                            []domain.SupportTicket
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		userCount, err = s.users.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		vehicleCount, err = s.vehicles.Count(gctx, repository.ListFilter{})
		return err
	})
	g.Go(func() (err error) {
		bookingCount, err = s.bookings.Count(gctx, repository.ListFilter{})
		return err
	})
	g.Go(func() (err error) {
		bookingRows, err = s.bookings.List(gctx, repository.ListFilter{Limit: maxReportRows})
		return err
	})
	g.Go(func() (err error) {
		txRows, err = s.transactions.List(gctx, repository.ListFilter{Limit: maxReportRows})
		return err
	})
	g.Go(func() (err error) {
		ticketRows, err = s.tickets.List(gctx, repository.ListFilter{Limit: maxAuditRows})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("admin dashboard: %w", err)
	}

	bookings := reporting.ClassifyBookings(status.AdminProfile, bookingRows, now)
	txs := reporting.ClassifyTransactions(txRows)

	openTickets := 0
	for i := range ticketRows {
		switch status.ClassifyTicketStatus(status.Deref(ticketRows[i].Status)) {
		case status.TicketOpen, status.TicketInProgress:
			openTickets++
		}
	}

	recent := bookings
	if len(recent) > recentBookings {
		recent = recent[:recentBookings]
	}

	s.log.Info("admin dashboard computed",
		zap.Int("bookings", len(bookings)),
		zap.Int("transactions", len(txs)),
		zap.Duration("took", time.Since(start)),
	)

	return &DashboardResponse{
		TotalUsers:       userCount,
		TotalVehicles:    vehicleCount,
		TotalBookings:    bookingCount,
		BookingsByStatus: reporting.CountByStatus(bookings, status.AdminProfile),
		Revenue:          reporting.RevenueTotals(txs),
		MonthlyRevenue:   reporting.RevenueByMonth(txs, s.loc),
		CancellationRate: reporting.CancellationRate(bookings),
		OccupancyRate:    reporting.OccupancyRate(bookings, int(vehicleCount), reporting.WindowFor(reporting.PeriodMonth, now, nil)),
		OpenTickets:      openTickets,
		RecentBookings:   recent,
		GeneratedAt:      now,
	}, nil
}

// -------------------- Reports --------------------

func (s *Service) Reports(ctx context.Context, period reporting.Period) (*ReportsResponse, error) {
	start := time.Now()
	defer func() {
		metrics.ReportBuildDuration.WithLabelValues("admin_reports").Observe(time.Since(start).Seconds())
	}()

	now := s.now()
	since := period.Since(now)
	scope := repository.ListFilter{Since: since, Limit: maxReportRows}

	var (
		bookingRows  []domain.Booking
		txRows       []domain.Transaction
		vehicleCount int64
		earliest     *time.Time
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		bookingRows, err = s.bookings.List(gctx, scope)
		return err
	})
	g.Go(func() (err error) {
		txRows, err = s.transactions.List(gctx, scope)
		return err
	})
	g.Go(func() (err error) {
		vehicleCount, err = s.vehicles.Count(gctx, repository.ListFilter{})
		return err
	})
	if since == nil {
		g.Go(func() (err error) {
			earliest, err = s.bookings.EarliestStart(gctx, repository.ListFilter{})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("admin reports: %w", err)
	}

	bookings := reporting.ClassifyBookings(status.AdminProfile, bookingRows, now)
	txs := reporting.ClassifyTransactions(txRows)
	window := reporting.WindowFor(period, now, earliest)
	totals := reporting.RevenueTotals(txs)

	return &ReportsResponse{
		Stats: ReportStats{
			Period:           period,
			From:             window.From,
			To:               window.To,
			TotalBookings:    len(bookings),
			BookingsByStatus: reporting.CountByStatus(bookings, status.AdminProfile),
			TotalRevenue:     totals.Net,
			Revenue:          totals,
			CancellationRate: reporting.CancellationRate(bookings),
			OccupancyRate:    reporting.OccupancyRate(bookings, int(vehicleCount), window),
			VehicleCount:     vehicleCount,
		},
		MonthlyData: reporting.MonthlySeries(window.From, window.To, bookings, txs, s.loc),
		TopVehicles: reporting.TopByRevenue(bookings, reporting.ByVehicle, topN),
		TopCities:   reporting.TopByRevenue(bookings, reporting.ByCity, topN),
	}, nil
}

// -------------------- Audit lists --------------------

// ListBookings returns bookings classified for the admin view. Without a
// status filter pagination happens in the database; with one, the latest
// maxAuditRows bookings are classified and filtered in memory, and truncated
// reports that the scan hit that bound (total then covers the scanned rows
// only).
func (s *Service) ListBookings(ctx context.Context, statusFilter string, p pagination.Params) (items []reporting.Booking, total int64, truncated bool, err error) {
	statusFilter = strings.ToLower(strings.TrimSpace(statusFilter))
	now := s.now()

	if statusFilter == "" {
		var rows []domain.Booking
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			rows, err = s.bookings.List(gctx, repository.ListFilter{Limit: p.Limit, Offset: p.Offset()})
			return err
		})
		g.Go(func() (err error) {
			total, err = s.bookings.Count(gctx, repository.ListFilter{})
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, 0, false, fmt.Errorf("admin bookings: %w", err)
		}
		return reporting.ClassifyBookings(status.AdminProfile, rows, now), total, false, nil
	}

	want := status.BookingStatus(statusFilter)
	if !status.AdminProfile.Has(want) {
		return nil, 0, false, ErrInvalidStatusFilter
	}

	rows, err := s.bookings.List(ctx, repository.ListFilter{Limit: maxAuditRows})
	if err != nil {
		return nil, 0, false, fmt.Errorf("admin bookings: %w", err)
	}

	matched := make([]reporting.Booking, 0, len(rows))
	for _, b := range reporting.ClassifyBookings(status.AdminProfile, rows, now) {
		if b.Status == want {
			matched = append(matched, b)
		}
	}
	return pageOf(matched, p), int64(len(matched)), len(rows) >= maxAuditRows, nil
}

func (s *Service) ListTransactions(ctx context.Context, p pagination.Params) (*TransactionsResponse, int64, error) {
	var (
		rows  []domain.Transaction
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rows, err = s.transactions.List(gctx, repository.ListFilter{Limit: p.Limit, Offset: p.Offset()})
		return err
	})
	g.Go(func() (err error) {
		total, err = s.transactions.Count(gctx, repository.ListFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, fmt.Errorf("admin transactions: %w", err)
	}

	txs := reporting.ClassifyTransactions(rows)
	return &TransactionsResponse{Items: txs, Totals: reporting.RevenueTotals(txs)}, total, nil
}

func (s *Service) ListUsers(ctx context.Context, p pagination.Params) ([]UserView, int64, error) {
	var (
		rows  []domain.User
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rows, err = s.users.List(gctx, repository.ListFilter{Limit: p.Limit, Offset: p.Offset()})
		return err
	})
	g.Go(func() (err error) {
		total, err = s.users.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, fmt.Errorf("admin users: %w", err)
	}

	out := make([]UserView, 0, len(rows))
	for i := range rows {
		out = append(out, toUserView(&rows[i]))
	}
	return out, total, nil
}

func (s *Service) ListTickets(ctx context.Context, p pagination.Params) ([]TicketView, int64, error) {
	var (
		rows  []domain.SupportTicket
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rows, err = s.tickets.List(gctx, repository.ListFilter{Limit: p.Limit, Offset: p.Offset()})
		return err
	})
	g.Go(func() (err error) {
		total, err = s.tickets.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, fmt.Errorf("admin tickets: %w", err)
	}

	out := make([]TicketView, 0, len(rows))
	for i := range rows {
		out = append(out, toTicketView(&rows[i]))
	}
	return out, total, nil
}

func pageOf[T any](items []T, p pagination.Params) []T {
	if p.Limit <= 0 {
		return items[:0]
	}
	from := min(max(p.Offset(), 0), len(items))
	to := min(from+p.Limit, len(items))
	return items[from:to]
}
