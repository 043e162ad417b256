package owner

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"autoloco/internal/domain"
	"autoloco/internal/metrics"
	"autoloco/internal/metricscache"
	"autoloco/internal/repository"
	"autoloco/internal/reporting"
	"autoloco/internal/status"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	topVehicles = 3
	// maxRows bounds the bookings and transactions loaded per dashboard.
	maxRows = 5000
)

type Service struct {
	bookings     BookingRepository
	transactions TransactionRepository
	vehicles     VehicleRepository

	cache *metricscache.Keyed[*DashboardResponse]
	ttl   time.Duration
	loc   *time.Location
	now   func() time.Time
	log   *zap.Logger
}

type Options struct {
	Cache    *metricscache.Keyed[*DashboardResponse]
	CacheTTL time.Duration
	Location *time.Location
	Now      func() time.Time
	Logger   *zap.Logger
}

func NewService(bookings BookingRepository, transactions TransactionRepository, vehicles VehicleRepository, opts Options) *Service {
	s := &Service{
		bookings:     bookings,
		transactions: transactions,
		vehicles:     vehicles,
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

// Dashboard builds the owner summary for a period. Results are cached per
// owner and period when a cache is configured.
func (s *Service) Dashboard(ctx context.Context, ownerID int64, period reporting.Period) (*DashboardResponse, error) {
	if ownerID <= 0 {
		return nil, ErrInvalidOwner
	}
	if s.cache == nil || s.ttl <= 0 {
		return s.build(ctx, ownerID, period)
	}
	key := strconv.FormatInt(ownerID, 10) + "|" + string(period)
	return s.cache.GetOrCompute(key, s.ttl, func() (*DashboardResponse, error) {
		return s.build(ctx, ownerID, period)
	})
}

func (s *Service) build(ctx context.Context, ownerID int64, period reporting.Period) (*DashboardResponse, error) {
	start := time.Now()
	defer func() {
		metrics.ReportBuildDuration.WithLabelValues("owner_dashboard").Observe(time.Since(start).Seconds())
	}()

	now := s.now()
	since := period.Since(now)
	scope := repository.ListFilter{OwnerID: ownerID, Since: since, Limit: maxRows}

	var (
		rows         []domain.Booking
		txRows       []domain.Transaction
		vehicleCount int64
		earliest     *time.Time
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.bookings.List(gctx, scope)
		return err
	})
	g.Go(func() error {
		var err error
		txRows, err = s.transactions.List(gctx, scope)
		return err
	})
	g.Go(func() error {
		var err error
		vehicleCount, err = s.vehicles.Count(gctx, repository.ListFilter{OwnerID: ownerID})
		return err
	})
	if since == nil {
		g.Go(func() error {
			var err error
			earliest, err = s.bookings.EarliestStart(gctx, repository.ListFilter{OwnerID: ownerID})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("owner dashboard: %w", err)
	}

	bookings := reporting.ClassifyBookings(status.AdminProfile, rows, now)
	txs := reporting.ClassifyTransactions(txRows)
	window := reporting.WindowFor(period, now, earliest)

	ongoing := []reporting.Booking{}
	for _, b := range bookings {
		if b.Status == status.BookingInProgress {
			ongoing = append(ongoing, b)
		}
	}

	s.log.Debug("owner dashboard built",
		zap.Int64("owner_id", ownerID),
		zap.String("period", string(period)),
		zap.Int("bookings", len(bookings)),
		zap.Int("transactions", len(txs)),
	)

	return &DashboardResponse{
		Period:           period,
		From:             window.From,
		To:               window.To,
		TotalBookings:    len(bookings),
		BookingsByStatus: reporting.CountByStatus(bookings, status.AdminProfile),
		Revenue:          reporting.RevenueTotals(txs),
		MonthlyRevenue:   reporting.RevenueByMonth(txs, s.loc),
		TopVehicles:      reporting.TopByRevenue(bookings, reporting.ByVehicle, topVehicles),
		VehicleCount:     vehicleCount,
		OccupancyRate:    reporting.OccupancyRate(bookings, int(vehicleCount), window),
		CancellationRate: reporting.CancellationRate(bookings),
		Ongoing:          ongoing,
		GeneratedAt:      now,
	}, nil
}
