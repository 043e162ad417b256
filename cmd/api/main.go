package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autoloco/internal/config"
	"autoloco/internal/database"
	"autoloco/internal/logger"
	"autoloco/internal/metricscache"
	"autoloco/internal/middleware"
	"autoloco/internal/modules/admin"
	"autoloco/internal/modules/catalog"
	"autoloco/internal/modules/owner"
	"autoloco/internal/modules/renter"
	jwtsvc "autoloco/internal/pkg/jwt"
	"autoloco/internal/pkg/response"
	"autoloco/internal/repository"
	"autoloco/internal/status"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger is not configured yet
		_, _ = os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.LoggerEnv())
	defer func() { _ = log.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("database connect failed", zap.Error(err))
	}
	if !database.IsPostgres(cfg.DatabaseURL) {
		if err := database.AutoMigrateReadModels(db); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
	}

	if cfg.IsProdLike() {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newRouter(cfg, db, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("http server listening", zap.String("addr", cfg.HTTPAddr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newRouter(cfg *config.Config, db *gorm.DB, log *zap.Logger) *gin.Engine {
	loc := cfg.Location()

	bookingRepo := repository.NewBookingRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	userRepo := repository.NewUserRepository(db)
	ticketRepo := repository.NewTicketRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, 24*time.Hour)

	catalogHandler := catalog.NewHandler(catalog.NewService(vehicleRepo))

	renterHandler := renter.NewHandler(renter.NewService(bookingRepo, time.Now))

	ownerService := owner.NewService(bookingRepo, transactionRepo, vehicleRepo, owner.Options{
		Cache:    metricscache.NewKeyed[*owner.DashboardResponse]("owner_dashboard", time.Now),
		CacheTTL: cfg.OwnerDashboardTTL,
		Location: loc,
		Now:      time.Now,
		Logger:   log.Named("owner"),
	})
	ownerHandler := owner.NewHandler(ownerService)

	adminService := admin.NewService(admin.Repositories{
		Bookings:     bookingRepo,
		Transactions: transactionRepo,
		Vehicles:     vehicleRepo,
		Users:        userRepo,
		Tickets:      ticketRepo,
	}, admin.Options{
		Cache:    metricscache.New[*admin.DashboardResponse]("admin_dashboard", time.Now),
		CacheTTL: cfg.AdminDashboardTTL,
		Location: loc,
		Now:      time.Now,
		Logger:   log.Named("admin"),
	})
	adminHandler := admin.NewHandler(adminService)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.ErrorLogger(log),
		middleware.RequestLogger(log),
		middleware.Metrics(),
		middleware.CORS(cfg.CORSOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := database.Ping(ctx, db); err != nil {
			_ = c.Error(err)
			response.Error(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database is not reachable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	v1.Use(middleware.QueryTimeout(cfg.QueryTimeout))
	{
		// public
		catalogHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))

		renterGroup := protected.Group("/renter")
		renterGroup.Use(middleware.RequireRole(status.UserRenter))
		renterHandler.RegisterRoutes(renterGroup)

		ownerGroup := protected.Group("/owner")
		ownerGroup.Use(middleware.RequireRole(status.UserOwner))
		ownerHandler.RegisterRoutes(ownerGroup)

		adminGroup := protected.Group("/admin")
		adminGroup.Use(middleware.AdminOnly())
		adminHandler.RegisterRoutes(adminGroup, middleware.RateLimit(cfg.ReportRPS, cfg.ReportBurst))
	}

	return r
}
