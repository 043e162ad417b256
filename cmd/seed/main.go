package main

import (
	"flag"
	"math/rand/v2"
	"os"
	"time"

	"go.uber.org/zap"

	"autoloco/internal/config"
	"autoloco/internal/database"
	"autoloco/internal/logger"
	jwtsvc "autoloco/internal/pkg/jwt"
)

func main() {
	rentals := flag.Int("bookings", 120, "number of bookings to generate")
	randSeed := flag.Uint64("seed", 42, "random seed")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.New(cfg.LoggerEnv())
	defer func() { _ = log.Sync() }()

	if database.IsPostgres(cfg.DatabaseURL) && cfg.IsProdLike() {
		log.Fatal("refusing to seed a production database")
	}

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("DB connection failed", zap.Error(err))
	}

	log.Info("running automigrate")
	if err := database.AutoMigrateReadModels(db); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}

	s := &seeder{
		db:   db,
		rnd:  rand.New(rand.NewPCG(*randSeed, *randSeed^0x9e3779b97f4a7c15)),
		now:  time.Now().UTC(),
		log:  log,
		size: *rentals,
	}
	if err := s.run(); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}

	// tokens for trying the API locally
	j := jwtsvc.New(cfg.JWTSecret, 7*24*time.Hour)
	for _, acc := range demoAccounts {
		tok, err := j.GenerateToken(acc.ID, acc.Role)
		if err != nil {
			log.Error("token generation failed", zap.Int64("user_id", acc.ID), zap.Error(err))
			continue
		}
		log.Info("demo account", zap.Int64("user_id", acc.ID), zap.String("role", acc.Role), zap.String("token", tok))
	}
	log.Info("seed completed")
}
