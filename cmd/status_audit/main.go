// Command status_audit prints how every stored booking and transaction
// status is classified. It only reads.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"go.uber.org/zap"

	"autoloco/internal/config"
	"autoloco/internal/database"
	"autoloco/internal/logger"
	"autoloco/internal/repository"
)

func main() {
	timeout := flag.Duration("timeout", time.Minute, "overall query timeout")
	reviewOnly := flag.Bool("review", false, "only list raw values that need review: unmatched, or negated payment text counted as paid")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.New(cfg.LoggerEnv())
	defer func() { _ = log.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("database connect failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	rows, err := collect(ctx, repository.NewBookingRepository(db), repository.NewTransactionRepository(db))
	if err != nil {
		log.Fatal("status audit failed", zap.Error(err))
	}
	if *reviewOnly {
		rows = needsReview(rows)
	}
	if err := write(os.Stdout, rows); err != nil {
		log.Fatal("write report failed", zap.Error(err))
	}
	log.Info("status audit completed", zap.Int("rows", len(rows)))
}
