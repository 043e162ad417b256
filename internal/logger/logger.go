package logger

import (
	"go.uber.org/zap"
)

// New builds a zap logger for the environment: human readable in
// development, JSON otherwise. A logger that fails to build degrades to a
// no-op one.
func New(env string) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	switch env {
	case "development", "dev", "local", "test":
		l, err = zap.NewDevelopment()
	default:
		l, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return l.With(zap.String("service", "autoloco-reporting"))
}
