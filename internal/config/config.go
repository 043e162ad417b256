package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"autoloco/internal/pkg/validator"
)

const defaultJWTSecret = "change-me-jwt-secret"

type Config struct {
	AppEnv      string `envconfig:"APP_ENV" default:"dev"`
	HTTPAddr    string `envconfig:"HTTP_ADDR" default:":8080"`
	DatabaseURL string `envconfig:"DATABASE_URL" default:"file:autoloco.db?_pragma=busy_timeout(5000)" validate:"required"`

	// JWTs are issued by the main AUTOLOCO backend; this service only
	// verifies them.
	JWTSecret string `envconfig:"JWT_SECRET" default:"change-me-jwt-secret"`

	// Timezone used to bucket revenue into calendar months.
	ReportTimezone string `envconfig:"REPORT_TIMEZONE" default:"Africa/Douala"`

	AdminDashboardTTL time.Duration `envconfig:"ADMIN_DASHBOARD_TTL" default:"2m" validate:"gte=0"`
	OwnerDashboardTTL time.Duration `envconfig:"OWNER_DASHBOARD_TTL" default:"1m" validate:"gte=0"`
	QueryTimeout      time.Duration `envconfig:"QUERY_TIMEOUT" default:"10s" validate:"gt=0"`

	ReportRPS   float64 `envconfig:"REPORT_RPS" default:"5" validate:"gt=0"`
	ReportBurst int     `envconfig:"REPORT_BURST" default:"10" validate:"gt=0"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	cfg.JWTSecret = strings.TrimSpace(cfg.JWTSecret)
	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if err := validator.Struct(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := time.LoadLocation(cfg.ReportTimezone); err != nil {
		return fmt.Errorf("invalid REPORT_TIMEZONE %q: %w", cfg.ReportTimezone, err)
	}

	if cfg.IsProdLike() {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if !strings.HasPrefix(cfg.DatabaseURL, "postgres") {
			return fmt.Errorf("in prod/release DATABASE_URL must point to PostgreSQL")
		}
	}
	return nil
}

func (c *Config) IsProdLike() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production" || c.AppEnv == "release"
}

// Location is the report timezone, UTC if it cannot be loaded.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.ReportTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LoggerEnv maps APP_ENV onto the names logger.New understands.
func (c *Config) LoggerEnv() string {
	if c.IsProdLike() {
		return "production"
	}
	return "development"
}
