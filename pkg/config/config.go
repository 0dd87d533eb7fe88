package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the static configuration surface of the circulation engine.
// Values come from the environment with sensible defaults; mains load a .env
// file first via godotenv.
type Config struct {
	// DailyFineRateCents is charged per day a returned or open loan is overdue.
	DailyFineRateCents int64
	// MaxRenewals bounds how often a single loan can be renewed.
	MaxRenewals int
	// DefaultLoanDays is used when a checkout request does not specify a duration.
	DefaultLoanDays int
	// SweepIntervalHours is the period of the in-process overdue sweep.
	SweepIntervalHours int
	// ReservationHoldDays is how long a reservation stays pending before it expires.
	ReservationHoldDays int
}

const (
	defaultDailyFineRateCents  = 50
	defaultMaxRenewals         = 2
	defaultLoanDays            = 14
	defaultSweepIntervalHours  = 24
	defaultReservationHoldDays = 3
)

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		DailyFineRateCents:  int64(envInt("DAILY_FINE_RATE_CENTS", defaultDailyFineRateCents)),
		MaxRenewals:         envInt("MAX_RENEWALS", defaultMaxRenewals),
		DefaultLoanDays:     envInt("DEFAULT_LOAN_DAYS", defaultLoanDays),
		SweepIntervalHours:  envInt("SWEEP_INTERVAL_HOURS", defaultSweepIntervalHours),
		ReservationHoldDays: envInt("RESERVATION_HOLD_DAYS", defaultReservationHoldDays),
	}
}

// SweepInterval returns the sweep period as a duration.
func (c Config) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalHours) * time.Hour
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
